package service

import (
	"math"

	"go.uber.org/zap"

	"rental-optimizer/domain"
)

// ComparisonService runs both strategies over one scenario and picks a
// recommendation.
type ComparisonService struct {
	calculator *CalculatorService
	mortgages  *MortgageService
	advisor    *AdvisorService
	log        *zap.Logger
}

func NewComparisonService(
	calculator *CalculatorService,
	mortgages *MortgageService,
	advisor *AdvisorService,
	log *zap.Logger,
) *ComparisonService {
	return &ComparisonService{
		calculator: calculator,
		mortgages:  mortgages,
		advisor:    advisor,
		log:        log,
	}
}

// Compare computes the long-term and short-term results side by side.
// The strategy with the higher net yield wins; a tie goes to long-term as
// the more predictable income.
func (s *ComparisonService) Compare(
	scenario domain.Scenario,
) (domain.ComparisonResult, error) {

	longTerm, err := s.calculator.Compute(scenario, domain.StrategyLongTerm)
	if err != nil {
		return domain.ComparisonResult{}, err
	}
	shortTerm, err := s.calculator.Compute(scenario, domain.StrategyShortTerm)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	best := longTerm
	if shortTerm.NetYield > longTerm.NetYield {
		best = shortTerm
	}

	result := domain.ComparisonResult{
		LongTerm:           longTerm,
		ShortTerm:          shortTerm,
		BestStrategy:       best.Strategy,
		NetYieldDifference: roundTo4Decimals(math.Abs(shortTerm.NetYield - longTerm.NetYield)),
		IncomeDifference:   roundTo2Decimals(math.Abs(shortTerm.NetCashFlow - longTerm.NetCashFlow)),
		BestCashFlow:       best.NetCashFlow,
		BestROI:            math.Max(longTerm.ROI, shortTerm.ROI),
		PaybackYears:       best.PaybackYears,
		Grade:              gradeFor(math.Max(longTerm.ROI, shortTerm.ROI)),
	}

	if scenario.Mortgage != nil {
		mortgage, err := s.mortgages.Calculate(*scenario.Mortgage)
		if err != nil {
			return domain.ComparisonResult{}, err
		}
		result.Financing = &domain.FinancingSummary{
			MonthlyPayment:     mortgage.MonthlyPayment,
			AnnualDebtService:  mortgage.AnnualDebtService,
			FirstYearPrincipal: mortgage.FirstYearPrincipal,
			LTVRatio:           roundTo4Decimals(scenario.Mortgage.Amount / scenario.PurchasePrice),
		}
	}

	result.Explanation = s.advisor.ExplainComparison(scenario, result)

	return result, nil
}

func gradeFor(roi float64) domain.Grade {
	switch {
	case roi >= GradeExcellentROI:
		return domain.GradeExcellent
	case roi >= GradeGoodROI:
		return domain.GradeGood
	case roi >= GradeModerateROI:
		return domain.GradeModerate
	default:
		return domain.GradePoor
	}
}
