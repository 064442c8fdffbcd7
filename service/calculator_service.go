package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rental-optimizer/domain"
	"rental-optimizer/metrics"
	"rental-optimizer/repository"
)

// CalculatorService derives the yield metrics for a single scenario and
// strategy. Compute is pure except for the best-effort analysis record.
type CalculatorService struct {
	mortgages *MortgageService
	repo      repository.AnalysisRepository
	log       *zap.Logger
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(
	mortgages *MortgageService,
	repo repository.AnalysisRepository,
	log *zap.Logger,
) *CalculatorService {
	return &CalculatorService{mortgages: mortgages, repo: repo, log: log}
}

// Compute calculates the yield metrics for the scenario under one strategy.
// Yields and ROI come back as fractions. A non-positive annual cash flow
// leaves PaybackYears nil; it never surfaces as a division error.
func (s *CalculatorService) Compute(
	scenario domain.Scenario,
	strategy domain.Strategy,
) (domain.YieldResult, error) {

	if err := validateScenario(scenario); err != nil {
		return domain.YieldResult{}, err
	}

	var gross float64
	switch strategy {
	case domain.StrategyLongTerm:
		gross = scenario.MonthlyRent * MonthsPerYear
	case domain.StrategyShortTerm:
		gross = scenario.NightlyRate * NightsPerYear * scenario.OccupancyRate
	default:
		return domain.YieldResult{}, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, strategy)
	}

	var debtService, yearOnePrincipal float64
	if scenario.Mortgage != nil {
		mortgage, err := s.mortgages.Calculate(*scenario.Mortgage)
		if err != nil {
			return domain.YieldResult{}, err
		}
		debtService = mortgage.AnnualDebtService
		yearOnePrincipal = mortgage.FirstYearPrincipal
	}

	invested, err := cashInvested(scenario)
	if err != nil {
		return domain.YieldResult{}, err
	}

	net := gross * (1 - scenario.OperatingCostRate)
	cashFlow := net - debtService

	result := domain.YieldResult{
		Strategy:    strategy,
		GrossIncome: roundTo2Decimals(gross),
		NetCashFlow: roundTo2Decimals(cashFlow),
		GrossYield:  roundTo4Decimals(gross / scenario.PurchasePrice),
		NetYield:    roundTo4Decimals(net / scenario.PurchasePrice),
		ROI:         roundTo4Decimals(cashFlow / invested),
	}

	if cashFlow > 0 {
		payback := roundTo2Decimals(invested / cashFlow)
		result.PaybackYears = &payback
	}
	if scenario.Mortgage != nil {
		totalROI := roundTo4Decimals((cashFlow + yearOnePrincipal) / invested)
		result.TotalROI = &totalROI
	}

	metrics.AnalysesComputed.WithLabelValues(string(strategy)).Inc()

	// Keeping the record is not critical.
	record := domain.AnalysisRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Scenario:  scenario,
		Strategy:  strategy,
		Result:    result,
	}
	if err := s.repo.Save(record); err != nil {
		s.log.Warn("failed to save analysis record", zap.Error(err))
	}

	return result, nil
}

// History returns the most recently computed analyses, newest first.
func (s *CalculatorService) History(limit int) []domain.AnalysisRecord {
	return s.repo.Recent(limit)
}

// cashInvested resolves the total cash put into the deal. An explicit
// initial investment wins; otherwise it is the purchase price, minus the
// mortgage amount when financed.
func cashInvested(scenario domain.Scenario) (float64, error) {
	invested := scenario.InitialInvestment
	if invested == 0 {
		invested = scenario.PurchasePrice
		if scenario.Mortgage != nil {
			invested = scenario.PurchasePrice - scenario.Mortgage.Amount
		}
	}
	if invested <= 0 {
		return 0, fmt.Errorf("%w: cash invested must be positive (check initial investment and mortgage amount)", domain.ErrInvalidInput)
	}
	return invested, nil
}

// Out-of-range rates are rejected, not clamped, so the form gets a message
// instead of a silently adjusted number.
func validateScenario(scenario domain.Scenario) error {
	if scenario.PurchasePrice <= 0 {
		return fmt.Errorf("%w: purchase price must be positive", domain.ErrInvalidInput)
	}
	if scenario.PurchasePrice > MaxPurchasePrice {
		return fmt.Errorf("%w: purchase price exceeds the maximum of %.2f", domain.ErrInvalidInput, MaxPurchasePrice)
	}
	if scenario.MonthlyRent < 0 || scenario.MonthlyRent > MaxMonthlyRent {
		return fmt.Errorf("%w: monthly rent must be between 0 and %.2f", domain.ErrInvalidInput, MaxMonthlyRent)
	}
	if scenario.NightlyRate < 0 || scenario.NightlyRate > MaxNightlyRate {
		return fmt.Errorf("%w: nightly rate must be between 0 and %.2f", domain.ErrInvalidInput, MaxNightlyRate)
	}
	if scenario.OccupancyRate < 0 || scenario.OccupancyRate > 1 {
		return fmt.Errorf("%w: occupancy rate must be between 0 and 1", domain.ErrInvalidInput)
	}
	if scenario.OperatingCostRate < 0 || scenario.OperatingCostRate > 1 {
		return fmt.Errorf("%w: operating cost rate must be between 0 and 1", domain.ErrInvalidInput)
	}
	if scenario.InitialInvestment < 0 {
		return fmt.Errorf("%w: initial investment must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
