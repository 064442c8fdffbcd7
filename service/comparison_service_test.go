package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"rental-optimizer/config"
	"rental-optimizer/domain"
)

func newTestComparison(t *testing.T) *ComparisonService {
	log := zaptest.NewLogger(t)
	mortgages := NewMortgageService(log)
	calculator := NewCalculatorService(mortgages, &mockAnalysisRepository{}, log)
	// Advisor disabled: exercises the fallback explanation path.
	advisor := NewAdvisorService(config.AdvisorConfig{}, log)
	return NewComparisonService(calculator, mortgages, advisor, log)
}

func TestCompare_ShortTermWins(t *testing.T) {
	comparisons := newTestComparison(t)

	// 80 * 365 * 0.65 = 18980 gross short-term vs 14400 long-term.
	scenario := domain.Scenario{
		PurchasePrice:     300000,
		MonthlyRent:       1200,
		NightlyRate:       80,
		OccupancyRate:     0.65,
		OperatingCostRate: 0.2,
	}

	result, err := comparisons.Compare(scenario)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyShortTerm, result.BestStrategy)
	assert.Equal(t, result.ShortTerm.NetCashFlow, result.BestCashFlow)
	assert.InDelta(t, result.ShortTerm.NetYield-result.LongTerm.NetYield, result.NetYieldDifference, 0.0001)
	assert.NotEmpty(t, result.Explanation)
	require.NotNil(t, result.PaybackYears)
	assert.Nil(t, result.Financing)
}

func TestCompare_LongTermWins(t *testing.T) {
	comparisons := newTestComparison(t)

	scenario := domain.Scenario{
		PurchasePrice:     300000,
		MonthlyRent:       2000,
		NightlyRate:       40,
		OccupancyRate:     0.4,
		OperatingCostRate: 0.2,
	}

	result, err := comparisons.Compare(scenario)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyLongTerm, result.BestStrategy)
	assert.Equal(t, result.LongTerm.NetCashFlow, result.BestCashFlow)
}

func TestCompare_FinancedScenarioReportsSummary(t *testing.T) {
	comparisons := newTestComparison(t)

	scenario := domain.Scenario{
		PurchasePrice:     300000,
		MonthlyRent:       1500,
		NightlyRate:       90,
		OccupancyRate:     0.6,
		OperatingCostRate: 0.15,
		Mortgage: &domain.MortgageInput{
			Amount:       240000,
			InterestRate: 3.5,
			TermYears:    30,
		},
	}

	result, err := comparisons.Compare(scenario)
	require.NoError(t, err)

	require.NotNil(t, result.Financing)
	assert.InDelta(t, 0.8, result.Financing.LTVRatio, 0.0001)
	assert.Positive(t, result.Financing.MonthlyPayment)
	assert.Positive(t, result.Financing.FirstYearPrincipal)
}

func TestCompare_InvalidScenario(t *testing.T) {
	comparisons := newTestComparison(t)

	_, err := comparisons.Compare(domain.Scenario{PurchasePrice: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		roi      float64
		expected domain.Grade
	}{
		{0.20, domain.GradeExcellent},
		{0.15, domain.GradeExcellent},
		{0.12, domain.GradeGood},
		{0.07, domain.GradeModerate},
		{0.02, domain.GradePoor},
		{-0.05, domain.GradePoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, gradeFor(tt.roi), "roi %.2f", tt.roi)
	}
}

func TestFallbackExplanation_NotRecoverable(t *testing.T) {
	comparisons := newTestComparison(t)

	// Rent of zero on both strategies: no cash flow at all.
	scenario := domain.Scenario{
		PurchasePrice: 100000,
	}

	result, err := comparisons.Compare(scenario)
	require.NoError(t, err)

	assert.Nil(t, result.PaybackYears)
	assert.Contains(t, result.Explanation, "not recovered")
	assert.Equal(t, domain.GradePoor, result.Grade)
}
