package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"rental-optimizer/domain"
)

func TestCalculateMortgage_WithInterest(t *testing.T) {
	service := NewMortgageService(zaptest.NewLogger(t))

	input := domain.MortgageInput{
		Amount:       10000,
		InterestRate: 12,
		TermYears:    1,
	}

	result, err := service.Calculate(input)
	require.NoError(t, err)

	// 1% monthly over 12 payments.
	assert.InDelta(t, 888.49, result.MonthlyPayment, 0.01)
	assert.InDelta(t, 10661.85, result.TotalPayment, 0.01)
	assert.InDelta(t, 661.85, result.TotalInterest, 0.01)

	// A one-year mortgage is fully amortized in the first year.
	assert.InDelta(t, 10000, result.FirstYearPrincipal, 0.05)
}

func TestCalculateMortgage_ZeroInterest(t *testing.T) {
	service := NewMortgageService(zaptest.NewLogger(t))

	input := domain.MortgageInput{
		Amount:       12000,
		InterestRate: 0,
		TermYears:    1,
	}

	result, err := service.Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.MonthlyPayment)
	assert.Equal(t, 12000.0, result.TotalPayment)
	assert.Zero(t, result.TotalInterest)
	assert.Equal(t, 12000.0, result.FirstYearPrincipal)
}

func TestCalculateMortgage_LongTerm(t *testing.T) {
	service := NewMortgageService(zaptest.NewLogger(t))

	input := domain.MortgageInput{
		Amount:       240000,
		InterestRate: 3.5,
		TermYears:    30,
	}

	result, err := service.Calculate(input)
	require.NoError(t, err)

	assert.Greater(t, result.MonthlyPayment, 240000.0/360)
	assert.Positive(t, result.TotalInterest)
	assert.InDelta(t, result.MonthlyPayment*12, result.AnnualDebtService, 0.01)

	// Early payments are mostly interest.
	assert.Positive(t, result.FirstYearPrincipal)
	assert.Less(t, result.FirstYearPrincipal, result.AnnualDebtService)
}

func TestCalculateMortgage_InvalidInput(t *testing.T) {
	service := NewMortgageService(zaptest.NewLogger(t))

	tests := []struct {
		name  string
		input domain.MortgageInput
	}{
		{"zero amount", domain.MortgageInput{Amount: 0, InterestRate: 3, TermYears: 20}},
		{"negative rate", domain.MortgageInput{Amount: 100000, InterestRate: -1, TermYears: 20}},
		{"zero term", domain.MortgageInput{Amount: 100000, InterestRate: 3, TermYears: 0}},
		{"term too long", domain.MortgageInput{Amount: 100000, InterestRate: 3, TermYears: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Calculate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
