package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"rental-optimizer/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals (currency amounts).
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundTo4Decimals rounds a float64 to 4 decimals (yield/ROI fractions).
func roundTo4Decimals(value float64) float64 {
	return math.Round(value*10000) / 10000
}

type MortgageService struct {
	log *zap.Logger
}

// NewMortgageService creates a new MortgageService.
func NewMortgageService(log *zap.Logger) *MortgageService {
	return &MortgageService{log: log}
}

// Calculate derives the amortized monthly payment and the first-year
// principal for the given mortgage terms.
func (s *MortgageService) Calculate(
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	if input.Amount <= 0 {
		return domain.MortgageResult{}, fmt.Errorf("%w: mortgage amount must be positive", domain.ErrInvalidInput)
	}
	if input.Amount > MaxPurchasePrice {
		return domain.MortgageResult{}, fmt.Errorf("%w: mortgage amount exceeds the maximum of %.2f", domain.ErrInvalidInput, MaxPurchasePrice)
	}
	if input.InterestRate < 0 {
		return domain.MortgageResult{}, fmt.Errorf("%w: interest rate must not be negative", domain.ErrInvalidInput)
	}
	if input.InterestRate > MaxMortgageRate {
		return domain.MortgageResult{}, fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", domain.ErrInvalidInput, MaxMortgageRate)
	}
	if input.TermYears < MinMortgageTermYears || input.TermYears > MaxMortgageTermYears {
		return domain.MortgageResult{}, fmt.Errorf("%w: term must be between %d and %d years", domain.ErrInvalidInput, MinMortgageTermYears, MaxMortgageTermYears)
	}

	n := input.TermYears * MonthsPerYear
	monthlyRate := (input.InterestRate / 100) / MonthsPerYear

	var monthly float64
	if monthlyRate == 0 {
		monthly = input.Amount / float64(n)
	} else {
		monthly = input.Amount * (monthlyRate /
			(1 - math.Pow(1+monthlyRate, -float64(n))))
	}

	total := monthly * float64(n)
	interest := total - input.Amount

	return domain.MortgageResult{
		MonthlyPayment:     roundTo2Decimals(monthly),
		AnnualDebtService:  roundTo2Decimals(monthly * MonthsPerYear),
		TotalPayment:       roundTo2Decimals(total),
		TotalInterest:      roundTo2Decimals(interest),
		FirstYearPrincipal: roundTo2Decimals(firstYearPrincipal(input.Amount, monthlyRate, monthly, n)),
	}, nil
}

// firstYearPrincipal walks the first twelve payments of the amortization
// schedule and sums the principal portion (the equity built in year one).
func firstYearPrincipal(amount, monthlyRate, monthly float64, n int) float64 {
	months := n
	if months > MonthsPerYear {
		months = MonthsPerYear
	}

	if monthlyRate == 0 {
		return monthly * float64(months)
	}

	principal := 0.0
	balance := amount
	for m := 0; m < months; m++ {
		interest := balance * monthlyRate
		paid := monthly - interest
		principal += paid
		balance -= paid
	}
	return principal
}
