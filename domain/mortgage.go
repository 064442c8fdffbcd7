package domain

// MortgageInput describes the financing terms of a purchase.
// InterestRate is the annual rate in percent.
type MortgageInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years"`
}

type MortgageResult struct {
	MonthlyPayment     float64 `json:"monthly_payment"`
	AnnualDebtService  float64 `json:"annual_debt_service"`
	TotalPayment       float64 `json:"total_payment"`
	TotalInterest      float64 `json:"total_interest"`
	FirstYearPrincipal float64 `json:"first_year_principal"`
}
