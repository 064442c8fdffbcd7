package domain

// Grade buckets an investment by its best cash-on-cash ROI.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeModerate  Grade = "moderate"
	GradePoor      Grade = "poor"
)

// FinancingSummary is reported only when the scenario carries a mortgage.
type FinancingSummary struct {
	MonthlyPayment     float64 `json:"monthly_payment"`
	AnnualDebtService  float64 `json:"annual_debt_service"`
	FirstYearPrincipal float64 `json:"first_year_principal"`
	LTVRatio           float64 `json:"ltv_ratio"`
}

// ComparisonResult places both strategies side by side. BestStrategy is the
// one with the higher net yield; PaybackYears refers to the best cash flow
// and is nil when neither strategy produces a positive one.
type ComparisonResult struct {
	LongTerm           YieldResult       `json:"long_term"`
	ShortTerm          YieldResult       `json:"short_term"`
	BestStrategy       Strategy          `json:"best_strategy"`
	NetYieldDifference float64           `json:"net_yield_difference"`
	IncomeDifference   float64           `json:"income_difference"`
	BestCashFlow       float64           `json:"best_cash_flow"`
	BestROI            float64           `json:"best_roi"`
	PaybackYears       *float64          `json:"payback_years,omitempty"`
	Grade              Grade             `json:"grade"`
	Financing          *FinancingSummary `json:"financing,omitempty"`
	Explanation        string            `json:"explanation,omitempty"`
}
