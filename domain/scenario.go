package domain

import "time"

// Strategy selects which rental model a computation uses.
type Strategy string

const (
	StrategyLongTerm  Strategy = "long_term"
	StrategyShortTerm Strategy = "short_term"
)

// Scenario holds the assumptions for one property investment. City and
// Neighborhood are informational; the numbers drive the calculation.
// InitialInvestment is the cash actually put in; when zero it defaults to
// the purchase price (cash purchase) or the equity portion when financed.
type Scenario struct {
	City              string         `json:"city,omitempty"`
	Neighborhood      string         `json:"neighborhood,omitempty"`
	PurchasePrice     float64        `json:"purchase_price"`
	MonthlyRent       float64        `json:"monthly_rent"`
	NightlyRate       float64        `json:"nightly_rate"`
	OccupancyRate     float64        `json:"occupancy_rate"`
	OperatingCostRate float64        `json:"operating_cost_rate"`
	InitialInvestment float64        `json:"initial_investment,omitempty"`
	Mortgage          *MortgageInput `json:"mortgage,omitempty"`
}

// YieldResult carries the derived metrics for one strategy. Yields and ROI
// are fractions (0.06 = 6%). PaybackYears is nil when the annual net cash
// flow is not positive, meaning the investment is not recoverable under the
// given assumptions.
type YieldResult struct {
	Strategy     Strategy `json:"strategy"`
	GrossIncome  float64  `json:"gross_annual_income"`
	NetCashFlow  float64  `json:"net_annual_cash_flow"`
	GrossYield   float64  `json:"gross_yield"`
	NetYield     float64  `json:"net_yield"`
	ROI          float64  `json:"roi"`
	TotalROI     *float64 `json:"total_roi,omitempty"`
	PaybackYears *float64 `json:"payback_years,omitempty"`
}

// AnalysisRecord is a computed result kept for later inspection.
type AnalysisRecord struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Scenario  Scenario    `json:"scenario"`
	Strategy  Strategy    `json:"strategy"`
	Result    YieldResult `json:"result"`
}
