package service

const (
	MaxPurchasePrice     = 1_000_000_000.0 // sanity cap, not a market statement
	MaxMonthlyRent       = 1_000_000.0
	MaxNightlyRate       = 100_000.0
	MaxMortgageRate      = 100.0 // percent annual
	MaxMortgageTermYears = 50
	MinMortgageTermYears = 1

	NightsPerYear = 365
	MonthsPerYear = 12

	// Investment grade thresholds on the best cash-on-cash ROI (fractions).
	GradeExcellentROI = 0.15
	GradeGoodROI      = 0.10
	GradeModerateROI  = 0.05

	// Map marker color thresholds on average yield (percent).
	MarkerHighYieldPct   = 6.5
	MarkerMediumYieldPct = 5.5
)
