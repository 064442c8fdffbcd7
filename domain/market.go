package domain

// Neighborhood is one row of the sample market table. AvgYieldPct and
// AvgPriceSqm are display figures from the market dataset, not computed.
type Neighborhood struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AvgYieldPct float64 `json:"avg_yield_pct"`
	AvgPriceSqm float64 `json:"avg_price_sqm"`
}

// City is a sample city with its map framing and neighborhood rows.
type City struct {
	Name          string         `json:"name"`
	Country       string         `json:"country"`
	CenterLat     float64        `json:"center_lat"`
	CenterLon     float64        `json:"center_lon"`
	Zoom          int            `json:"zoom"`
	Regulation    string         `json:"regulation"`
	Neighborhoods []Neighborhood `json:"neighborhoods,omitempty"`
}

// CityInfo is the selector view of a city, without neighborhood rows.
type CityInfo struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
	Zoom      int     `json:"zoom"`
}

// MapMarker is what the map widget needs to place one neighborhood.
type MapMarker struct {
	Neighborhood string  `json:"neighborhood"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	YieldPct     float64 `json:"yield_pct"`
	AvgPriceSqm  float64 `json:"avg_price_sqm"`
	Color        string  `json:"color"`
}

type CityOverview struct {
	City                  string  `json:"city"`
	AvgYieldPct           float64 `json:"avg_yield_pct"`
	AvgPriceSqm           float64 `json:"avg_price_sqm"`
	BestYieldNeighborhood string  `json:"best_yield_neighborhood"`
	BestYieldPct          float64 `json:"best_yield_pct"`
	CheapestNeighborhood  string  `json:"cheapest_neighborhood"`
	LowestPriceSqm        float64 `json:"lowest_price_sqm"`
	Regulation            string  `json:"regulation"`
}

type CityComparison struct {
	City        string  `json:"city"`
	AvgYieldPct float64 `json:"avg_yield_pct"`
	AvgPriceSqm float64 `json:"avg_price_sqm"`
}
