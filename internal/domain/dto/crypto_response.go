package dto

// PricePoint mirrors a single price observation on the API surface.
//
// Fields match the API contract and may differ from internal domain models.
// This keeps the JSON surface decoupled from business logic.
type PricePoint struct {
	Timestamp int64   `json:"timestamp" example:"1641009600000"` // UTC epoch milliseconds
	Symbol    string  `json:"symbol" example:"BTC"`              // Uppercase ticker
	Price     float64 `json:"price" example:"46813.21"`          // Observed price
}

// StatisticsResponse is the JSON structure returned by
// GET /cryptocurrency/statistics/{symbol}.
type StatisticsResponse struct {
	Symbol string     `json:"symbol" example:"BTC"`   // Ticker requested
	Oldest PricePoint `json:"oldest"`                 // First observation in the series
	Newest PricePoint `json:"newest"`                 // Last observation in the series
	Min    float64    `json:"min" example:"33276.59"` // Lowest price across the series
	Max    float64    `json:"max" example:"47722.66"` // Highest price across the series
}

// NormalizedRangeResponse is one entry of the JSON array returned by
// GET /cryptocurrency/normalized-ranges, and the single object returned by
// GET /cryptocurrency/highest-normalized/{date}.
type NormalizedRangeResponse struct {
	Symbol string  `json:"symbol" example:"ETH"`  // Ticker
	Range  float64 `json:"range" example:"0.6384"` // (max-min)/min volatility measure
}
