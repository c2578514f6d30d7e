package models

// CryptoStatistics summarizes the full price series of one symbol.
//
// Fields:
//   - Symbol: the uppercase ticker the statistics were computed for.
//   - Oldest: the record with the smallest timestamp in the series.
//   - Newest: the record with the largest timestamp in the series.
//   - Min: the lowest price observed across the whole series.
//   - Max: the highest price observed across the whole series.
//
// Computed on demand from the store; never persisted.
//
// swagger:model CryptoStatistics
type CryptoStatistics struct {
	Symbol string      `json:"symbol" example:"BTC"`
	Oldest PriceRecord `json:"oldest"`
	Newest PriceRecord `json:"newest"`
	Min    float64     `json:"min" example:"33276.59"`
	Max    float64     `json:"max" example:"47722.66"`
}

// NormalizedPriceRange is the scale-free volatility of one symbol:
// (max - min) / min over a chosen subset of its series.
//
// When min is zero the division propagates the raw floating-point result
// (+Inf, or NaN when max is zero too); callers see it unmodified.
//
// swagger:model NormalizedPriceRange
type NormalizedPriceRange struct {
	Symbol string  `json:"symbol" example:"ETH"`
	Range  float64 `json:"range" example:"0.6384"`
}
