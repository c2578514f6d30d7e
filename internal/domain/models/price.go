package models

// PriceRecord represents a single price observation for a cryptocurrency.
//
// Fields:
//   - Timestamp: observation time as UTC epoch milliseconds.
//   - Symbol: uppercase ticker the observation belongs to (e.g., "BTC").
//   - Price: observed price.
//
// Records are immutable once constructed; they carry no identity beyond
// their field values.
type PriceRecord struct {
	Timestamp int64   `json:"timestamp" example:"1641009600000"`
	Symbol    string  `json:"symbol" example:"BTC"`
	Price     float64 `json:"price" example:"46813.21"`
}
