package store

import (
	"sort"
	"strings"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// PriceSeriesStore owns the mapping from symbol to its chronologically
// sorted price series.
//
// The store is built once at startup and never mutated afterwards, so any
// number of concurrent readers may query it without locking. Query layers
// receive the internal slices directly and must treat them as read-only.
//
// Invariants:
//   - Every stored series is sorted non-decreasing by timestamp.
//   - No series is empty (symbols with zero records are not inserted).
//   - The map key equals the Symbol field of every record in its series.
type PriceSeriesStore struct {
	series  map[string][]models.PriceRecord
	symbols []string
}

// Build constructs an immutable store from loader output.
//
// Behavior:
//   - Keys are normalized to uppercase.
//   - Each series is copied and stably sorted by timestamp ascending, so
//     records with equal timestamps keep the order the loader emitted them
//     in. This makes oldest/newest selection deterministic when duplicate
//     timestamps exist.
//   - Symbols with no records are skipped entirely.
//
// Parameters:
//   - recordsBySymbol: unordered records grouped by symbol, as produced by
//     the startup loader.
//
// Returns:
//   - *PriceSeriesStore: the built snapshot. No insert/update/delete
//     operations exist past this point.
func Build(recordsBySymbol map[string][]models.PriceRecord) *PriceSeriesStore {
	s := &PriceSeriesStore{
		series: make(map[string][]models.PriceRecord, len(recordsBySymbol)),
	}

	for symbol, records := range recordsBySymbol {
		if len(records) == 0 {
			continue
		}
		key := strings.ToUpper(symbol)

		owned := make([]models.PriceRecord, len(records))
		copy(owned, records)
		sort.SliceStable(owned, func(i, j int) bool {
			return owned[i].Timestamp < owned[j].Timestamp
		})

		s.series[key] = owned
		s.symbols = append(s.symbols, key)
	}

	// Sorted key list gives every full-store scan a deterministic order;
	// plain map iteration would not.
	sort.Strings(s.symbols)

	return s
}

// Lookup returns the series for a symbol, matching case-insensitively.
//
// The returned slice is the store's own copy and must not be modified.
// The second return value is false when the symbol is not loaded; callers
// decide how absence is surfaced.
func (s *PriceSeriesStore) Lookup(symbol string) ([]models.PriceRecord, bool) {
	series, ok := s.series[strings.ToUpper(symbol)]
	return series, ok
}

// Symbols returns all loaded symbols in ascending order.
//
// The returned slice is shared and must not be modified.
func (s *PriceSeriesStore) Symbols() []string {
	return s.symbols
}

// Len returns the number of loaded symbols.
func (s *PriceSeriesStore) Len() int {
	return len(s.series)
}
