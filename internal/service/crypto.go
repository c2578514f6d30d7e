package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/store"
)

// dateLayout is the UTC calendar-date format used by the highest-normalized
// endpoint: zero-padded yyyy-mm-dd.
const dateLayout = "2006-01-02"

var (
	// ErrUnknownSymbol signals a lookup for a symbol that was never loaded.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrNoDataForDate signals that no loaded symbol has any record on the
	// requested calendar date.
	ErrNoDataForDate = errors.New("no data for date")
)

// CryptoService defines the query operations offered over the loaded
// price series. All operations are pure reads over the immutable store
// and are safe to call concurrently.
type CryptoService interface {
	Statistics(ctx context.Context, symbol string) (*models.CryptoStatistics, error)
	NormalizedRanges(ctx context.Context) []models.NormalizedPriceRange
	HighestNormalizedOnDate(ctx context.Context, date string) (*models.NormalizedPriceRange, error)
}

type cryptoService struct {
	store *store.PriceSeriesStore
}

// NewCryptoService builds the query service over a built store snapshot.
func NewCryptoService(st *store.PriceSeriesStore) CryptoService {
	return &cryptoService{store: st}
}

// Statistics returns min/max/oldest/newest over the full series of one
// symbol. Lookup is case-insensitive; an unloaded symbol yields
// ErrUnknownSymbol.
func (s *cryptoService) Statistics(_ context.Context, symbol string) (*models.CryptoStatistics, error) {
	series, ok := s.store.Lookup(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}

	// Non-empty and sorted ascending by store invariant, so first/last are
	// oldest/newest.
	min, max := priceBounds(series)
	return &models.CryptoStatistics{
		Symbol: strings.ToUpper(symbol),
		Oldest: series[0],
		Newest: series[len(series)-1],
		Min:    min,
		Max:    max,
	}, nil
}

// NormalizedRanges computes (max-min)/min over the full series of every
// loaded symbol and returns the entries sorted descending by range.
// Equal ranges are ordered by symbol ascending so the output is
// deterministic.
func (s *cryptoService) NormalizedRanges(_ context.Context) []models.NormalizedPriceRange {
	ranges := make([]models.NormalizedPriceRange, 0, s.store.Len())

	for _, symbol := range s.store.Symbols() {
		series, _ := s.store.Lookup(symbol)
		min, max := priceBounds(series)
		ranges = append(ranges, models.NormalizedPriceRange{
			Symbol: symbol,
			Range:  (max - min) / min,
		})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].Range != ranges[j].Range {
			return ranges[i].Range > ranges[j].Range
		}
		return ranges[i].Symbol < ranges[j].Symbol
	})

	return ranges
}

// HighestNormalizedOnDate returns the symbol with the highest normalized
// range among records falling on the given UTC calendar date.
//
// Behavior:
//   - date must already be a valid yyyy-mm-dd string; each record's epoch-ms
//     timestamp is formatted to a UTC date and compared for equality.
//   - Symbols without any record on the date are excluded entirely rather
//     than scored zero.
//   - Symbols are visited in ascending order and only a strictly greater
//     range displaces the current best, so ties go to the first symbol in
//     sorted order.
//   - ErrNoDataForDate when no symbol qualifies.
func (s *cryptoService) HighestNormalizedOnDate(_ context.Context, date string) (*models.NormalizedPriceRange, error) {
	var best *models.NormalizedPriceRange

	for _, symbol := range s.store.Symbols() {
		series, _ := s.store.Lookup(symbol)

		min, max := math.Inf(1), math.Inf(-1)
		matched := false
		for _, r := range series {
			if time.UnixMilli(r.Timestamp).UTC().Format(dateLayout) != date {
				continue
			}
			matched = true
			if r.Price < min {
				min = r.Price
			}
			if r.Price > max {
				max = r.Price
			}
		}
		if !matched {
			continue
		}

		rng := (max - min) / min
		if best == nil || rng > best.Range {
			best = &models.NormalizedPriceRange{Symbol: symbol, Range: rng}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDataForDate, date)
	}
	return best, nil
}

// priceBounds scans a non-empty series and returns the lowest and highest
// prices in it.
func priceBounds(series []models.PriceRecord) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range series {
		if r.Price < min {
			min = r.Price
		}
		if r.Price > max {
			max = r.Price
		}
	}
	return min, max
}
