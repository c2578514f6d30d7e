package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/store"
)

// dayMs is one UTC calendar day of epoch milliseconds.
const dayMs = int64(24 * 60 * 60 * 1000)

func rec(ts int64, symbol string, price float64) models.PriceRecord {
	return models.PriceRecord{Timestamp: ts, Symbol: symbol, Price: price}
}

func newService(data map[string][]models.PriceRecord) CryptoService {
	return NewCryptoService(store.Build(data))
}

func TestStatistics(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"BTC": {rec(1000, "BTC", 100), rec(2000, "BTC", 150), rec(3000, "BTC", 90)},
	})

	stats, err := svc.Statistics(context.Background(), "BTC")
	require.NoError(t, err)

	assert.Equal(t, "BTC", stats.Symbol)
	assert.Equal(t, 90.0, stats.Min)
	assert.Equal(t, 150.0, stats.Max)
	assert.Equal(t, 100.0, stats.Oldest.Price)
	assert.Equal(t, 90.0, stats.Newest.Price)
	assert.LessOrEqual(t, stats.Oldest.Timestamp, stats.Newest.Timestamp)
}

func TestStatistics_CaseInsensitiveAndUnknown(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"BTC": {rec(1000, "BTC", 100)},
	})

	stats, err := svc.Statistics(context.Background(), "btc")
	require.NoError(t, err)
	assert.Equal(t, "BTC", stats.Symbol)

	_, err = svc.Statistics(context.Background(), "doge")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSymbol))
	assert.Contains(t, err.Error(), "doge")
}

func TestStatistics_SingleRecord(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"ADA": {rec(5000, "ADA", 1.25)},
	})

	stats, err := svc.Statistics(context.Background(), "ADA")
	require.NoError(t, err)
	assert.Equal(t, stats.Oldest, stats.Newest)
	assert.Equal(t, 1.25, stats.Min)
	assert.Equal(t, 1.25, stats.Max)
}

func TestNormalizedRanges_DescendingWithTieBreak(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"BTC": {rec(1000, "BTC", 100), rec(2000, "BTC", 150), rec(3000, "BTC", 90)},
		"ETH": {rec(1000, "ETH", 50), rec(2000, "ETH", 50)}, // flat series, range 0
		"XRP": {rec(1000, "XRP", 1), rec(2000, "XRP", 1)},   // range 0 too: tie with ETH
	})

	ranges := svc.NormalizedRanges(context.Background())
	require.Len(t, ranges, 3)

	// BTC: (150-90)/90
	assert.Equal(t, "BTC", ranges[0].Symbol)
	assert.InDelta(t, 0.6667, ranges[0].Range, 0.0001)

	// Tied zero ranges ordered by symbol ascending.
	assert.Equal(t, "ETH", ranges[1].Symbol)
	assert.Equal(t, "XRP", ranges[2].Symbol)

	for i := 1; i < len(ranges); i++ {
		assert.GreaterOrEqual(t, ranges[i-1].Range, ranges[i].Range)
	}
}

func TestNormalizedRanges_ZeroMinPropagatesInf(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"NUL": {rec(1000, "NUL", 0), rec(2000, "NUL", 10)},
	})

	ranges := svc.NormalizedRanges(context.Background())
	require.Len(t, ranges, 1)
	assert.True(t, math.IsInf(ranges[0].Range, 1))
}

func TestHighestNormalizedOnDate(t *testing.T) {
	day := int64(1641081600000) // 2022-01-02T00:00:00Z

	svc := newService(map[string][]models.PriceRecord{
		"BTC": {
			rec(day-1, "BTC", 1), // one ms before midnight: previous day
			rec(day, "BTC", 100),
			rec(day+1000, "BTC", 120),
		},
		"ETH": {
			rec(day+500, "ETH", 50),
			rec(day+600, "ETH", 55),
		},
		"LTC": {
			rec(day - dayMs, "LTC", 10), // only data the day before
		},
	})

	out, err := svc.HighestNormalizedOnDate(context.Background(), "2022-01-02")
	require.NoError(t, err)

	// BTC: (120-100)/100 = 0.2; ETH: (55-50)/50 = 0.1; LTC excluded.
	assert.Equal(t, "BTC", out.Symbol)
	assert.InDelta(t, 0.2, out.Range, 1e-9)
}

func TestHighestNormalizedOnDate_MidnightBoundary(t *testing.T) {
	day := int64(1641081600000) // 2022-01-02T00:00:00Z

	svc := newService(map[string][]models.PriceRecord{
		// Single record one millisecond before UTC midnight of the target
		// date must not qualify.
		"BTC": {rec(day-1, "BTC", 100)},
	})

	_, err := svc.HighestNormalizedOnDate(context.Background(), "2022-01-02")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDataForDate))

	out, err := svc.HighestNormalizedOnDate(context.Background(), "2022-01-01")
	require.NoError(t, err)
	assert.Equal(t, "BTC", out.Symbol)
}

func TestHighestNormalizedOnDate_TieGoesToFirstSymbol(t *testing.T) {
	day := int64(1641081600000)

	svc := newService(map[string][]models.PriceRecord{
		"ETH": {rec(day, "ETH", 10), rec(day+1, "ETH", 12)},
		"BTC": {rec(day, "BTC", 100), rec(day+1, "BTC", 120)},
	})

	// Both ranges are exactly 0.2; BTC wins by ascending symbol order.
	out, err := svc.HighestNormalizedOnDate(context.Background(), "2022-01-02")
	require.NoError(t, err)
	assert.Equal(t, "BTC", out.Symbol)
}

func TestHighestNormalizedOnDate_NoData(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"BTC": {rec(1641081600000, "BTC", 100)},
	})

	_, err := svc.HighestNormalizedOnDate(context.Background(), "1999-12-31")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDataForDate))
	assert.Contains(t, err.Error(), "1999-12-31")
}

func TestQueries_Idempotent(t *testing.T) {
	svc := newService(map[string][]models.PriceRecord{
		"BTC": {rec(1000, "BTC", 100), rec(2000, "BTC", 150), rec(3000, "BTC", 90)},
		"ETH": {rec(1000, "ETH", 50)},
	})

	first := svc.NormalizedRanges(context.Background())
	second := svc.NormalizedRanges(context.Background())
	assert.Equal(t, first, second)

	s1, err1 := svc.Statistics(context.Background(), "BTC")
	s2, err2 := svc.Statistics(context.Background(), "BTC")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)
}
