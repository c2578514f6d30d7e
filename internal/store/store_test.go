package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

func rec(ts int64, symbol string, price float64) models.PriceRecord {
	return models.PriceRecord{Timestamp: ts, Symbol: symbol, Price: price}
}

func TestBuild_SortsByTimestamp(t *testing.T) {
	s := Build(map[string][]models.PriceRecord{
		"BTC": {rec(3000, "BTC", 90), rec(1000, "BTC", 100), rec(2000, "BTC", 150)},
	})

	series, ok := s.Lookup("BTC")
	require.True(t, ok)
	require.Len(t, series, 3)
	assert.Equal(t, int64(1000), series[0].Timestamp)
	assert.Equal(t, int64(2000), series[1].Timestamp)
	assert.Equal(t, int64(3000), series[2].Timestamp)
}

func TestBuild_StableOnEqualTimestamps(t *testing.T) {
	// Two records share a timestamp; the loader's emission order must survive.
	s := Build(map[string][]models.PriceRecord{
		"ETH": {rec(2000, "ETH", 11), rec(1000, "ETH", 10), rec(2000, "ETH", 12)},
	})

	series, ok := s.Lookup("ETH")
	require.True(t, ok)
	require.Len(t, series, 3)
	assert.Equal(t, 11.0, series[1].Price)
	assert.Equal(t, 12.0, series[2].Price)
}

func TestBuild_SkipsEmptySeries(t *testing.T) {
	s := Build(map[string][]models.PriceRecord{
		"BTC":  {rec(1000, "BTC", 100)},
		"DOGE": {},
	})

	assert.Equal(t, 1, s.Len())
	_, ok := s.Lookup("DOGE")
	assert.False(t, ok)
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	input := []models.PriceRecord{rec(2000, "BTC", 150), rec(1000, "BTC", 100)}
	s := Build(map[string][]models.PriceRecord{"BTC": input})

	// Mutating the caller's slice must not reach the store.
	input[0] = rec(9000, "BTC", 1)

	series, ok := s.Lookup("BTC")
	require.True(t, ok)
	assert.Equal(t, int64(1000), series[0].Timestamp)
	assert.Equal(t, int64(2000), series[1].Timestamp)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	s := Build(map[string][]models.PriceRecord{
		"btc": {rec(1000, "BTC", 100)},
	})

	cases := []struct {
		query string
		found bool
	}{
		{"BTC", true},
		{"btc", true},
		{"Btc", true},
		{"ETH", false},
		{"", false},
	}

	for _, tc := range cases {
		_, ok := s.Lookup(tc.query)
		assert.Equal(t, tc.found, ok, "lookup %q", tc.query)
	}
}

func TestSymbols_SortedAscending(t *testing.T) {
	s := Build(map[string][]models.PriceRecord{
		"XRP": {rec(1, "XRP", 1)},
		"BTC": {rec(1, "BTC", 1)},
		"LTC": {rec(1, "LTC", 1)},
	})

	assert.Equal(t, []string{"BTC", "LTC", "XRP"}, s.Symbols())
}
