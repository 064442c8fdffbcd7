package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"rental-optimizer/dataset"
	"rental-optimizer/repository"
)

// countingCache wraps the in-memory cache to observe hit behavior.
type countingCache struct {
	*repository.MemoryCache
	gets int
	sets int
}

func (c *countingCache) Get(ctx context.Context, key string) (string, bool) {
	c.gets++
	return c.MemoryCache.Get(ctx, key)
}

func (c *countingCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.sets++
	return c.MemoryCache.Set(ctx, key, value, ttl)
}

func newTestMarket(t *testing.T) (*MarketService, *countingCache) {
	cache := &countingCache{MemoryCache: repository.NewMemoryCache()}
	svc := NewMarketService(dataset.Default(), cache, 5*time.Minute, zaptest.NewLogger(t))
	return svc, cache
}

func TestListCities(t *testing.T) {
	svc, _ := newTestMarket(t)

	cities := svc.ListCities()
	require.Len(t, cities, 4)
	assert.Equal(t, "Lisbon", cities[0].Name)
	assert.Equal(t, "Portugal", cities[0].Country)
	assert.NotZero(t, cities[0].CenterLat)
}

func TestMarkers_ColorCoding(t *testing.T) {
	svc, _ := newTestMarket(t)

	markers, err := svc.Markers(context.Background(), "Lisbon")
	require.NoError(t, err)
	require.Len(t, markers, 15)

	byName := map[string]string{}
	for _, m := range markers {
		byName[m.Neighborhood] = m.Color
	}

	assert.Equal(t, "green", byName["Benfica"], "7.1 is high yield")
	assert.Equal(t, "orange", byName["Chiado"], "5.6 is medium yield")
	assert.Equal(t, "red", byName["Alfama"], "5.2 is low yield")
}

func TestMarkers_UnknownCity(t *testing.T) {
	svc, _ := newTestMarket(t)

	_, err := svc.Markers(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrCityNotFound)
}

func TestMarkers_SecondCallServedFromCache(t *testing.T) {
	svc, cache := newTestMarket(t)

	first, err := svc.Markers(context.Background(), "Madrid")
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	second, err := svc.Markers(context.Background(), "Madrid")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets, "second call must not recompute")
	assert.Equal(t, 2, cache.gets)
}

func TestOverview(t *testing.T) {
	svc, _ := newTestMarket(t)

	overview, err := svc.Overview(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Berlin", overview.City)
	assert.InDelta(t, 6.33, overview.AvgYieldPct, 0.01)
	assert.Equal(t, "Neukölln", overview.BestYieldNeighborhood)
	assert.InDelta(t, 7.8, overview.BestYieldPct, 0.001)
	assert.Equal(t, "Wedding", overview.CheapestNeighborhood)
	assert.InDelta(t, 2900, overview.LowestPriceSqm, 0.001)
	assert.NotEmpty(t, overview.Regulation)
}

func TestOverview_CaseInsensitiveLookup(t *testing.T) {
	svc, _ := newTestMarket(t)

	overview, err := svc.Overview(context.Background(), "  paris ")
	require.NoError(t, err)
	assert.Equal(t, "Paris", overview.City)
}

func TestComparison_SortedByYield(t *testing.T) {
	svc, _ := newTestMarket(t)

	comparison, err := svc.Comparison(context.Background())
	require.NoError(t, err)
	require.Len(t, comparison, 4)

	assert.Equal(t, "Berlin", comparison[0].City)
	assert.Equal(t, "Paris", comparison[3].City)
	for i := 1; i < len(comparison); i++ {
		assert.GreaterOrEqual(t, comparison[i-1].AvgYieldPct, comparison[i].AvgYieldPct)
	}
}
