package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"rental-optimizer/dataset"
	"rental-optimizer/domain"
	"rental-optimizer/metrics"
	"rental-optimizer/repository"
)

// MarketService serves the sample market data in map-ready form. Responses
// are cached by city; the table behind them is static, so the cache only
// saves the marshal/aggregate work on the hot path.
type MarketService struct {
	catalog *dataset.Catalog
	cache   repository.CacheRepository
	ttl     time.Duration
	log     *zap.Logger
}

func NewMarketService(
	catalog *dataset.Catalog,
	cache repository.CacheRepository,
	ttl time.Duration,
	log *zap.Logger,
) *MarketService {
	return &MarketService{catalog: catalog, cache: cache, ttl: ttl, log: log}
}

// ListCities returns the selector view of the sample cities.
func (s *MarketService) ListCities() []domain.CityInfo {
	cities := s.catalog.Cities()
	out := make([]domain.CityInfo, 0, len(cities))
	for _, c := range cities {
		out = append(out, domain.CityInfo{
			Name:      c.Name,
			Country:   c.Country,
			CenterLat: c.CenterLat,
			CenterLon: c.CenterLon,
			Zoom:      c.Zoom,
		})
	}
	return out
}

// Markers returns the map markers for one city, color-coded by yield.
func (s *MarketService) Markers(ctx context.Context, city string) ([]domain.MapMarker, error) {
	key := "markers:" + strings.ToLower(strings.TrimSpace(city))

	var cached []domain.MapMarker
	if s.fromCache(ctx, key, "markers", &cached) {
		return cached, nil
	}

	c, err := s.catalog.ByName(city)
	if err != nil {
		return nil, err
	}

	markers := make([]domain.MapMarker, 0, len(c.Neighborhoods))
	for _, n := range c.Neighborhoods {
		markers = append(markers, domain.MapMarker{
			Neighborhood: n.Name,
			Lat:          n.Lat,
			Lon:          n.Lon,
			YieldPct:     n.AvgYieldPct,
			AvgPriceSqm:  n.AvgPriceSqm,
			Color:        markerColor(n.AvgYieldPct),
		})
	}

	s.toCache(ctx, key, markers)
	return markers, nil
}

// Overview aggregates one city's neighborhood rows.
func (s *MarketService) Overview(ctx context.Context, city string) (domain.CityOverview, error) {
	key := "overview:" + strings.ToLower(strings.TrimSpace(city))

	var cached domain.CityOverview
	if s.fromCache(ctx, key, "overview", &cached) {
		return cached, nil
	}

	c, err := s.catalog.ByName(city)
	if err != nil {
		return domain.CityOverview{}, err
	}

	overview := domain.CityOverview{
		City:       c.Name,
		Regulation: c.Regulation,
	}

	var yieldSum, priceSum float64
	for i, n := range c.Neighborhoods {
		yieldSum += n.AvgYieldPct
		priceSum += n.AvgPriceSqm
		if i == 0 || n.AvgYieldPct > overview.BestYieldPct {
			overview.BestYieldPct = n.AvgYieldPct
			overview.BestYieldNeighborhood = n.Name
		}
		if i == 0 || n.AvgPriceSqm < overview.LowestPriceSqm {
			overview.LowestPriceSqm = n.AvgPriceSqm
			overview.CheapestNeighborhood = n.Name
		}
	}
	count := float64(len(c.Neighborhoods))
	overview.AvgYieldPct = roundTo2Decimals(yieldSum / count)
	overview.AvgPriceSqm = math.Round(priceSum / count)

	s.toCache(ctx, key, overview)
	return overview, nil
}

// Comparison returns per-city averages, highest yield first.
func (s *MarketService) Comparison(ctx context.Context) ([]domain.CityComparison, error) {
	const key = "comparison:all"

	var cached []domain.CityComparison
	if s.fromCache(ctx, key, "comparison", &cached) {
		return cached, nil
	}

	cities := s.catalog.Cities()
	out := make([]domain.CityComparison, 0, len(cities))
	for _, c := range cities {
		var yieldSum, priceSum float64
		for _, n := range c.Neighborhoods {
			yieldSum += n.AvgYieldPct
			priceSum += n.AvgPriceSqm
		}
		count := float64(len(c.Neighborhoods))
		out = append(out, domain.CityComparison{
			City:        c.Name,
			AvgYieldPct: roundTo2Decimals(yieldSum / count),
			AvgPriceSqm: math.Round(priceSum / count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].AvgYieldPct > out[j].AvgYieldPct
	})

	s.toCache(ctx, key, out)
	return out, nil
}

func (s *MarketService) fromCache(ctx context.Context, key, resource string, dest interface{}) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		metrics.CacheMisses.WithLabelValues(resource).Inc()
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn("corrupt cache entry, recomputing",
			zap.String("key", key), zap.Error(err))
		metrics.CacheMisses.WithLabelValues(resource).Inc()
		return false
	}
	metrics.CacheHits.WithLabelValues(resource).Inc()
	return true
}

func (s *MarketService) toCache(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("failed to marshal cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.log.Warn("failed to store cache entry", zap.String("key", key), zap.Error(err))
	}
}

func markerColor(yieldPct float64) string {
	switch {
	case yieldPct >= MarkerHighYieldPct:
		return "green"
	case yieldPct >= MarkerMediumYieldPct:
		return "orange"
	default:
		return "red"
	}
}
