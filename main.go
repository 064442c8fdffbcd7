package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rental-optimizer/config"
	"rental-optimizer/dataset"
	httpLayer "rental-optimizer/http"
	"rental-optimizer/logger"
	"rental-optimizer/repository"
	"rental-optimizer/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	cache := buildCache(cfg, log)
	analysisRepo := repository.NewAnalysisRepositoryMemory()
	catalog := dataset.Default()

	mortgageService := service.NewMortgageService(log)
	calculatorService := service.NewCalculatorService(mortgageService, analysisRepo, log)
	advisorService := service.NewAdvisorService(cfg.Advisor, log)
	comparisonService := service.NewComparisonService(calculatorService, mortgageService, advisorService, log)
	marketService := service.NewMarketService(catalog, cache, config.GetDuration(cfg.Redis.TTL), log)

	analysisHandler := httpLayer.NewAnalysisHandler(calculatorService, comparisonService)
	mortgageHandler := httpLayer.NewMortgageHandler(mortgageService)
	marketHandler := httpLayer.NewMarketHandler(marketService, log)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimit.Capacity,
		config.GetDuration(cfg.RateLimit.WindowSeconds),
	)
	defer rateLimiter.Stop()

	limited := func(route string, h http.HandlerFunc) http.Handler {
		return httpLayer.LoggingMiddleware(log,
			httpLayer.MetricsMiddleware(route,
				httpLayer.RateLimitMiddleware(rateLimiter, h)))
	}
	open := func(route string, h http.HandlerFunc) http.Handler {
		return httpLayer.LoggingMiddleware(log,
			httpLayer.MetricsMiddleware(route, h))
	}

	mux := http.NewServeMux()
	mux.Handle("/api/analysis/compute", limited("analysis_compute", analysisHandler.Compute))
	mux.Handle("/api/analysis/compare", limited("analysis_compare", analysisHandler.Compare))
	mux.Handle("/api/analysis/recent", open("analysis_recent", analysisHandler.Recent))
	mux.Handle("/api/mortgage", limited("mortgage", mortgageHandler.Calculate))
	mux.Handle("/api/cities", open("cities_list", marketHandler.ListCities))
	mux.Handle("/api/cities/comparison", open("cities_comparison", marketHandler.Comparison))
	mux.Handle("/api/cities/{city}/markers", open("city_markers", marketHandler.Markers))
	mux.Handle("/api/cities/{city}/overview", open("city_overview", marketHandler.Overview))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.Web.StaticDir)))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.Server.IdleTimeout),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// buildCache prefers Redis but degrades to the in-memory cache when Redis is
// disabled or unreachable; the market data behind it is static either way.
func buildCache(cfg *config.Config, log *zap.Logger) repository.CacheRepository {
	if !cfg.Redis.Enabled {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("redis unreachable, falling back to in-memory cache", zap.Error(err))
		return repository.NewMemoryCache()
	}

	log.Info("using redis cache", zap.String("address", cfg.Redis.Address))
	return redisCache
}
