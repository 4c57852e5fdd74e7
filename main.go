package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"

	"loan-fee/config"
	httpLayer "loan-fee/http"
	"loan-fee/repository"
	"loan-fee/service"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	config.LoadEnv(logger)
	cfg := config.Load()

	feeRepo, closeRepo, err := newFeeRepository(context.Background(), cfg, logger)
	if err != nil {
		logger.Log("msg", "failed to set up fee repository", "err", err)
		os.Exit(1)
	}
	defer closeRepo()

	feeService := service.NewFeeService(feeRepo, service.NewInterpolator(cfg.Interpolation))
	feeService = service.NewLoggingService(log.With(logger, "component", "fee_service"), feeService)

	quoteRepo := repository.NewQuoteRepositoryMemory(cfg.QuoteHistory)

	httpLogger := log.With(logger, "component", "http")
	feeHandler := httpLayer.NewFeeHandler(feeService, quoteRepo, httpLogger)
	feeTableHandler := httpLayer.NewFeeTableHandler(feeRepo, httpLogger)
	quoteHandler := httpLayer.NewQuoteHandler(quoteRepo, httpLogger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/fee/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			httpLogger,
			http.HandlerFunc(feeHandler.CalculateFee),
		),
	)

	mux.Handle(
		"/fee/table",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			httpLogger,
			http.HandlerFunc(feeTableHandler.GetFeeTable),
		),
	)

	mux.Handle(
		"/fee/quotes",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			httpLogger,
			http.HandlerFunc(quoteHandler.ListQuotes),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log("msg", "fee api listening", "addr", server.Addr, "fee_source", cfg.FeeSource, "interpolation", cfg.Interpolation)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Log("msg", "error starting server", "err", err)
		return
	case <-quit:
		logger.Log("msg", "shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log("msg", "error during server shutdown", "err", err)
	}

	logger.Log("msg", "server exited")
}

// newFeeRepository builds the fee source selected by cfg.FeeSource. Postgres
// tables are cached in Redis when REDIS_ADDR is set, otherwise in process memory.
func newFeeRepository(
	ctx context.Context,
	cfg config.Config,
	logger log.Logger,
) (repository.FeeRepository, func(), error) {

	switch cfg.FeeSource {
	case config.FeeSourceMemory:
		return repository.NewDefaultFeeRepository(), func() {}, nil
	case config.FeeSourcePostgres:
	default:
		return nil, nil, fmt.Errorf("unknown fee source %q", cfg.FeeSource)
	}

	pool, err := config.ConnectDB(ctx, cfg.DatabaseURL, log.With(logger, "component", "postgres"))
	if err != nil {
		return nil, nil, err
	}
	pgRepo := repository.NewFeeRepositoryPostgres(pool)

	if cfg.SeedFees {
		for term, fees := range repository.DefaultFeeTables {
			if err := pgRepo.SaveFees(ctx, term, fees); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("seed fees: %w", err)
			}
			logger.Log("msg", "seeded fee table", "term", term, "points", len(fees))
		}
	}

	closers := []func(){pool.Close}
	cache := newCache(ctx, cfg, logger, &closers)

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	cached := repository.NewCachedFeeRepository(pgRepo, cache, log.With(logger, "component", "fee_cache"))
	return cached, closeAll, nil
}

func newCache(
	ctx context.Context,
	cfg config.Config,
	logger log.Logger,
	closers *[]func(),
) repository.CacheRepository {

	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.FeeCacheTTL)
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.FeeCacheTTL)
	if err := redisCache.Ping(ctx); err != nil {
		logger.Log("msg", "redis unavailable, caching fees in memory", "addr", cfg.RedisAddr, "err", err)
		redisCache.Close()
		return repository.NewMemoryCache(cfg.FeeCacheTTL)
	}

	*closers = append(*closers, func() {
		if err := redisCache.Close(); err != nil {
			logger.Log("msg", "failed to close redis connection", "err", err)
		}
	})
	return redisCache
}
