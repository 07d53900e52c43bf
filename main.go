package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/exclusive-store/server/internal/agent/tools"
	"github.com/exclusive-store/server/internal/carousel"
	"github.com/exclusive-store/server/internal/catalog"
	"github.com/exclusive-store/server/internal/core"
	"github.com/exclusive-store/server/internal/httpapi"
	"github.com/exclusive-store/server/internal/model"
	"github.com/exclusive-store/server/internal/repo"
	logx "github.com/exclusive-store/server/pkg/logger"
	pkgredis "github.com/exclusive-store/server/pkg/redis"
)

// AppConfig defines all configurable parameters of the service,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	// Infrastructure
	Redis pkgredis.Config
	HTTP  model.HTTPConfig

	// Storefront
	Catalog  model.CatalogConfig
	Cart     model.CartConfig
	Carousel model.CarouselConfig
}

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		logx.Warn().Err(err).Msg("could not load .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env, Level: cfg.LogLevel})
	gin.SetMode(env.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logx.Fatal().Err(err).Msg("server stopped with error")
	}
	logx.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg AppConfig) error {
	cartTTL, err := time.ParseDuration(cfg.Cart.TTL)
	if err != nil {
		return err
	}

	carts, closeCarts, err := newCartRepository(ctx, cfg.Redis, cartTTL)
	if err != nil {
		return err
	}
	defer closeCarts()

	syncer, err := newCatalogSyncer(cfg.Catalog)
	if err != nil {
		return err
	}
	go syncer.Run(ctx)

	// snapshots live no longer than the carts they were merged from
	feed := carousel.NewFeed(carousel.NewRandomSampler(), cfg.Carousel.SampleSize).WithTTL(cartTTL)
	go feed.Run(ctx, 0)

	svc, err := carousel.NewService(cfg.Carousel, syncer, carts, feed, nil)
	if err != nil {
		return err
	}

	runner, err := tools.NewRunner(ctx, tools.Dependencies{Carousel: svc, Catalog: syncer})
	if err != nil {
		return err
	}

	shutdownTimeout, err := time.ParseDuration(cfg.HTTP.ShutdownTimeout)
	if err != nil {
		logx.Warn().Err(err).Str("value", cfg.HTTP.ShutdownTimeout).Msg("invalid HTTP_SHUTDOWN_TIMEOUT, using 15s")
		shutdownTimeout = 15 * time.Second
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(&httpapi.App{Carousel: svc, Catalog: syncer, Tools: runner}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.HTTP.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logx.Info().Dur("timeout", shutdownTimeout).Msg("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}

func newCartRepository(ctx context.Context, cfg pkgredis.Config, ttl time.Duration) (model.CartRepository, func(), error) {
	if !cfg.Enabled() {
		logx.Warn().Msg("REDIS_URL not set, keeping carts in memory")
		return repo.NewMemoryCartRepository(), func() {}, nil
	}

	rdb, err := cfg.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	logx.Info().Dur("cart_ttl", ttl).Msg("connected to redis")
	return repo.NewRedisCartRepository(rdb, ttl), func() { _ = rdb.Close() }, nil
}

func newCatalogSyncer(cfg model.CatalogConfig) (*catalog.Syncer, error) {
	interval, err := time.ParseDuration(cfg.RefreshInterval)
	if err != nil {
		return nil, err
	}

	if cfg.URL == "" {
		logx.Warn().Msg("CATALOG_URL not set, serving the demo catalogue")
		return catalog.NewSyncer(catalog.NewStaticSource(catalog.DemoProducts), 0), nil
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return catalog.NewSyncer(catalog.NewHTTPSource(cfg.URL, timeout), interval), nil
}
