package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/evshift/ev-savings-calculator/internal/calculation"
	"github.com/evshift/ev-savings-calculator/internal/config"
	"github.com/evshift/ev-savings-calculator/internal/logging"
	"github.com/evshift/ev-savings-calculator/internal/server"
	"github.com/evshift/ev-savings-calculator/internal/vehicle"
)

var (
	serveAddr       string
	serveRedisAddr  string
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the savings calculator HTTP API",
	Long: `Run the HTTP API exposing POST /calculate, POST /compare, GET /health
and GET /version.

Example:
  evsavings serve --addr :8080 --redis localhost:6379`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveRedisAddr, "redis", "", "Redis address for the vehicle cache (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "YAML server config file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultServerConfig()
	if serveConfigFile != "" {
		var err error
		if cfg, err = config.LoadServerConfig(serveConfigFile); err != nil {
			return err
		}
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveRedisAddr != "" {
		cfg.RedisAddr = serveRedisAddr
	}
	if cfg.RatesFile != "" && ratesFile == "" {
		ratesFile = cfg.RatesFile
	}

	rates, err := loadRates()
	if err != nil {
		return err
	}

	engine := calculation.NewEngine(rates)
	engine.SetLogger(logging.Sugar)

	var cache vehicle.Cache
	if cfg.RedisAddr != "" {
		cache = vehicle.NewRedisCache(cfg.RedisAddr)
		logging.Sugar.Infow("using redis vehicle cache", "addr", cfg.RedisAddr)
	} else {
		cache = vehicle.NewMemoryCache()
	}
	catalog := vehicle.NewCatalog(cache)
	catalog.SetLogger(logging.Sugar)

	limiter := server.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.New(engine, catalog, limiter, logging.Sugar, version).Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Sugar.Infow("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logging.Sugar.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
