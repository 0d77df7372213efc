package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/huynhtrandev/brewpoint-backend/api/routes"
	"github.com/huynhtrandev/brewpoint-backend/internal/branches"
	cartsvc "github.com/huynhtrandev/brewpoint-backend/internal/cart"
	"github.com/huynhtrandev/brewpoint-backend/internal/catalog"
	"github.com/huynhtrandev/brewpoint-backend/internal/fulfillment"
	ordersvc "github.com/huynhtrandev/brewpoint-backend/internal/orders"
	"github.com/huynhtrandev/brewpoint-backend/pkg/config"
	"github.com/huynhtrandev/brewpoint-backend/pkg/enums"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
	"github.com/huynhtrandev/brewpoint-backend/pkg/metrics"
	"github.com/huynhtrandev/brewpoint-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, cfg.Fulfillment.SnapshotTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	directory, err := branches.NewDirectory(branches.Seed())
	if err != nil {
		logg.Error(context.Background(), "invalid branch configuration", err)
		os.Exit(1)
	}
	cat := catalog.Seed()
	fulfillmentMetrics := metrics.NewFulfillmentMetrics(prometheus.DefaultRegisterer)

	cartService, err := cartsvc.NewService(redisClient, cat, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersService, err := ordersvc.NewService(redisClient, fulfillmentMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	defaultMode, err := enums.ParseOrderMode(cfg.Fulfillment.DefaultMode)
	if err != nil {
		defaultMode = enums.OrderModeDelivery
	}
	manager, err := fulfillment.NewManager(fulfillment.ManagerParams{
		Directory:   directory,
		Resolver:    fulfillment.NewKeywordResolver(),
		Store:       redisClient,
		Metrics:     fulfillmentMetrics,
		Logger:      logg,
		DefaultMode: defaultMode,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create fulfillment manager", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, directory, cat, manager, cartService, ordersService),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		shutdownErr = multierr.Append(shutdownErr, <-errCh)
		if shutdownErr != nil {
			logg.Error(ctx, "shutdown finished with errors", shutdownErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
