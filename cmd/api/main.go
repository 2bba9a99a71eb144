package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	transferApp "github.com/mcubank/transfers/internal/application/transfer"
	"github.com/mcubank/transfers/internal/clearing"
	"github.com/mcubank/transfers/internal/config"
	"github.com/mcubank/transfers/internal/controller"
	"github.com/mcubank/transfers/internal/domain/account"
	"github.com/mcubank/transfers/internal/ledger"
	"github.com/mcubank/transfers/internal/observability"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(cfg.Observability.LogLevel, os.Stdout)

	var metrics *observability.Metrics
	if cfg.Observability.EnableMetrics {
		metrics = observability.NewMetrics("transfers", nil)
	}

	// --- Ledger seeded from config ---
	balance, err := cfg.SeedBalance()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid seed balance")
	}
	acct, err := account.NewAccount(cfg.Account.ID, cfg.Account.Name, cfg.Account.Number, balance)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid seed account")
	}
	acct.ProfileImageURL = cfg.Account.ProfileImageURL
	l := ledger.New(acct)
	if metrics != nil {
		metrics.LedgerBalance.Set(balance.InexactFloat64())
	}

	// --- Clearing gateway with circuit breaker ---
	gateway := clearing.NewSimulatedGateway("clearing",
		clearing.WithLatency(cfg.Clearing.Latency),
		clearing.WithFailureRate(cfg.Clearing.FailureRate),
	)
	breaker := clearing.NewBreaker(gateway.Name(), clearing.BreakerSettings{
		Threshold: uint32(cfg.Clearing.BreakerThreshold),
		Timeout:   cfg.Clearing.BreakerTimeout,
	})

	// --- Application ---
	processUC := transferApp.NewProcessTransferUseCase(l, gateway, breaker, logger, metrics)

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		Ledger:     l,
		ProcessUC:  processUC,
		Metrics:    metrics,
		CORSConfig: cfg.Server.CORS,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("addr", addr).
			Str("account", cfg.Account.ID).
			Str("balance", balance.StringFixed(2)).
			Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		case <-quit:
			logger.Info().Msg("Shutting down server...")
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancelShutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error().Err(err).Msg("Server error")
	}
	logger.Info().Msg("Server exited")
}
