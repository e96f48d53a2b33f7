package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/api/router"
	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

const (
	warmupTimeout   = 15 * time.Second
	shutdownTimeout = 30 * time.Second
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Run: func(_ *cobra.Command, _ []string) {
			runServer()
		},
	}
}

func runServer() {
	cfg := config.DefaultServiceConfigFromEnv()

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	router.Init(s)

	// Warm up the chain connection so a misconfigured signer surfaces at
	// boot. A dead upstream is not fatal, it will be retried on the first
	// request.
	warmupCtx, cancelWarmup := context.WithTimeout(context.Background(), warmupTimeout)
	if _, _, err := s.Connector.Ensure(warmupCtx); err != nil {
		var configurationErr *transfer.ConfigurationError
		if errors.As(err, &configurationErr) {
			cancelWarmup()
			log.Fatal().Err(err).Msg("Signer is not configured")
		}

		log.Warn().Err(err).Msg("Chain connection warmup failed, retrying on first request")
	}
	cancelWarmup()

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("errors", errs).Msg("Failed to gracefully shut down server")
	}
}
