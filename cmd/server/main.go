package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sisgate/gateway-api/internal/authz"
	"github.com/sisgate/gateway-api/internal/config"
	"github.com/sisgate/gateway-api/internal/db"
	"github.com/sisgate/gateway-api/internal/httpapi"
	"github.com/sisgate/gateway-api/internal/store"
	"github.com/sisgate/gateway-api/internal/token"
	"github.com/sisgate/gateway-api/internal/vault"
)

func main() {
	// Configure structured logging
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.With().Str("service", "gateway-api").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Pretty logging for local dev
	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	ctx := context.Background()

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	st := store.NewPG(pool)

	keys, err := vault.Dial(cfg.GRPCServerAddress, cfg.VaultSecretKey, cfg.SystemCode)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to vault")
	}

	tokens, err := token.NewManager(keys, cfg.Algorithm, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token configuration")
	}

	engine := authz.NewEngine(st)
	srv := httpapi.NewServer(st, tokens, engine, keys, cfg)

	// No WriteTimeout: proxied calls and websocket sessions can
	// legitimately outlive any fixed deadline.
	httpServer := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     srv.Routes(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("project", cfg.ProjectName).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("server stopped")
}
