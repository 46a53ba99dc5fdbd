package main

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fakeartist/internal/app"
	"fakeartist/internal/config"
	"fakeartist/internal/domain"
	httpTransport "fakeartist/internal/transport/http"
	"fakeartist/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up logger
	var logger *slog.Logger
	logOpts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Logging.Level),
	}

	if cfg.Logging.Format == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, logOpts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, logOpts))
	}

	slog.SetDefault(logger)

	logger.Info("starting fake artist server",
		"env", cfg.Server.Env,
		"addr", cfg.GetAddr(),
	)

	table, err := loadWords(cfg.Game.WordsFile)
	if err != nil {
		logger.Error("invalid word table", "file", cfg.Game.WordsFile, "error", err)
		os.Exit(1)
	}
	logger.Info("word table loaded", "themes", len(table.Themes()))

	seed := cfg.Game.Seed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			logger.Error("failed to seed rng", "error", err)
			os.Exit(1)
		}
	}
	logger.Debug("rng seeded", "seed", seed)

	game, err := domain.NewGame(table, rand.New(rand.NewPCG(seed, seed>>1|1)), domain.UUIDSource)
	if err != nil {
		logger.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	session := app.NewSession(game, logger)
	defer session.Close()

	server := httpTransport.NewServer(cfg, session, table, logger)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// loadWords returns the built-in table unless a file is configured
func loadWords(path string) (words.Table, error) {
	if path == "" {
		return words.Default(), nil
	}
	table, err := words.Load(path)
	if err != nil {
		return words.Table{}, err
	}
	return table, table.Validate()
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
