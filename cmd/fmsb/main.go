package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/GuptaDeepak23/FMSb/internal/config"
	"github.com/GuptaDeepak23/FMSb/internal/detector"
	"github.com/GuptaDeepak23/FMSb/internal/server"
	"github.com/GuptaDeepak23/FMSb/internal/store"
)

func main() {
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05",
		}),
	)
	slog.SetDefault(logger)

	cfg := config.FromEnv()

	st, err := openStore(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	det := openDetector(logger)
	defer det.Close()

	srv := server.New(server.Config{
		Store:       st,
		Detector:    det,
		Logger:      logger,
		FrontendURL: cfg.FrontendURL,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(cfg.Addr())
	}()
	logger.Info("server listening", "addr", cfg.Addr())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}

// openStore picks the feedback store backend: PostgreSQL when a database
// host is configured, otherwise an embedded SQLite file under ~/.fmsb.
func openStore(cfg config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.HasDatabase() {
		logger.Info("using postgres store", "host", cfg.DBHost, "database", cfg.DBName)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return store.NewPostgresStore(ctx, store.PostgresConfig{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
		})
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dbDir := filepath.Join(homeDir, ".fmsb")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dbDir, "fmsb.db")
	logger.Info("no database host configured, using embedded store", "path", dbPath)
	return store.NewSQLiteStore(dbPath)
}

// openDetector tries the MediaPipe sidecar first and falls back to the mock
// detector so the feedback endpoints still work without Python installed.
func openDetector(logger *slog.Logger) detector.Detector {
	mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		logger.Warn("MediaPipe not available, using mock detector", "error", err)
		return detector.NewMockDetector()
	}

	logger.Info("using MediaPipe hand detection")
	return mp
}
