package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/cache"
	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/config"
	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/export"
	httpx "github.com/diillson/bizcase-simulator-go/internal/adapter/driving/http"
	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/projection"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
	"github.com/diillson/bizcase-simulator-go/internal/infra/logger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		Long: "Starts the JSON API. Settings come from --server-config (optional) and\n" +
			"BIZCASE_* environment variables; a .env file in the working directory is loaded first.",
		RunE: runServe,
	}
	cmd.Flags().String("server-config", "", "Path to the server settings file (yaml, toml or json)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	// .env é opcional
	_ = godotenv.Load()

	path, _ := cmd.Flags().GetString("server-config")
	cfg, err := config.LoadServerConfig(path)
	if err != nil {
		return err
	}

	log := logger.New(cfg.App.Env)

	var store repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		store = cache.NewRedisCache(cfg.Cache.RedisAddr)
		log.Info("using redis cache", "addr", cfg.Cache.RedisAddr)
	} else {
		store = cache.NewMemoryCache()
		log.Info("using in-memory cache")
	}

	srv := httpx.New(cfg.HTTP.Addr, httpx.Options{
		Compute: func(p entity.Parameters) entity.ProjectionResult {
			result := projection.Project(p)
			result.RunID = uuid.NewString()
			return result
		},
		Cache:         store,
		CacheTTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		Export:        export.NewExportRepository(),
		Logger:        log,
		ExposeMetrics: cfg.Metrics.Enabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr, "metrics", cfg.Metrics.Enabled)

	select {
	case err := <-errCh:
		log.Error("http server error", "err", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
		return err
	}
	log.Info("graceful shutdown complete")
	return nil
}
