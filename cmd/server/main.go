package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/JonMunkholm/catalogdash/internal/config"
	"github.com/JonMunkholm/catalogdash/internal/logging"
	"github.com/JonMunkholm/catalogdash/internal/productapi"
	"github.com/JonMunkholm/catalogdash/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"api_url", cfg.API.BaseURL,
		"page_sizes", cfg.View.PageSizes,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	api := productapi.New(productapi.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	})

	dash := catalog.NewDashboard(api, catalog.Options{
		PageSizes:       cfg.View.PageSizes,
		DefaultPageSize: cfg.View.DefaultPageSize,
		MutationWait:    cfg.Mutation.MaxWaitTime,
	})

	// Initial load runs in the background; the first page request shares it.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.API.Timeout)
	go func() {
		defer cancelLoad()
		if err := dash.Load(loadCtx); err != nil {
			slog.Warn("initial product load failed", "error", err)
		}
	}()

	server := web.NewServer(dash, cfg)

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Let an in-flight save finish so the API and the table agree.
		if n := dash.MutationsInFlight(); n > 0 {
			slog.Info("waiting for product save to complete", "active", n)
			if err := dash.WaitForMutations(shutdownCtx); err != nil {
				slog.Warn("product save did not complete in time", "error", err)
			} else {
				slog.Info("product save completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	<-stopped
	slog.Info("server stopped")
}
