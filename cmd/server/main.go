package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ohlc_backend/internal/app/di"
	"ohlc_backend/internal/app/router"
	historyhandler "ohlc_backend/internal/feature/history/transport/handler"
	"ohlc_backend/internal/platform/config"
	platformhandler "ohlc_backend/internal/platform/http/handler"
	"ohlc_backend/internal/platform/logger"
)

func main() {
	// .envを読み込む
	config.LoadDotEnv()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lg := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Usecase
	historyUC, market, err := di.NewHistoryUsecase(cfg.Provider)
	if err != nil {
		log.Fatal(err)
	}

	// 銘柄カタログ。DBが使えなくても /api/history は提供する
	handlers := router.Handlers{
		History: historyhandler.NewHistoryHandler(historyUC),
		Health:  platformhandler.NewHealthHandler(market.Name(), nil),
	}
	if cfg.Database.Driver != "none" {
		catalog, err := di.NewCatalog(ctx, cfg)
		if err != nil {
			slog.Warn("symbol catalog unavailable; /api/symbols disabled", "error", err)
		} else {
			defer func() {
				if err := catalog.DB.Close(); err != nil {
					slog.Error("failed to close catalog db", "error", err)
				}
			}()
			handlers.Symbols = catalog.Handler
			handlers.Health = platformhandler.NewHealthHandler(market.Name(), catalog.DB)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(lg, handlers),
		ReadHeaderTimeout: cfg.Server.RequestTimeout,
		WriteTimeout:      cfg.Server.RequestTimeout + cfg.Provider.Timeout,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Server.Addr, "provider", market.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
