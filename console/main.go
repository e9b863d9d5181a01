package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeafMist/nlp-console/internal/analysis"
	"github.com/DeafMist/nlp-console/internal/charts"
	"github.com/DeafMist/nlp-console/internal/config"
	"github.com/DeafMist/nlp-console/internal/logger"
	"github.com/DeafMist/nlp-console/internal/nlp"
	"github.com/DeafMist/nlp-console/internal/sentiment"
	"github.com/DeafMist/nlp-console/internal/ui"
)

func main() {
	log := logger.New("console")
	cfg, err := config.LoadConsole()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	started := time.Now()
	pipeline, err := nlp.New()
	if err != nil {
		log.Error("init nlp pipeline", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("nlp pipeline loaded", slog.Duration("took", time.Since(started)))

	pages, err := ui.New()
	if err != nil {
		log.Error("init templates", slog.Any("err", err))
		os.Exit(1)
	}

	svc := analysis.New(
		pipeline,
		sentiment.New(),
		charts.New(cfg.Charts.Width, cfg.Charts.Height),
		cfg.Keywords.MinLen,
		log,
	)

	srv := &server{log: log, cfg: cfg, analyzer: svc, pages: pages}

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("console starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}
