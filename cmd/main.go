package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardpanel/internal/analysis"
	appconfig "boardpanel/internal/config"
	"boardpanel/internal/llm"
	"boardpanel/internal/memq"
	"boardpanel/internal/retry"
	"boardpanel/internal/server"
	httpapi "boardpanel/internal/transport/http"
	"boardpanel/internal/workers"
)

func main() {
	cfg := appconfig.Load()
	slog.Info("starting boardpanel", "addr", cfg.HTTPAddr, "workers", cfg.QueueWorkers, "model", cfg.GroqModel)

	if cfg.GroqAPIKey == "" {
		slog.Warn("GROQ_API_KEY is empty, completion calls will fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := analysis.NewStore()
	client := llm.NewClient(cfg)
	policy := retry.Policy{
		MaxAttempts: cfg.RetryMaxAttempts,
		BaseDelay:   cfg.RetryBaseDelay,
	}

	q := memq.New(cfg.QueueBuf, cfg.JobMaxDuration)
	handler := workers.NewAnalysisHandler(store, client, policy)
	q.StartConsumers(ctx, cfg.QueueWorkers, handler.HandleAnalysis)

	handlers := &httpapi.Handlers{
		Store:  store,
		Q:      q,
		Config: cfg,
	}
	r := server.NewRouter(handlers)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	slog.Info("shutting down")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
	cancel()
}
