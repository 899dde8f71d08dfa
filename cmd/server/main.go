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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"billsplit/internal/config"
	httpapi "billsplit/internal/http"
	"billsplit/internal/ocr"
	"billsplit/internal/service"
	"billsplit/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var extractor ocr.Extractor
	if cfg.GeminiAPIKey != "" {
		gemini, err := ocr.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Error("Failed to initialize receipt extractor", "error", err)
			os.Exit(1)
		}
		extractor = gemini
		slog.Info("Receipt extractor initialized", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set, receipt scanning disabled")
	}

	srv := httpapi.NewServer(cfg.Addr(), service.NewSplitService(), extractor, cfg.CORSAllowOrigin)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
