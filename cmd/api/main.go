package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"ai-marketing/cmd/api/router"
	"ai-marketing/cmd/internal/app"
	"ai-marketing/config"
	"ai-marketing/internal/logger"
)

// @title           AI Marketing Copy API
// @version         1.0
// @description     Product copy, audience, ad and script generation with template fallback
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := app.NewGenerator(ctx, cfg, os.Getenv)
	sel := gen.Selection()

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
	}).Handler(router.New(gen))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.InfoWithFields("api server listening", logger.Fields{
		"addr":     cfg.Server.Addr,
		"provider": sel.Name,
		"remote":   sel.Remote,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Errorf("api server stopped: %v", err)
		os.Exit(1)
	}
}
