package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quotewell/quotewell/internal/config"
	logpkg "github.com/quotewell/quotewell/internal/logger"
	"github.com/quotewell/quotewell/internal/metrics"
	"github.com/quotewell/quotewell/internal/repository/corpus"
	chiTransport "github.com/quotewell/quotewell/internal/transport/chi"
	directoryuc "github.com/quotewell/quotewell/internal/usecase/directory"
	healthuc "github.com/quotewell/quotewell/internal/usecase/health"
	quotesuc "github.com/quotewell/quotewell/internal/usecase/quotes"
	"github.com/quotewell/quotewell/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quotewell HTTP server",
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve()
	},
}

func serve() error {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting quotewell API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("data_dir", cfg.Data.Dir),
	)

	// The corpus is fatal at startup: the process must not serve without it.
	repo, err := corpus.Load(cfg.Data.Dir)
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}
	logger.Info("Corpus loaded",
		zap.Int("quotes", len(repo.Quotes())),
		zap.Int("authors", len(repo.Authors())),
		zap.Int("tags", len(repo.Tags())),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterQuoteMetrics()

	// Create use case services — composition root
	engine := quotesuc.New(repo, nil)
	directory := directoryuc.New(repo)
	health := healthuc.New(repo)

	server := chiTransport.NewServer(engine, directory, health, chiTransport.Limits{
		MaxCount:     cfg.API.MaxCount,
		DefaultLimit: cfg.API.DefaultLimit,
		MaxLimit:     cfg.API.MaxLimit,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if cfg.RateLimit.Enabled {
		r.Use(chiTransport.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	r.Use(metrics.Middleware())
	server.Routes(r)

	if cfg.Static.Dir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Static.Dir)))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
