// main is the entry point of the Personal API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Build the static profile source (constructs the personal-info
//     record exactly once, before the server accepts anything)
//  4. Register all HTTP routes and wrap them in middleware
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/personal-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/personal-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aarekaz/api/internal/config"
	"github.com/Aarekaz/api/internal/http/handlers/profile"
	"github.com/Aarekaz/api/internal/http/middleware"
	"github.com/Aarekaz/api/internal/storage/static"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config and panics if anything is wrong.
	// The name "Must" signals: if this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21).
	// Structured logging writes key=value pairs rather than plain strings,
	// making logs easy to filter/search in tools like Loki or Datadog.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting personal-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Build the Profile Source ───────────────────────────────────────
	// static.New constructs and validates the personal-info record NOW,
	// before any request can arrive. The rest of the code sees only the
	// storage.Storage INTERFACE, not *static.Static — swapping the
	// hardcoded data for a file or database later only requires changing
	// this one line.
	storage, err := static.New()
	if err != nil {
		log.Error("failed to initialise profile source",
			slog.String("error", err.Error()))
		os.Exit(1) // non-zero exit code signals failure to the OS / CI system
	}

	log.Info("profile source initialised")

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// http.NewServeMux() creates an empty router.
	// HandleFunc maps a METHOD+PATTERN to a handler function.
	//
	// Route table:
	//   GET /         → API status ("online" + current time)
	//   GET /info     → the process-wide personal-info record
	//   GET /study    → study info, built fresh per request
	//   GET /metrics  → Prometheus exposition
	//
	// "GET /{$}" matches ONLY the root path. A plain "GET /" would match
	// every path without a more specific route, and unknown paths would
	// get a 200 instead of the 404 they deserve.
	//
	// The method in the pattern also buys us 405 for free: the mux
	// answers "method not allowed" to e.g. POST /info without any code
	// of ours running.
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", profile.Status())
	router.HandleFunc("GET /info", profile.GetInfo(storage))
	router.HandleFunc("GET /study", profile.GetStudy(storage))
	router.Handle("GET /metrics", promhttp.Handler())

	// ── 5. Wrap Routes in Middleware ──────────────────────────────────────
	// Middleware composes by nesting, so the LAST wrap runs FIRST:
	// metrics counts every request, including ones the limiter rejects.
	var handler http.Handler = router

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		handler = limiter.Wrap(handler)

		log.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
		)
	}

	handler = middleware.Metrics(handler)

	// ── 6. Create the HTTP Server ─────────────────────────────────────────
	// http.Server is a struct. We configure it here but don't start it yet.
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr, // e.g. "localhost:8080"
		Handler: handler,             // every request goes through the chain

		// Production hardening — set timeouts to prevent slow-client attacks.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 7. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks forever (it loops accepting connections).
	// If we called it here in main(), the graceful-shutdown code below
	// would never run. So we run it in a separate goroutine.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed when Shutdown() is
		// called. That's expected — we don't want to log it as an error.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 8. Wait for Shutdown Signal ───────────────────────────────────────
	// make(chan os.Signal, 1) creates a buffered channel of size 1.
	// Buffered so we don't miss the signal if main is briefly busy.
	done := make(chan os.Signal, 1)

	// signal.Notify registers our channel to receive specific OS signals:
	//   os.Interrupt = Ctrl+C (SIGINT)
	//   syscall.SIGTERM = sent by `kill <pid>` or container orchestrators
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// <-done blocks (pauses) the main goroutine here.
	// The program stays alive because this goroutine is running.
	// When a signal arrives, done receives it and we unblock.
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	// context.WithTimeout gives the shutdown a 5-second deadline.
	// If in-flight requests don't finish within 5 seconds,
	// the context cancels and Shutdown returns an error.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// server.Shutdown:
	//   • Stops accepting new connections
	//   • Waits for active requests to complete (up to ctx deadline)
	//   • Returns nil on clean shutdown, error if deadline exceeded
	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
//	JSON logs are easy to ingest by log aggregators (Loki, CloudWatch, etc.)
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo, // INFO and above in production
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug, // more verbose in staging
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug, // all levels in development
			}),
		)
	}
}
