package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"waf-querybuilder/cmd/service/internal/sources"
)

func main() {
	log := newLogger()

	port := getenv("PORT", "8080")
	resolver, resolverErr := sources.NewResolverFromEnv(log)
	if resolverErr != nil {
		log.Info().Msg("sourceRef resolver disabled; inline sources only")
	}
	h := NewHandler(resolver, log)

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Get("/health", handleHealth)
	r.Post("/queries/app-access", h.HandleAppAccessQuery)
	r.Post("/queries/waf", h.HandleWAFQuery)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	log.Info().Str("port", port).Msg("query-builder service listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}

	if err := <-shutdownErr; err != nil {
		log.Fatal().Err(err).Msg("shutdown error")
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// newLogger builds the process logger: JSON to stderr for log pipelines, a
// console writer when LOG_PRETTY is set, level from LOG_LEVEL.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if l, err := zerolog.ParseLevel(getenv("LOG_LEVEL", "info")); err == nil {
		level = l
	}
	logger := zerolog.New(os.Stderr)
	if os.Getenv("LOG_PRETTY") != "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	return logger.Level(level).With().Timestamp().Str("service", "query-builder").Logger()
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
