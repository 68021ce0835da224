package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpapi "transcript-normalizer-service/internal/api/http"
	"transcript-normalizer-service/internal/app"
	"transcript-normalizer-service/internal/config"
	"transcript-normalizer-service/internal/events"
	"transcript-normalizer-service/internal/observability"
	"transcript-normalizer-service/internal/observability/logging"
	"transcript-normalizer-service/internal/service/normalize"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		// Logger is not configured yet; fall back to a bare write.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("application start failed")
	}

	// Kafka publisher with separate topics for normalized and rejected payloads
	publisher := events.New(&events.Config{
		Enabled:         cfg.Kafka.Enabled,
		Brokers:         cfg.Kafka.Brokers,
		TopicNormalized: cfg.Kafka.TopicNormalized,
		TopicRejected:   cfg.Kafka.TopicRejected,
		Principal:       cfg.Service.Principal,
	})
	defer publisher.Close()

	svc := normalize.New(publisher, logging.WithComponent("normalize"))

	// Observability server on its own port
	obs := observability.NewServer(":" + cfg.Service.MetricsPort)
	obs.Start()

	apiServer := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      httpapi.NewRouter(svc),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", apiServer.Addr).Msg("Transcript normalizer service started")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down HTTP servers")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("api server shutdown error")
	}
	if err := obs.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("observability server shutdown error")
	}
	application.Shutdown()
}
