// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"transcript-normalizer-service/internal/observability/metrics"
)

// Publisher publishes normalization results to separate Kafka topics.
type Publisher struct {
	writerNormalized *kafka.Writer
	writerRejected   *kafka.Writer
	principal        string
	topicNormalized  string
	topicRejected    string
	enabled          bool
	metrics          *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers         []string
	TopicNormalized string
	TopicRejected   string
	Principal       string
	Enabled         bool
}

// New creates a new Kafka event publisher with separate topics for
// normalized transcripts and rejected payloads.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled: false,
			metrics: m,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:       cfg.Principal,
			topicNormalized: cfg.TopicNormalized,
			topicRejected:   cfg.TopicRejected,
			enabled:         false,
			metrics:         m,
		}
	}

	// Longer dial timeout for DNS resolution in Kubernetes
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	writerNormalized := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicNormalized,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	writerRejected := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicRejected,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicNormalized", cfg.TopicNormalized).
		Str("topicRejected", cfg.TopicRejected).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerNormalized: writerNormalized,
		writerRejected:   writerRejected,
		principal:        cfg.Principal,
		topicNormalized:  cfg.TopicNormalized,
		topicRejected:    cfg.TopicRejected,
		enabled:          true,
		metrics:          m,
	}
}

// PublishNormalized publishes a normalized transcript event.
func (p *Publisher) PublishNormalized(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerNormalized, p.topicNormalized, "normalized", key, event)
}

// PublishRejected publishes a rejected payload event.
func (p *Publisher) PublishRejected(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerRejected, p.topicRejected, "rejected", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerNormalized != nil {
		if e := p.writerNormalized.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing normalized writer")
			err = e
		}
	}
	if p.writerRejected != nil {
		if e := p.writerRejected.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing rejected writer")
			err = e
		}
	}
	return err
}
