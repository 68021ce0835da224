// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transcript_normalizer"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Parse metrics
	ParsesTotal     *prometheus.CounterVec
	ParseDuration   *prometheus.HistogramVec
	WordsParsed     *prometheus.CounterVec
	EmptyResults    *prometheus.CounterVec
	OutOfOrderWords *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ParsesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Total number of parse attempts",
		}, []string{"provider", "outcome"}),
		ParseDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Duration of parse calls in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"provider"}),
		WordsParsed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_parsed_total",
			Help:      "Total number of timestamped words produced",
		}, []string{"provider"}),
		EmptyResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_results_total",
			Help:      "Total number of successful parses that produced zero words",
		}, []string{"provider"}),
		OutOfOrderWords: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "out_of_order_words_total",
			Help:      "Total number of words delivered out of timestamp order",
		}, []string{"provider"}),

		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of normalize requests",
		}, []string{"status"}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordParse records one parse attempt and its outcome.
func (m *Metrics) RecordParse(provider string, words int, err error, seconds float64) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.ParsesTotal.WithLabelValues(provider, outcome).Inc()
	m.ParseDuration.WithLabelValues(provider).Observe(seconds)
	if err != nil {
		return
	}
	if words == 0 {
		m.EmptyResults.WithLabelValues(provider).Inc()
		return
	}
	m.WordsParsed.WithLabelValues(provider).Add(float64(words))
}

// RecordOutOfOrder records words delivered out of timestamp order.
func (m *Metrics) RecordOutOfOrder(provider string, count int) {
	if count > 0 {
		m.OutOfOrderWords.WithLabelValues(provider).Add(float64(count))
	}
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, seconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(seconds)
}
