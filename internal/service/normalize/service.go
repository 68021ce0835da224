// Package normalize coordinates the parser, the output contract check,
// metrics and event publishing for one ingestion request.
package normalize

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transcript-normalizer-service/internal/events"
	"transcript-normalizer-service/internal/models"
	"transcript-normalizer-service/internal/observability/metrics"
	"transcript-normalizer-service/internal/parser"
	"transcript-normalizer-service/internal/schema"
	"transcript-normalizer-service/internal/transcript"
)

const (
	eventNormalized = "transcript.normalized"
	eventRejected   = "transcript.rejected"
)

// Service runs normalization jobs. Each job gets a UUID that ties
// together logs, the API response and the published event.
type Service struct {
	parser    *parser.Parser
	publisher *events.Publisher
	validator *schema.Validator
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// Result is the outcome of a successful normalization job.
type Result struct {
	JobID      string                    `json:"jobId"`
	Provider   string                    `json:"provider"`
	Transcript *transcript.Transcription `json:"transcript"`
}

// New creates a normalization service. The logger is threaded into the
// parser as its diagnostic sink.
func New(publisher *events.Publisher, logger zerolog.Logger) *Service {
	return &Service{
		parser:    parser.New(logger),
		publisher: publisher,
		validator: schema.New(),
		metrics:   metrics.DefaultMetrics,
		log:       logger,
	}
}

// Normalize parses one raw provider payload. On success the normalized
// transcript is published and returned; on failure a rejected event is
// published and an error returned. The raw payload is never mutated.
func (s *Service) Normalize(ctx context.Context, raw map[string]any, format parser.Format) (*Result, error) {
	jobID := uuid.NewString()
	log := s.log.With().Str("jobId", jobID).Str("provider", string(format)).Logger()

	start := time.Now()
	result, err := s.parser.Parse(raw, format)
	elapsed := time.Since(start)

	if err == nil {
		if verr := s.validator.Validate(result); verr != nil {
			// An adapter broke the output contract; reject rather than
			// hand downstream a partial result.
			err = fmt.Errorf("output contract violated: %w", verr)
			result = nil
		}
	}

	words := 0
	if result != nil {
		words = result.WordCount()
	}
	s.metrics.RecordParse(string(format), words, err, elapsed.Seconds())

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("normalization failed")
		s.publishRejected(ctx, jobID, format, err)
		return nil, err
	}

	s.metrics.RecordOutOfOrder(string(format), transcript.CountOutOfOrder(result.Words))

	log.Info().
		Int("words", words).
		Int("fullTextChars", len(result.FullText)).
		Dur("elapsed", elapsed).
		Msg("normalization completed")

	s.publishNormalized(ctx, jobID, format, result)

	return &Result{
		JobID:      jobID,
		Provider:   string(format),
		Transcript: result,
	}, nil
}

func (s *Service) publishNormalized(ctx context.Context, jobID string, format parser.Format, t *transcript.Transcription) {
	ev := models.TranscriptNormalized{
		EventType:     eventNormalized,
		JobID:         jobID,
		Provider:      string(format),
		Timestamp:     time.Now().UnixMilli(),
		WordCount:     t.WordCount(),
		FullTextChars: len(t.FullText),
		LanguageCode:  t.LanguageCode,
		Transcript:    t,
	}
	if err := s.publisher.PublishNormalized(ctx, jobID, ev); err != nil {
		s.log.Error().Err(err).Str("jobId", jobID).Msg("failed to publish normalized event")
	}
}

func (s *Service) publishRejected(ctx context.Context, jobID string, format parser.Format, cause error) {
	ev := models.TranscriptRejected{
		EventType: eventRejected,
		JobID:     jobID,
		Provider:  string(format),
		Timestamp: time.Now().UnixMilli(),
		Reason:    cause.Error(),
	}
	if err := s.publisher.PublishRejected(ctx, jobID, ev); err != nil {
		s.log.Error().Err(err).Str("jobId", jobID).Msg("failed to publish rejected event")
	}
}
