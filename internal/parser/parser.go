// Package parser normalizes completed-job JSON from third-party
// speech-to-text providers into the internal transcript model.
//
// Each provider has its own adapter that absorbs that provider's field
// naming, nesting and timestamp-unit quirks. The dispatcher selects the
// adapter by format tag, contains adapter failures, and guarantees the
// caller receives either a structurally valid transcription or an
// error, never a panic.
package parser

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"

	"transcript-normalizer-service/internal/transcript"
)

// Format identifies the source schema of a raw transcription payload.
type Format string

const (
	FormatElevenLabs    Format = "elevenlabs"
	FormatElevenLabsAPI Format = "elevenlabs_api"
	FormatWhisper       Format = "whisper"
	FormatDeepgram      Format = "deepgram"
	FormatAssemblyAI    Format = "assemblyai"
	FormatSoniox        Format = "soniox"
)

// Formats lists every recognized source format.
var Formats = []Format{
	FormatElevenLabs,
	FormatElevenLabsAPI,
	FormatWhisper,
	FormatDeepgram,
	FormatAssemblyAI,
	FormatSoniox,
}

// Errors returned by Parse. Adapter-internal entry problems are never
// surfaced as errors; they are skipped with a warning.
var (
	ErrUnknownFormat = errors.New("unknown source format")
	ErrBadStructure  = errors.New("payload structure not recognized")
)

// ParseFormat validates a format tag received from a caller.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Parser dispatches raw provider payloads to the matching adapter.
// The logger is the injected sink for all parse diagnostics; Parser
// holds no other state and is safe for concurrent use.
type Parser struct {
	log zerolog.Logger
}

// New creates a parser that logs through the given sink.
func New(logger zerolog.Logger) *Parser {
	return &Parser{log: logger}
}

// NewDefault creates a parser with a console logger on stderr, for
// callers that do not inject a sink.
func NewDefault() *Parser {
	return New(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())
}

// Parse normalizes one provider payload. It returns a transcription or
// an error; it never panics, and a malformed entry inside the payload
// never discards the rest of the transcript. For identical input the
// output is identical: adapters read only the payload, never the clock.
func (p *Parser) Parse(data map[string]any, format Format) (result *transcript.Transcription, err error) {
	log := p.log.With().Str("format", string(format)).Logger()
	log.Info().Msg("beginning parse")

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("parse panicked")
			result = nil
			err = fmt.Errorf("parse %s: unexpected failure: %v", format, r)
		}
	}()

	switch format {
	case FormatElevenLabs:
		result, err = p.parseElevenLabs(data)
	case FormatElevenLabsAPI:
		result, err = p.parseElevenLabsAPI(data)
	case FormatSoniox:
		result, err = p.parseSoniox(data)
	case FormatWhisper:
		result, err = p.parseWhisper(data)
	case FormatDeepgram:
		result, err = p.parseDeepgram(data)
	case FormatAssemblyAI:
		result, err = p.parseAssemblyAI(data)
	default:
		log.Error().Msg("unsupported source format")
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		return nil, err
	}

	if n := transcript.CountOutOfOrder(result.Words); n > 0 {
		// Reported, not corrected: re-sorting would diverge from the
		// provider's delivered order (see Soniox translation tokens).
		log.Warn().Int("outOfOrder", n).Msg("word timestamps are not monotonically non-decreasing")
	}

	log.Info().
		Int("words", result.WordCount()).
		Int("fullTextChars", len(result.FullText)).
		Msg("parse completed")
	return result, nil
}

// wordSpec describes how one provider encodes a word-like entry.
type wordSpec struct {
	textKeys    []string
	startKey    string
	endKey      string
	speakerKeys []string
	// timeDivisor converts the provider's timestamp unit to seconds
	// (1000 for millisecond providers, 1 otherwise).
	timeDivisor float64
	// readConfidence reads a per-entry confidence, defaulting to 1.0.
	readConfidence bool
}

// wordFromEntry builds a Word from one provider entry. An entry missing
// any of text/start/end, or carrying a non-numeric timestamp, is
// rejected with a warning so the caller skips it and continues.
func (p *Parser) wordFromEntry(provider string, entry map[string]any, spec wordSpec) (transcript.Word, bool) {
	text, hasText := stringField(entry, spec.textKeys...)
	start, startOK, startPresent := floatField(entry, spec.startKey)
	end, endOK, endPresent := floatField(entry, spec.endKey)

	if !hasText || !startPresent || !endPresent {
		p.log.Warn().
			Str("provider", provider).
			Interface("entry", entry).
			Msg("skipping incomplete entry")
		return transcript.Word{}, false
	}
	if !startOK || !endOK {
		p.log.Warn().
			Str("provider", provider).
			Interface("entry", entry).
			Msg("skipping entry with invalid timestamp")
		return transcript.Word{}, false
	}

	div := spec.timeDivisor
	if div == 0 {
		div = 1
	}

	w := transcript.Word{
		Text:       text,
		StartTime:  start / div,
		EndTime:    end / div,
		Confidence: 1.0,
	}
	if speaker, ok := stringField(entry, spec.speakerKeys...); ok {
		w.SpeakerID = speaker
	}
	if spec.readConfidence {
		if c, ok, present := floatField(entry, "confidence"); present {
			if !ok {
				p.log.Warn().
					Str("provider", provider).
					Interface("entry", entry).
					Msg("skipping entry with invalid confidence")
				return transcript.Word{}, false
			}
			w.Confidence = c
		}
	}
	return w, true
}
