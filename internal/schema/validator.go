// Package schema checks the structural contract of normalized
// transcripts before they are returned or published.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"transcript-normalizer-service/internal/transcript"
)

// Contract violations. A violation here means an adapter has a bug;
// callers treat it as a parse failure rather than emit a partial or
// ambiguous result.
var (
	ErrNilTranscription = errors.New("transcription is nil")
	ErrEmptyWordText    = errors.New("word has empty text")
	ErrMissingFullText  = errors.New("words present but full text empty")
	ErrBadConfidence    = errors.New("confidence outside [0,1]")
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate checks the invariants every adapter must uphold: word text
// is non-empty, confidence stays in [0,1], and a non-empty word list
// always comes with a derived or provider-supplied full text. An empty
// word list with empty full text is legal (empty-but-completed jobs).
func (v *Validator) Validate(t *transcript.Transcription) error {
	if t == nil {
		return ErrNilTranscription
	}
	if t.FullText == "" && hasSpokenWord(t.Words) {
		return ErrMissingFullText
	}
	for i, w := range t.Words {
		if w.Text == "" {
			return fmt.Errorf("word %d: %w", i, ErrEmptyWordText)
		}
		if w.Confidence < 0 || w.Confidence > 1 {
			return fmt.Errorf("word %d: %w: %v", i, ErrBadConfidence, w.Confidence)
		}
	}
	return nil
}

// hasSpokenWord reports whether any word is actual speech. Fully
// parenthesized words are non-speech audio events and may legitimately
// be the only words while the full text stays empty.
func hasSpokenWord(words []transcript.Word) bool {
	for _, w := range words {
		if !(strings.HasPrefix(w.Text, "(") && strings.HasSuffix(w.Text, ")")) {
			return true
		}
	}
	return false
}
