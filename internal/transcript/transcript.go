// Package transcript defines the normalized transcript model shared by
// all provider adapters and downstream consumers.
package transcript

import "strings"

// Word is the atomic unit of a transcript: a text span with start/end
// times in seconds. SpeakerID is empty when the provider has no
// diarization. Confidence defaults to 1.0 for providers that do not
// report one.
type Word struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"startTime"`
	EndTime    float64 `json:"endTime"`
	SpeakerID  string  `json:"speakerId,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Transcription is the normalized output of a parse: the ordered word
// sequence plus the flat transcript text. Word order is exactly the
// order the provider delivered; it is never re-sorted.
type Transcription struct {
	Words        []Word `json:"words"`
	FullText     string `json:"fullText"`
	LanguageCode string `json:"languageCode,omitempty"`
	// ProviderMetadata is passed through unchanged for providers that
	// attach job/file identifiers to their result payload.
	ProviderMetadata map[string]any `json:"providerMetadata,omitempty"`
}

// WordCount returns the number of timestamped words.
func (t *Transcription) WordCount() int {
	return len(t.Words)
}

// JoinWords derives a flat transcript by joining word texts with single
// spaces, preserving order. Used whenever a provider omits an explicit
// full-text field.
func JoinWords(words []Word) string {
	if len(words) == 0 {
		return ""
	}
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

// CountOutOfOrder returns how many words start earlier than the word
// before them. Providers occasionally interleave token streams (e.g.
// translation tokens), so this is reported, never corrected.
func CountOutOfOrder(words []Word) int {
	n := 0
	for i := 1; i < len(words); i++ {
		if words[i].StartTime < words[i-1].StartTime {
			n++
		}
	}
	return n
}
