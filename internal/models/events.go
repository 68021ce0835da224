// Package models defines the event envelopes published after
// normalization.
package models

import "transcript-normalizer-service/internal/transcript"

// TranscriptNormalized is emitted when a provider payload was
// successfully normalized.
type TranscriptNormalized struct {
	EventType     string                    `json:"eventType"`
	JobID         string                    `json:"jobId"`
	Provider      string                    `json:"provider"`
	Timestamp     int64                     `json:"timestamp"`
	WordCount     int                       `json:"wordCount"`
	FullTextChars int                       `json:"fullTextChars"`
	LanguageCode  string                    `json:"languageCode,omitempty"`
	Transcript    *transcript.Transcription `json:"transcript"`
}

// TranscriptRejected is emitted when a provider payload could not be
// normalized. No partial transcript is ever attached.
type TranscriptRejected struct {
	EventType string `json:"eventType"`
	JobID     string `json:"jobId"`
	Provider  string `json:"provider"`
	Timestamp int64  `json:"timestamp"`
	Reason    string `json:"reason"`
}
