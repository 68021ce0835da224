package parser

import (
	"fmt"

	"transcript-normalizer-service/internal/transcript"
)

// parseWhisper handles OpenAI Whisper verbose output. Word-level
// timestamps live either in a top-level "words" list or nested under
// "segments"; when neither exists the top-level "text" still yields a
// full-text-only transcription. Whisper has no diarization.
func (p *Parser) parseWhisper(data map[string]any) (*transcript.Transcription, error) {
	entries := objectSlice(data, "words")
	if entries == nil {
		for _, segment := range objectSlice(data, "segments") {
			entries = append(entries, objectSlice(segment, "words")...)
		}
	}

	language, _ := stringField(data, "language")

	if len(entries) == 0 {
		if fullText, ok := stringField(data, "text"); ok {
			return &transcript.Transcription{
				Words:        make([]transcript.Word, 0),
				FullText:     fullText,
				LanguageCode: language,
			}, nil
		}
		return nil, fmt.Errorf("%w: Whisper payload has neither word list nor top-level text", ErrBadStructure)
	}

	spec := wordSpec{
		textKeys: []string{"word", "text"},
		startKey: "start",
		endKey:   "end",
	}

	words := make([]transcript.Word, 0, len(entries))
	for _, entry := range entries {
		if w, ok := p.wordFromEntry("whisper", entry, spec); ok {
			words = append(words, w)
		}
	}

	fullText, _ := stringField(data, "text")
	if fullText == "" && len(words) > 0 {
		fullText = transcript.JoinWords(words)
	}

	return &transcript.Transcription{
		Words:        words,
		FullText:     fullText,
		LanguageCode: language,
	}, nil
}
