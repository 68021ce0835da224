package parser

import (
	"fmt"
	"strings"

	"transcript-normalizer-service/internal/transcript"
)

// parseElevenLabsAPI handles payloads from the official ElevenLabs
// speech-to-text API. The shape matches the web export, except that the
// "words" list is mandatory and may contain audio-event entries
// (type == "audio_event", e.g. "(laughter)"). Audio events are kept as
// timestamped words for downstream alignment but excluded from the
// derived full text.
func (p *Parser) parseElevenLabsAPI(data map[string]any) (*transcript.Transcription, error) {
	entries := objectSlice(data, "words")
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no words array in ElevenLabs API payload", ErrBadStructure)
	}

	spec := wordSpec{
		textKeys:    []string{"text", "word"},
		startKey:    "start",
		endKey:      "end",
		speakerKeys: []string{"speaker_id", "speaker"},
	}

	words := make([]transcript.Word, 0, len(entries))
	for _, entry := range entries {
		if w, ok := p.wordFromEntry("elevenlabs_api", entry, spec); ok {
			words = append(words, w)
		}
	}

	fullText, _ := stringField(data, "text")
	if fullText == "" && len(words) > 0 {
		// Audio events are tagged only on the raw entry, so the join
		// falls back to a parenthesis heuristic on the word text.
		spoken := make([]transcript.Word, 0, len(words))
		for _, w := range words {
			if isAudioEventText(w.Text) {
				continue
			}
			spoken = append(spoken, w)
		}
		fullText = transcript.JoinWords(spoken)
	}
	language, _ := stringField(data, "language_code")

	return &transcript.Transcription{
		Words:        words,
		FullText:     fullText,
		LanguageCode: language,
	}, nil
}

// isAudioEventText reports whether a word's whole text is wrapped in
// parentheses, the way ElevenLabs renders non-speech events.
func isAudioEventText(text string) bool {
	return strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")")
}
