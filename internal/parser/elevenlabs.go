package parser

import "transcript-normalizer-service/internal/transcript"

// parseElevenLabs handles payloads from the ElevenLabs web app export.
// Word entries in the wild carry either "text" or "word" and either
// "speaker_id" or "speaker"; timestamps are seconds. A payload with no
// "words" list but a top-level "text" still yields a full-text-only
// transcription.
func (p *Parser) parseElevenLabs(data map[string]any) (*transcript.Transcription, error) {
	spec := wordSpec{
		textKeys:    []string{"text", "word"},
		startKey:    "start",
		endKey:      "end",
		speakerKeys: []string{"speaker_id", "speaker"},
	}

	words := make([]transcript.Word, 0)
	for _, entry := range objectSlice(data, "words") {
		if w, ok := p.wordFromEntry("elevenlabs", entry, spec); ok {
			words = append(words, w)
		}
	}

	fullText, _ := stringField(data, "text")
	if fullText == "" && len(words) > 0 {
		fullText = transcript.JoinWords(words)
	}
	language, _ := stringField(data, "language_code", "language")

	return &transcript.Transcription{
		Words:        words,
		FullText:     fullText,
		LanguageCode: language,
	}, nil
}
