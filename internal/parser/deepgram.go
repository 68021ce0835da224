package parser

import (
	"fmt"

	"transcript-normalizer-service/internal/transcript"
)

// parseDeepgram handles Deepgram pre-recorded results. Everything of
// interest sits under results.channels[0].alternatives[0]; an absent or
// truncated path is a hard failure unless the first alternative at
// least carries a "transcript" string. Word entries prefer the
// "punctuated_word" rendering over the bare "word".
func (p *Parser) parseDeepgram(data map[string]any) (*transcript.Transcription, error) {
	results, ok := objectField(data, "results")
	if !ok {
		return nil, fmt.Errorf("%w: Deepgram payload has no results object", ErrBadStructure)
	}
	channels := objectSlice(results, "channels")
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: Deepgram payload has no channels", ErrBadStructure)
	}
	channel := channels[0]
	alternatives := objectSlice(channel, "alternatives")
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("%w: Deepgram payload has no alternatives", ErrBadStructure)
	}
	alternative := alternatives[0]

	language, _ := stringField(channel, "detected_language")

	entries := objectSlice(alternative, "words")
	if entries == nil {
		if fullText, ok := stringField(alternative, "transcript"); ok {
			return &transcript.Transcription{
				Words:        make([]transcript.Word, 0),
				FullText:     fullText,
				LanguageCode: language,
			}, nil
		}
		return nil, fmt.Errorf("%w: Deepgram alternative has neither words nor transcript", ErrBadStructure)
	}

	spec := wordSpec{
		textKeys:    []string{"punctuated_word", "word"},
		startKey:    "start",
		endKey:      "end",
		speakerKeys: []string{"speaker"},
	}

	words := make([]transcript.Word, 0, len(entries))
	for _, entry := range entries {
		if w, ok := p.wordFromEntry("deepgram", entry, spec); ok {
			words = append(words, w)
		}
	}

	fullText, _ := stringField(alternative, "transcript")
	if fullText == "" && len(words) > 0 {
		fullText = transcript.JoinWords(words)
	}

	return &transcript.Transcription{
		Words:        words,
		FullText:     fullText,
		LanguageCode: language,
	}, nil
}
