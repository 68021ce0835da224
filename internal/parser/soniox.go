package parser

import (
	"fmt"
	"sort"

	"transcript-normalizer-service/internal/transcript"
)

// parseSoniox handles async Soniox file-transcription results. Tokens
// carry millisecond timestamps, per-token confidence and optionally a
// language tag; the first tagged token decides the transcript language.
// Tokens explicitly marked is_final == false are streaming partials and
// discarded (file jobs should deliver only final tokens, but the API
// reuses the streaming token shape). A job that completed with zero
// tokens is a legitimate empty transcript, not a failure.
func (p *Parser) parseSoniox(data map[string]any) (*transcript.Transcription, error) {
	tokens := objectSlice(data, "tokens")
	if len(tokens) == 0 {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.log.Warn().Strs("availableKeys", keys).Msg("no tokens list in Soniox payload")

		if status, _ := stringField(data, "status"); status == "completed" {
			p.log.Info().Msg("Soniox job completed with no tokens, treating as empty transcript")
			return &transcript.Transcription{
				Words:    make([]transcript.Word, 0),
				FullText: "",
			}, nil
		}
		return nil, fmt.Errorf("%w: Soniox payload has no tokens", ErrBadStructure)
	}

	spec := wordSpec{
		textKeys:       []string{"text"},
		startKey:       "start_ms",
		endKey:         "end_ms",
		speakerKeys:    []string{"speaker"},
		timeDivisor:    1000,
		readConfidence: true,
	}

	words := make([]transcript.Word, 0, len(tokens))
	for _, token := range tokens {
		if isFinal, ok := token["is_final"].(bool); ok && !isFinal {
			continue
		}
		if w, ok := p.wordFromEntry("soniox", token, spec); ok {
			words = append(words, w)
		}
	}

	fullText, _ := stringField(data, "text")
	if fullText == "" && len(words) > 0 {
		fullText = transcript.JoinWords(words)
	}

	var language string
	for _, token := range tokens {
		if lang, ok := stringField(token, "language"); ok {
			language = lang
			break
		}
	}

	result := &transcript.Transcription{
		Words:        words,
		FullText:     fullText,
		LanguageCode: language,
	}
	if metadata, ok := objectField(data, "soniox_metadata"); ok {
		result.ProviderMetadata = metadata
	}

	p.log.Debug().
		Int("words", len(words)).
		Str("language", language).
		Msg("Soniox token walk finished")
	return result, nil
}
