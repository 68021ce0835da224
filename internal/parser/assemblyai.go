package parser

import (
	"fmt"

	"transcript-normalizer-service/internal/transcript"
)

// parseAssemblyAI handles completed AssemblyAI transcripts. Words live
// either at the top level or nested per "utterances" entry, and their
// timestamps are milliseconds. A wordless payload with a top-level
// "text" yields a full-text-only transcription.
func (p *Parser) parseAssemblyAI(data map[string]any) (*transcript.Transcription, error) {
	entries := objectSlice(data, "words")
	if entries == nil {
		for _, utterance := range objectSlice(data, "utterances") {
			entries = append(entries, objectSlice(utterance, "words")...)
		}
	}

	language, _ := stringField(data, "language_code")

	if len(entries) == 0 {
		if fullText, ok := stringField(data, "text"); ok {
			return &transcript.Transcription{
				Words:        make([]transcript.Word, 0),
				FullText:     fullText,
				LanguageCode: language,
			}, nil
		}
		return nil, fmt.Errorf("%w: AssemblyAI payload has neither word list nor top-level text", ErrBadStructure)
	}

	spec := wordSpec{
		textKeys:    []string{"text"},
		startKey:    "start",
		endKey:      "end",
		speakerKeys: []string{"speaker"},
		timeDivisor: 1000,
	}

	words := make([]transcript.Word, 0, len(entries))
	for _, entry := range entries {
		if w, ok := p.wordFromEntry("assemblyai", entry, spec); ok {
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
