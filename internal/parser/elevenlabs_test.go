package parser

import "testing"

func TestElevenLabs_FieldAliases(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [
			{"text": "one", "start": 0.0, "end": 0.4, "speaker_id": "spk_a"},
			{"word": "two", "start": 0.4, "end": 0.8, "speaker": "spk_b"}
		]
	}`)

	result, err := p.Parse(data, FormatElevenLabs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(result.Words))
	}
	if result.Words[0].SpeakerID != "spk_a" {
		t.Errorf("expected speaker spk_a, got %q", result.Words[0].SpeakerID)
	}
	if result.Words[1].Text != "two" || result.Words[1].SpeakerID != "spk_b" {
		t.Errorf("unexpected aliased word: %+v", result.Words[1])
	}
}

func TestElevenLabs_DerivedFullText(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [
			{"text": "good", "start": 0.0, "end": 0.3},
			{"text": "morning", "start": 0.3, "end": 0.9}
		]
	}`)

	result, err := p.Parse(data, FormatElevenLabs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FullText != "good morning" {
		t.Errorf("expected derived full text 'good morning', got %q", result.FullText)
	}
}

func TestElevenLabs_ExplicitFullTextWins(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"text": "Good morning!",
		"language_code": "en",
		"words": [
			{"text": "good", "start": 0.0, "end": 0.3},
			{"text": "morning", "start": 0.3, "end": 0.9}
		]
	}`)

	result, err := p.Parse(data, FormatElevenLabs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FullText != "Good morning!" {
		t.Errorf("expected provider full text verbatim, got %q", result.FullText)
	}
	if result.LanguageCode != "en" {
		t.Errorf("expected language 'en', got %q", result.LanguageCode)
	}
}

func TestElevenLabs_FullTextOnlyFallback(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{"text": "no word timings here", "language": "de"}`)

	result, err := p.Parse(data, FormatElevenLabs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 0 {
		t.Errorf("expected no words, got %d", len(result.Words))
	}
	if result.FullText != "no word timings here" {
		t.Errorf("unexpected full text: %q", result.FullText)
	}
	if result.LanguageCode != "de" {
		t.Errorf("expected language alias fallback 'de', got %q", result.LanguageCode)
	}
}

func TestElevenLabs_SkipsMalformedEntries(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [
			{"text": "keep", "start": 0.0, "end": 0.5},
			{"text": "no-end", "start": 0.5},
			{"start": 1.0, "end": 1.5},
			{"text": "keep2", "start": 1.5, "end": 2.0}
		]
	}`)

	result, err := p.Parse(data, FormatElevenLabs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 2 {
		t.Fatalf("expected 2 words after skipping, got %d", len(result.Words))
	}
	if result.Words[0].Text != "keep" || result.Words[1].Text != "keep2" {
		t.Errorf("wrong entries survived: %+v", result.Words)
	}
}

func TestElevenLabsAPI_MissingWordsIsFailure(t *testing.T) {
	p := newTestParser()

	result, err := p.Parse(mustDecode(t, `{"text": "only text"}`), FormatElevenLabsAPI)
	if err == nil {
		t.Error("expected error when words array is missing")
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
}

func TestElevenLabsAPI_AudioEventsKeptButExcludedFromFullText(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [
			{"text": "hello", "start": 0.0, "end": 0.5, "type": "word"},
			{"text": "(laughter)", "start": 0.5, "end": 1.2, "type": "audio_event"},
			{"text": "there", "start": 1.2, "end": 1.6, "type": "word"}
		]
	}`)

	result, err := p.Parse(data, FormatElevenLabsAPI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The event stays in the word list for alignment.
	if len(result.Words) != 3 {
		t.Fatalf("expected 3 words including audio event, got %d", len(result.Words))
	}
	// But the derived full text skips it.
	if result.FullText != "hello there" {
		t.Errorf("expected 'hello there', got %q", result.FullText)
	}
}

func TestElevenLabsAPI_ExplicitFullTextKeepsAudioEvents(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"text": "hello (laughter) there",
		"words": [
			{"text": "hello", "start": 0.0, "end": 0.5},
			{"text": "(laughter)", "start": 0.5, "end": 1.2},
			{"text": "there", "start": 1.2, "end": 1.6}
		]
	}`)

	result, err := p.Parse(data, FormatElevenLabsAPI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FullText != "hello (laughter) there" {
		t.Errorf("expected provider text verbatim, got %q", result.FullText)
	}
}
