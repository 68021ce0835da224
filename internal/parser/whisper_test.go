package parser

import "testing"

func TestWhisper_SegmentFlattening(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"language": "en",
		"segments": [
			{"words": [
				{"word": "first", "start": 0.0, "end": 0.4},
				{"word": "segment", "start": 0.4, "end": 1.0}
			]},
			{"words": [
				{"word": "second", "start": 1.0, "end": 1.5}
			]}
		]
	}`)

	result, err := p.Parse(data, FormatWhisper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 3 {
		t.Fatalf("expected 3 flattened words, got %d", len(result.Words))
	}
	if result.Words[2].Text != "second" {
		t.Errorf("expected last word 'second', got %q", result.Words[2].Text)
	}
	if result.FullText != "first segment second" {
		t.Errorf("expected derived full text, got %q", result.FullText)
	}
	if result.LanguageCode != "en" {
		t.Errorf("expected language 'en', got %q", result.LanguageCode)
	}
}

func TestWhisper_TopLevelWordsPreferred(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [{"word": "top", "start": 0.0, "end": 0.2}],
		"segments": [{"words": [{"word": "nested", "start": 0.0, "end": 0.2}]}]
	}`)

	result, err := p.Parse(data, FormatWhisper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 1 || result.Words[0].Text != "top" {
		t.Errorf("expected only top-level words, got %+v", result.Words)
	}
}

// A non-numeric timestamp skips the entry, not the transcript.
func TestWhisper_NonNumericTimestampSkipped(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [
			{"word": "one", "start": 0.0, "end": 0.5},
			{"word": "two", "start": "not-a-number", "end": 1.0},
			{"word": "three", "start": 1.0, "end": 1.5}
		]
	}`)

	result, err := p.Parse(data, FormatWhisper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(result.Words))
	}
	if result.Words[0].Text != "one" || result.Words[1].Text != "three" {
		t.Errorf("wrong entries survived: %+v", result.Words)
	}
}

func TestWhisper_StringTimestampsAccepted(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{
		"words": [{"word": "quoted", "start": "1.5", "end": "2.5"}]
	}`)

	result, err := p.Parse(data, FormatWhisper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(result.Words))
	}
	if result.Words[0].StartTime != 1.5 || result.Words[0].EndTime != 2.5 {
		t.Errorf("expected 1.5/2.5, got %v/%v", result.Words[0].StartTime, result.Words[0].EndTime)
	}
}

func TestWhisper_FullTextOnlyFallback(t *testing.T) {
	p := newTestParser()
	data := mustDecode(t, `{"text": "plain transcription", "language": "fr"}`)

	result, err := p.Parse(data, FormatWhisper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Words) != 0 {
		t.Errorf("expected no words, got %d", len(result.Words))
	}
	if result.FullText != "plain transcription" {
		t.Errorf("unexpected full text: %q", result.FullText)
	}
	if result.LanguageCode != "fr" {
		t.Errorf("expected language 'fr', got %q", result.LanguageCode)
	}
}

func TestWhisper_NoWordsNoText(t *testing.T) {
	p := newTestParser()

	result, err := p.Parse(mustDecode(t, `{"segments": []}`), FormatWhisper)
	if err == nil {
		t.Error("expected error when payload has neither words nor text")
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
}
