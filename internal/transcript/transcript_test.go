package transcript

import "testing"

func TestJoinWords(t *testing.T) {
	tests := []struct {
		name     string
		words    []Word
		expected string
	}{
		{"empty", nil, ""},
		{"single", []Word{{Text: "hello"}}, "hello"},
		{"multiple", []Word{{Text: "hello"}, {Text: "world"}}, "hello world"},
		{"order preserved", []Word{{Text: "b"}, {Text: "a"}}, "b a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinWords(tt.words); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCountOutOfOrder(t *testing.T) {
	tests := []struct {
		name     string
		words    []Word
		expected int
	}{
		{"empty", nil, 0},
		{"single", []Word{{StartTime: 1}}, 0},
		{"ordered", []Word{{StartTime: 0}, {StartTime: 1}, {StartTime: 2}}, 0},
		{"equal starts are fine", []Word{{StartTime: 1}, {StartTime: 1}}, 0},
		{"one regression", []Word{{StartTime: 0}, {StartTime: 2}, {StartTime: 1}}, 1},
		{"interleaved", []Word{{StartTime: 0}, {StartTime: 5}, {StartTime: 1}, {StartTime: 6}, {StartTime: 2}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountOutOfOrder(tt.words); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tr := &Transcription{Words: []Word{{Text: "a"}, {Text: "b"}}}
	if tr.WordCount() != 2 {
		t.Errorf("expected 2, got %d", tr.WordCount())
	}

	empty := &Transcription{}
	if empty.WordCount() != 0 {
		t.Errorf("expected 0, got %d", empty.WordCount())
	}
}
