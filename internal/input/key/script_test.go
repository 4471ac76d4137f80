package key

import (
	"errors"
	"testing"
	"time"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		script string
		want   []string
	}{
		{"dw", []string{"d", "w"}},
		{"ihé<Esc>", []string{"i", "h", "é", "Escape"}},
		{":wq<CR>", []string{":", "w", "q", "Enter"}},
		{"<C-r><A-x><S-Tab>", []string{"Ctrl+r", "Alt+x", "Shift+Tab"}},
		{"a<lt>b", []string{"a", "<", "b"}},
		{"<Space><BS><Del><F3>", []string{" ", "Backspace", "Delete", "F3"}},
		{"<C-->", []string{"Ctrl+-"}},
		{"a\nb", []string{"a", "Enter", "b"}},
		{"", nil},
	}

	for _, tt := range tests {
		events, err := ParseScript(tt.script, time.Now())
		if err != nil {
			t.Fatalf("ParseScript(%q) error = %v", tt.script, err)
		}
		if len(events) != len(tt.want) {
			t.Fatalf("ParseScript(%q) = %d events, want %d", tt.script, len(events), len(tt.want))
		}
		for i, e := range events {
			if got := e.Canonical(); got != tt.want[i] {
				t.Errorf("ParseScript(%q)[%d] = %q, want %q", tt.script, i, got, tt.want[i])
			}
		}
	}
}

func TestParseScriptTiming(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events, err := ParseScript("g<wait>g", start)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].Timestamp.Equal(start) {
		t.Errorf("first timestamp = %v, want %v", events[0].Timestamp, start)
	}
	want := start.Add(KeyInterval + WaitInterval)
	if !events[1].Timestamp.Equal(want) {
		t.Errorf("second timestamp = %v, want %v", events[1].Timestamp, want)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		script string
		want   error
	}{
		{"abc<Esc", ErrUnterminated},
		{"<bogus>", ErrInvalidSpec},
		{"<Q-x>", ErrInvalidSpec},
		{"<>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := ParseScript(tt.script, time.Now())
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseScript(%q) error = %v, want %v", tt.script, err, tt.want)
		}
	}
}
