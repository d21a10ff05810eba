package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{"simple", "Game A (50 of 100 Trophies)", Record{Name: "Game A", Completed: 50, Total: 100}},
		{"surrounding whitespace", "   Game B (1 of 2 Trophies)  \r", Record{Name: "Game B", Completed: 1, Total: 2}},
		{"parenthesized name", "Halo (2003) (12 of 50 Trophies)", Record{Name: "Halo (2003)", Completed: 12, Total: 50}},
		{"zero total", "Empty (0 of 0 Trophies)", Record{Name: "Empty", Completed: 0, Total: 0}},
		{"extra spaces in counts", "Spaced (  7  of 9 Trophies)", Record{Name: "Spaced", Completed: 7, Total: 9}},
		{"completed above total", "Odd (12 of 10 Trophies)", Record{Name: "Odd", Completed: 12, Total: 10}},
		{"text after paren", "Tail (3 of 4 Trophies) extra", Record{Name: "Tail", Completed: 3, Total: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q): unexpected error %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q): got %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineNotRecord(t *testing.T) {
	for _, line := range []string{"", "   ", "Broken entry", "No parens Trophies", "Only (paren)"} {
		if _, err := ParseLine(line); !errors.Is(err, ErrNotRecord) {
			t.Errorf("ParseLine(%q): got %v, want ErrNotRecord", line, err)
		}
	}
}

func TestParseLineInvalidCounts(t *testing.T) {
	lines := []string{
		"Bad Game (abc of Trophies)",
		"Bad Game (abc of 10 Trophies)",
		"Bad Game (1 of 2 of 3 Trophies)",
		"Bad Game (10 Trophies)",
		"Bad Game (-1 of 10 Trophies)",
		"(1 of 2 Trophies)",
	}
	for _, line := range lines {
		_, err := ParseLine(line)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseLine(%q): got %v, want *ParseError", line, err)
			continue
		}
		if pe.Line != line {
			t.Errorf("ParseError.Line: got %q, want %q", pe.Line, line)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rec  Record
		want float64
	}{
		{Record{Completed: 50, Total: 100}, 50},
		{Record{Completed: 0, Total: 0}, 0},
		{Record{Completed: 5, Total: 0}, 0},
		{Record{Completed: 1, Total: 3}, 100.0 / 3},
		{Record{Completed: 4, Total: 4}, 100},
	}
	for _, tt := range tests {
		if got := tt.rec.Percent(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%+v.Percent(): got %v, want %v", tt.rec, got, tt.want)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{Name: "Game A", Completed: 50, Total: 100},
		{Name: "Halo (2003)", Completed: 0, Total: 0},
		{Name: "Ünïcode Quest", Completed: 7, Total: 70},
	}
	for _, rec := range records {
		line := rec.String()
		got, err := ParseLine(line)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", line, err)
		}
		if got != rec {
			t.Errorf("round trip: got %+v, want %+v", got, rec)
		}
	}

	if got, want := (Record{Name: "Game A", Completed: 50, Total: 100}).String(), "Game A (50 of 100 Trophies)"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"007", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1 2", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCount(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCount(%q): got (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
