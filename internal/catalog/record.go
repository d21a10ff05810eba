package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	trophiesWord   = "Trophies"
	countSeparator = " of "
)

// ErrNotRecord is returned by ParseLine for lines that do not look like
// trophy records at all (blank lines, headings, free text).
var ErrNotRecord = errors.New("not a trophy record")

// ParseError describes a line that looks like a record but whose trophy
// counts cannot be used.
type ParseError struct {
	Line   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid entry %q: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid entry %q: %s", e.Line, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is a single game entry.
type Record struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Percent returns the completion percentage, or 0 when the game has no
// trophies.
func (r Record) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Total) * 100
}

// String renders the record in catalog file form, without a trailing newline.
func (r Record) String() string {
	return fmt.Sprintf("%s (%d of %d %s)", r.Name, r.Completed, r.Total, trophiesWord)
}

// ParseLine parses one catalog line.
//
// It returns ErrNotRecord for lines that should be skipped silently and a
// *ParseError for lines with malformed counts.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, "(") || !strings.Contains(line, trophiesWord) {
		return Record{}, ErrNotRecord
	}

	open := strings.LastIndex(line, "(")
	name := strings.TrimSpace(line[:open])
	rest := line[open+1:]
	if end := strings.Index(rest, ")"); end >= 0 {
		rest = rest[:end]
	}
	counts := strings.TrimSpace(strings.ReplaceAll(rest, trophiesWord, ""))

	parts := strings.Split(counts, countSeparator)
	if len(parts) != 2 {
		return Record{}, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("expected \"<completed> of <total>\", got %q", counts),
		}
	}

	completed, err := parseCount(parts[0])
	if err != nil {
		return Record{}, &ParseError{Line: line, Reason: "completed count", Err: err}
	}
	total, err := parseCount(parts[1])
	if err != nil {
		return Record{}, &ParseError{Line: line, Reason: "total count", Err: err}
	}
	if name == "" {
		return Record{}, &ParseError{Line: line, Reason: "missing game name"}
	}

	return Record{Name: name, Completed: completed, Total: total}, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// ParseCount parses a trophy count typed by a user. Only plain ASCII digits
// are accepted; signs, spaces, and separators are rejected.
func ParseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
