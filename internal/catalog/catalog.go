package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Catalog is an ordered set of records keyed by game name.
type Catalog struct {
	names   []string
	records map[string]Record
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{records: make(map[string]Record)}
}

// SkippedLine is a line that was dropped during a load.
type SkippedLine struct {
	Number int
	Text   string
	Err    *ParseError
}

// LoadReport summarizes what a load discarded.
type LoadReport struct {
	Skipped    []SkippedLine
	Duplicates []string // names seen more than once, in first-seen order
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	c, report, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog file: %w", err)
	}
	return c, report, nil
}

// Read parses catalog lines from r.
func Read(r io.Reader) (*Catalog, *LoadReport, error) {
	c := New()
	report := &LoadReport{}
	seen := make(map[string]int)

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, nil, readErr
		}
		if text == "" && readErr == io.EOF {
			break
		}
		lineNo++
		rec, err := ParseLine(text)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				report.Skipped = append(report.Skipped, SkippedLine{
					Number: lineNo,
					Text:   strings.TrimSpace(text),
					Err:    pe,
				})
			}
		} else {
			seen[rec.Name]++
			if seen[rec.Name] == 2 {
				report.Duplicates = append(report.Duplicates, rec.Name)
			}
			c.Set(rec)
		}
		if readErr == io.EOF {
			break
		}
	}
	return c, report, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Get returns the record for name.
func (c *Catalog) Get(name string) (Record, bool) {
	rec, ok := c.records[name]
	return rec, ok
}

// Has reports whether name is present.
func (c *Catalog) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Set inserts rec, or replaces the counts of an existing record with the same
// name without moving it.
func (c *Catalog) Set(rec Record) {
	if _, ok := c.records[rec.Name]; !ok {
		c.names = append(c.names, rec.Name)
	}
	c.records[rec.Name] = rec
}

// Add inserts a new record. It fails if the name is already present.
func (c *Catalog) Add(rec Record) error {
	if c.Has(rec.Name) {
		return fmt.Errorf("game %q already exists", rec.Name)
	}
	c.Set(rec)
	return nil
}

// Update replaces the counts of an existing record.
func (c *Catalog) Update(name string, completed, total int) error {
	if !c.Has(name) {
		return fmt.Errorf("game %q not found", name)
	}
	c.Set(Record{Name: name, Completed: completed, Total: total})
	return nil
}

// Names returns the game names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Records returns the records in catalog order.
func (c *Catalog) Records() []Record {
	out := make([]Record, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.records[name])
	}
	return out
}

// SortedByPercent returns the records ordered by ascending completion
// percentage. Records with equal percentages keep catalog order.
func (c *Catalog) SortedByPercent() []Record {
	out := c.Records()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Percent() < out[j].Percent()
	})
	return out
}

// WriteTo writes every record as one catalog line.
func (c *Catalog) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, name := range c.names {
		written, err := fmt.Fprintln(bw, c.records[name].String())
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Save replaces the file at path with the catalog contents.
func (c *Catalog) Save(path string) error {
	var b strings.Builder
	if _, err := c.WriteTo(&b); err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}
