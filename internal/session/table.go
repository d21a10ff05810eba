package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/trophies/internal/catalog"
)

const (
	nameWidth   = 35
	trophyWidth = 25
	totalWidth  = 20
	ruleWidth   = 70
)

// WriteTable prints records as the fixed-width completion table.
func WriteTable(w io.Writer, records []catalog.Record) error {
	if _, err := fmt.Fprintf(w, "%-*s %-*s %s\n", nameWidth, "Name:", trophyWidth, "Trophy:", "Percent:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", ruleWidth)); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%-*s %d out of %-*d %.2f%%\n",
			nameWidth, rec.Name, rec.Completed, totalWidth, rec.Total, rec.Percent()); err != nil {
			return err
		}
	}
	return nil
}

// WriteSkipped prints one diagnostic per line dropped during a load.
func WriteSkipped(w io.Writer, report *catalog.LoadReport) error {
	if report == nil {
		return nil
	}
	for _, skipped := range report.Skipped {
		if _, err := fmt.Fprintf(w, "Skipping invalid entry: %s\n", skipped.Text); err != nil {
			return err
		}
	}
	return nil
}
