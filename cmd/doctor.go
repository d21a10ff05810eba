package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nibzard/trophies/internal/catalog"
	"github.com/nibzard/trophies/internal/config"
	"github.com/nibzard/trophies/internal/logging"
)

func doctorCommand(cws *config.ConfigWithSources, std streams, args []string) error {
	flags := flag.NewFlagSet("trophies doctor", flag.ContinueOnError)
	flags.SetOutput(std.err)
	verbose := flags.Bool("v", false, "Verbose output")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := cws.Config
	path, err := catalogPath(cfg, flags.Args())
	if err != nil {
		return err
	}

	out := std.out
	fmt.Fprintln(out, "Trophies Doctor")
	fmt.Fprintln(out, "===============")
	fmt.Fprintln(out)

	allOK := true

	fmt.Fprintln(out, "Config:")
	if len(cws.Files) == 0 {
		fmt.Fprintln(out, "  ✅ No config files (using defaults)")
	} else {
		for _, f := range cws.Files {
			fmt.Fprintf(out, "  ✅ %s\n", f)
		}
	}
	fmt.Fprintf(out, "  ✅ Log level: %s (%s)\n", cfg.LogLevel, cws.Sources["log_level"])
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Catalog: %s\n", path)
	c, report, err := catalog.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(out, "  ❌ File not found")
		allOK = false
	case err != nil:
		fmt.Fprintf(out, "  ❌ Error: %v\n", err)
		allOK = false
	default:
		fmt.Fprintf(out, "  ✅ %d records\n", c.Len())
		for _, skip := range report.Skipped {
			fmt.Fprintf(out, "  ⚠️  Line %d skipped: %s\n", skip.Number, skip.Err)
		}
		if len(report.Duplicates) > 0 {
			fmt.Fprintf(out, "  ⚠️  Duplicate names (last counts kept): %s\n", strings.Join(report.Duplicates, ", "))
		}

		result := c.Validate()
		if result.Valid {
			fmt.Fprintln(out, "  ✅ Valid")
		} else {
			allOK = false
			for _, verr := range result.Errors {
				fmt.Fprintf(out, "  ❌ %v\n", verr)
			}
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  ⚠️  %s\n", w)
		}
		if *verbose {
			for _, rec := range c.Records() {
				fmt.Fprintf(out, "     %s  [%.2f%%]\n", rec, rec.Percent())
			}
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Journal: %s\n", cfg.LogDir)
	if !cfg.Journal {
		fmt.Fprintln(out, "  ✅ Disabled")
	} else if info, err := os.Stat(cfg.LogDir); err == nil && !info.IsDir() {
		fmt.Fprintln(out, "  ❌ Not a directory")
		allOK = false
	} else if logDir, err := logging.FindLogDir(cfg.LogDir, path); err != nil {
		fmt.Fprintf(out, "  ❌ Error: %v\n", err)
		allOK = false
	} else if latest, _ := logging.FindLatestLog(logDir); latest != "" {
		fmt.Fprintf(out, "  ✅ Latest: %s\n", latest)
	} else {
		fmt.Fprintln(out, "  ✅ No sessions recorded yet")
	}
	fmt.Fprintln(out)

	if !allOK {
		fmt.Fprintln(out, "❌ Some checks failed")
		return errors.New("doctor checks failed")
	}
	fmt.Fprintln(out, "✅ All checks passed")
	return nil
}
