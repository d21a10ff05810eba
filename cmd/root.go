// Package cmd implements the CLI command structure for trophies.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/trophies/internal/catalog"
	"github.com/nibzard/trophies/internal/config"
	"github.com/nibzard/trophies/internal/logging"
	"github.com/nibzard/trophies/internal/session"
	"github.com/nibzard/trophies/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams bundles the console handles a command talks to.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Run executes the trophies CLI on the process's standard streams.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	flags := flag.NewFlagSet("trophies", flag.ContinueOnError)
	flags.SetOutput(std.err)
	flags.Usage = func() {
		printUsage(flags, std.err)
	}
	help := flags.Bool("help", false, "Show help")
	flags.BoolVar(help, "h", false, "Show help")
	showVersion := flags.Bool("version", false, "Show version")
	flags.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(flags, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(flags, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	logger := logging.NewFromConfig(std.err, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)

	subcommand := "menu"
	remaining := flags.Args()
	if len(remaining) > 0 {
		subcommand = remaining[0]
		remaining = remaining[1:]
	}

	switch subcommand {
	case "menu":
		return menuCommand(ctx, cfg, logger, std, remaining)
	case "view", "ls":
		return viewCommand(cfg, logger, std, remaining)
	case "tui":
		return tuiCommand(ctx, cfg, remaining)
	case "doctor":
		return doctorCommand(cws, std, remaining)
	case "history", "tail":
		return historyCommand(ctx, cfg, std, remaining)
	case "config":
		return configCommand(cws, std, remaining)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(flags, std.out)
		return nil
	default:
		// A bare existing file runs the menu against it.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return menuCommand(ctx, cfg, logger, std, []string{subcommand})
		}
		fmt.Fprintf(std.err, "Unknown command: %s\n", subcommand)
		printUsage(flags, std.err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// catalogPath returns the catalog path from an optional positional argument.
func catalogPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	if len(args) == 1 {
		return cfg.ResolvePath(args[0]), nil
	}
	return cfg.CatalogFile, nil
}

// menuCommand runs the interactive session.
func menuCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, std streams, args []string) error {
	path, err := catalogPath(cfg, args)
	if err != nil {
		return err
	}

	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Journal {
		journal, err := logging.NewRunLogger(cfg.LogDir, path)
		if err != nil {
			logger.Warn("session journal disabled", "err", err)
		} else {
			defer journal.Close()
			logger.Debug("session journal", "path", journal.LogPath)
			opts = append(opts, session.WithJournal(journal))
		}
	}

	return session.New(path, std.in, std.out, opts...).Run(ctx)
}

// viewCommand prints the sorted table once and exits.
func viewCommand(cfg *config.Config, logger *log.Logger, std streams, args []string) error {
	flags := flag.NewFlagSet("trophies view", flag.ContinueOnError)
	flags.SetOutput(std.err)
	if err := flags.Parse(args); err != nil {
		return err
	}
	path, err := catalogPath(cfg, flags.Args())
	if err != nil {
		return err
	}

	c, report, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file '%s' not found", path)
		}
		return fmt.Errorf("loading catalog: %w", err)
	}
	for _, name := range report.Duplicates {
		logger.Info("duplicate entry, keeping last counts", "game", name)
	}
	if err := session.WriteSkipped(std.out, report); err != nil {
		return err
	}
	return session.WriteTable(std.out, c.SortedByPercent())
}

// tuiCommand launches the terminal viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	path, err := catalogPath(cfg, args)
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, cfg, ui.WithCatalogPath(path))
}

// historyCommand prints the latest session journal for the catalog.
func historyCommand(ctx context.Context, cfg *config.Config, std streams, args []string) error {
	flags := flag.NewFlagSet("trophies history", flag.ContinueOnError)
	flags.SetOutput(std.err)
	follow := flags.Bool("f", false, "Follow the journal (like tail -f)")
	flags.BoolVar(follow, "follow", false, "Follow the journal (like tail -f)")
	n := flags.Int("n", 0, "Number of lines to show (0 = all)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	path, err := catalogPath(cfg, flags.Args())
	if err != nil {
		return err
	}

	logDir, err := logging.FindLogDir(cfg.LogDir, path)
	if err != nil {
		return fmt.Errorf("finding journal directory: %w", err)
	}
	logPath, err := logging.FindLatestLog(logDir)
	if err != nil {
		return fmt.Errorf("finding latest journal: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(std.out, "No session journals found.")
		return nil
	}

	fmt.Fprintf(std.out, "Journal: %s\n", logPath)
	if *follow {
		fmt.Fprintln(std.out, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(std.out)
	return logging.TailLog(ctx, std.out, logPath, *n, *follow)
}

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, std streams, args []string) error {
	flags := flag.NewFlagSet("trophies config", flag.ContinueOnError)
	flags.SetOutput(std.err)
	example := flags.Bool("example", false, "Print an example config file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(std.out, config.ExampleConfig())
		return nil
	}

	cfg := cws.Config
	values := []struct {
		field string
		value any
	}{
		{"catalog_file", cfg.CatalogFile},
		{"log_dir", cfg.LogDir},
		{"journal", cfg.Journal},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", cfg.LogTimestamps},
		{"log_caller", cfg.LogCaller},
		{"tui_refresh_seconds", cfg.TUIRefreshSeconds},
	}
	if len(cws.Files) > 0 {
		fmt.Fprintf(std.out, "# config files: %s\n", strings.Join(cws.Files, ", "))
	}
	for _, v := range values {
		fmt.Fprintf(std.out, "%-20s = %-40v # %s\n", v.field, fmt.Sprintf("%#v", v.value), cws.Sources[v.field])
	}
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "trophies version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(flags *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Trophies - track trophy completion across your games")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  trophies [options] [command] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  menu [file]     Interactive view/modify menu (default command)")
	fmt.Fprintln(w, "  view [file]     Print the catalog sorted by completion")
	fmt.Fprintln(w, "  tui [file]      Launch the terminal viewer")
	fmt.Fprintln(w, "  doctor [file]   Check config and catalog validity")
	fmt.Fprintln(w, "  history [file]  Show the latest session journal")
	fmt.Fprintln(w, "  config          Show effective configuration")
	fmt.Fprintln(w, "  version         Show version information")
	fmt.Fprintln(w, "  help            Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Doctor Options:")
	fmt.Fprintln(w, "  -v    Show every record")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "History Options:")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the journal (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
}
