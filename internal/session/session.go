// Package session implements the interactive console menu.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/trophies/internal/catalog"
	"github.com/nibzard/trophies/internal/logging"
)

// Journal records session events.
type Journal interface {
	Event(msg string, keyvals ...any)
}

type nopJournal struct{}

func (nopJournal) Event(string, ...any) {}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the console logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithJournal sets the event journal.
func WithJournal(j Journal) Option {
	return func(s *Session) {
		if j != nil {
			s.journal = j
		}
	}
}

// Session is one interactive run over a catalog file.
type Session struct {
	path    string
	in      *bufio.Reader
	out     io.Writer
	log     *log.Logger
	journal Journal
}

// New creates a session that reads answers from in and writes to out.
func New(path string, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		path:    path,
		in:      bufio.NewReader(in),
		out:     out,
		log:     logging.Discard(),
		journal: nopJournal{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the main menu until the user exits, input ends, or ctx is
// cancelled. End of input is not an error; cancellation and other input
// read failures are returned.
func (s *Session) Run(ctx context.Context) error {
	s.journal.Event("session started", "catalog", s.path)
	defer s.journal.Event("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println("\n--- Trophy Tracker ---")
		s.println("1. View List")
		s.println("2. Modify List")
		s.println("3. Exit")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return s.endOfInput(err)
		}

		switch choice {
		case "1":
			s.View()
		case "2":
			if err := s.Modify(); err != nil {
				return s.endOfInput(err)
			}
		case "3":
			s.println("Goodbye!")
			return nil
		default:
			s.println("Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

// View prints the catalog sorted by completion percentage.
func (s *Session) View() {
	err := s.guard("view", func() error {
		c, report, err := s.load()
		if err != nil {
			return err
		}
		if err := WriteSkipped(s.out, report); err != nil {
			return err
		}
		for _, skipped := range report.Skipped {
			s.journal.Event("entry skipped", "line", skipped.Number, "text", skipped.Text, "reason", skipped.Err.Reason)
		}
		s.journal.Event("catalog viewed", "records", c.Len(), "skipped", len(report.Skipped))
		return WriteTable(s.out, c.SortedByPercent())
	})
	if err != nil {
		s.log.Warn("view failed", "catalog", s.path, "err", err)
	}
}

// Modify runs the update/add sub-menu. Changes are written only when the
// user picks save. It returns an error only when input ends.
func (s *Session) Modify() error {
	var inputErr error
	_ = s.guard("modify", func() error {
		c, _, err := s.load()
		if err != nil {
			return err
		}
		inputErr = s.editLoop(c)
		return nil
	})
	return inputErr
}

func (s *Session) editLoop(c *catalog.Catalog) error {
	dirty := false
	for {
		s.println("\n--- Modify List ---")
		s.println("1. Update trophies for an existing game")
		s.println("2. Add a new game")
		s.println("3. Save and return to main menu")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			if dirty {
				s.log.Warn("input ended, discarding unsaved changes", "catalog", s.path)
			}
			return err
		}

		switch choice {
		case "1":
			changed, err := s.updateGame(c)
			if err != nil {
				return err
			}
			dirty = dirty || changed
		case "2":
			changed, err := s.addGame(c)
			if err != nil {
				return err
			}
			dirty = dirty || changed
		case "3":
			if err := c.Save(s.path); err != nil {
				s.log.Error("save failed", "catalog", s.path, "err", err)
				s.printf("An error occurred: %v\n", err)
				return nil
			}
			s.journal.Event("catalog saved", "records", c.Len())
			s.println("Changes saved. Returning to main menu.")
			return nil
		default:
			s.println("Invalid choice. Please enter 1, 2, or 3.")
		}
	}
}

func (s *Session) updateGame(c *catalog.Catalog) (bool, error) {
	name, err := s.prompt("Enter the name of the game to update: ")
	if err != nil {
		return false, err
	}
	current, ok := c.Get(name)
	if !ok {
		s.printf("Game '%s' not found in the list.\n", name)
		if suggestion, found := c.Suggest(name); found {
			s.printf("Did you mean '%s'?\n", suggestion)
		}
		return false, nil
	}

	completed, total, valid, err := s.promptCounts(
		fmt.Sprintf("Enter new completed trophies (current: %d): ", current.Completed),
		fmt.Sprintf("Enter new total trophies (current: %d): ", current.Total),
	)
	if err != nil || !valid {
		return false, err
	}

	if err := c.Update(name, completed, total); err != nil {
		return false, err
	}
	s.journal.Event("record updated", "game", name,
		"completed", completed, "total", total,
		"previous_completed", current.Completed, "previous_total", current.Total)
	s.printf("Updated %s: %d of %d trophies.\n", name, completed, total)
	return true, nil
}

func (s *Session) addGame(c *catalog.Catalog) (bool, error) {
	name, err := s.prompt("Enter the name of the new game: ")
	if err != nil {
		return false, err
	}
	if name == "" {
		s.println("Game name cannot be empty.")
		return false, nil
	}
	if c.Has(name) {
		s.printf("Game '%s' already exists in the list.\n", name)
		return false, nil
	}

	completed, total, valid, err := s.promptCounts("Enter completed trophies: ", "Enter total trophies: ")
	if err != nil || !valid {
		return false, err
	}

	if err := c.Add(catalog.Record{Name: name, Completed: completed, Total: total}); err != nil {
		return false, err
	}
	s.journal.Event("record added", "game", name, "completed", completed, "total", total)
	s.printf("Added %s: %d of %d trophies.\n", name, completed, total)
	return true, nil
}

// promptCounts asks for both counts and reports whether both were valid.
func (s *Session) promptCounts(completedPrompt, totalPrompt string) (int, int, bool, error) {
	rawCompleted, err := s.prompt(completedPrompt)
	if err != nil {
		return 0, 0, false, err
	}
	rawTotal, err := s.prompt(totalPrompt)
	if err != nil {
		return 0, 0, false, err
	}

	completed, okCompleted := catalog.ParseCount(rawCompleted)
	total, okTotal := catalog.ParseCount(rawTotal)
	if !okCompleted || !okTotal {
		s.journal.Event("input rejected", "completed", rawCompleted, "total", rawTotal)
		s.println("Invalid input. Completed and total trophies must be numbers.")
		return 0, 0, false, nil
	}
	return completed, total, true, nil
}

// load reads the catalog, printing the user-facing message for failures.
func (s *Session) load() (*catalog.Catalog, *catalog.LoadReport, error) {
	c, report, err := catalog.Load(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.printf("File '%s' not found.\n", s.path)
		} else {
			s.printf("An error occurred: %v\n", err)
		}
		s.log.Debug("catalog load failed", "catalog", s.path, "err", err)
		return nil, nil, err
	}

	s.log.Debug("catalog loaded", "catalog", s.path, "records", c.Len(), "skipped", len(report.Skipped))
	for _, name := range report.Duplicates {
		s.log.Info("duplicate entry, keeping last counts", "game", name)
	}
	return c, report, nil
}

// guard turns a panic inside an operation into a reported error so the
// menu keeps running.
func (s *Session) guard(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", op, r)
			s.log.Error("operation panicked", "op", op, "panic", r)
			s.printf("An error occurred: %v\n", r)
		}
	}()
	return fn()
}

func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.println()
		return nil
	}
	return err
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
