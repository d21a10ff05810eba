// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/trophies/internal/catalog"
	"github.com/nibzard/trophies/internal/config"
)

const barWidth = 20

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	path     string
	interval time.Duration
}

// WithCatalogPath overrides the catalog file shown.
func WithCatalogPath(path string) TUIOption {
	return func(c *tuiConfig) {
		if path != "" {
			c.path = path
		}
	}
}

// RunTUI starts the read-only catalog viewer.
func RunTUI(ctx context.Context, cfg *config.Config, opts ...TUIOption) error {
	c := &tuiConfig{
		path:     cfg.CatalogFile,
		interval: time.Duration(cfg.TUIRefreshSeconds) * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(c.path, c.interval)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	path         string
	tickInterval time.Duration
	records      []catalog.Record
	skipped      int
	duplicates   int
	loadErr      error
	descending   bool
	showHelp     bool
	styles       styles
}

type tickMsg time.Time

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
	low    lipgloss.Style
	mid    lipgloss.Style
	high   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5EEBFF")),
		header: lipgloss.NewStyle().Bold(true).Underline(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7A8BA8")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6F91")).Bold(true),
		low:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6F91")),
		mid:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC857")),
		high:   lipgloss.NewStyle().Foreground(lipgloss.Color("#67F0A8")),
	}
}

func newTUIModel(path string, interval time.Duration) *tuiModel {
	if interval <= 0 {
		interval = time.Duration(config.DefaultTUIRefreshSeconds) * time.Second
	}
	return &tuiModel{
		path:         path,
		tickInterval: interval,
		styles:       defaultStyles(),
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
		case "s":
			m.descending = !m.descending
		case "h", "?":
			m.showHelp = !m.showHelp
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Trophy Tracker") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		m.writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(m.styles.err.Render("Error loading catalog:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		m.writeFooter(&b)
		return b.String()
	}

	m.writeTable(&b)
	m.writeSummary(&b)
	m.writeFooter(&b)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	c, report, err := catalog.Load(m.path)
	if err != nil {
		m.loadErr = err
		m.records = nil
		return
	}
	m.loadErr = nil
	m.records = c.SortedByPercent()
	m.skipped = len(report.Skipped)
	m.duplicates = len(report.Duplicates)
}

// rows returns the records in display order.
func (m *tuiModel) rows() []catalog.Record {
	if !m.descending {
		return m.records
	}
	out := make([]catalog.Record, len(m.records))
	for i, rec := range m.records {
		out[len(out)-1-i] = rec
	}
	return out
}

func (m *tuiModel) writeTable(b *strings.Builder) {
	if len(m.records) == 0 {
		b.WriteString(m.styles.muted.Render("  No games in catalog.") + "\n\n")
		return
	}

	header := fmt.Sprintf("%-35s %-12s %-*s %8s", "Name", "Trophies", barWidth, "Progress", "Percent")
	b.WriteString(m.styles.header.Render(header) + "\n")
	for _, rec := range m.rows() {
		counts := fmt.Sprintf("%d/%d", rec.Completed, rec.Total)
		b.WriteString(fmt.Sprintf("%-35s %-12s %s %7.2f%%\n",
			truncate(rec.Name, 35), counts, m.bar(rec.Percent()), rec.Percent()))
	}
	b.WriteString("\n")
}

func (m *tuiModel) bar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	switch {
	case percent >= 75:
		return m.styles.high.Render(bar)
	case percent >= 35:
		return m.styles.mid.Render(bar)
	default:
		return m.styles.low.Render(bar)
	}
}

func (m *tuiModel) writeSummary(b *strings.Builder) {
	completed, total := 0, 0
	for _, rec := range m.records {
		completed += rec.Completed
		total += rec.Total
	}
	overall := catalog.Record{Completed: completed, Total: total}.Percent()
	order := "ascending"
	if m.descending {
		order = "descending"
	}
	line := fmt.Sprintf("  Games: %d  Trophies: %d/%d (%.2f%%)  Order: %s", len(m.records), completed, total, overall, order)
	b.WriteString(line + "\n")
	if m.skipped > 0 || m.duplicates > 0 {
		b.WriteString(m.styles.muted.Render(fmt.Sprintf("  Skipped lines: %d  Duplicate names: %d", m.skipped, m.duplicates)) + "\n")
	}
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh data\n")
	b.WriteString("  s            Toggle sort order\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func (m *tuiModel) writeFooter(b *strings.Builder) {
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("%s | h for help | q to quit | refreshing every %s", m.path, m.tickInterval)) + "\n")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
