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

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/locale"
	"github.com/nibzard/greenthumb/internal/season"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	startMonth time.Month
	showEmpty  bool
}

// WithStartMonth opens the browser at month m instead of January.
func WithStartMonth(m time.Month) TUIOption {
	return func(c *tuiConfig) {
		if m >= time.January && m <= time.December {
			c.startMonth = m
		}
	}
}

// WithEmptyDays lists days without tasks as well.
func WithEmptyDays(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.showEmpty = enabled
	}
}

// RunTUI browses a generated calendar month by month.
func RunTUI(ctx context.Context, cal *calendar.Calendar, in *calendar.Instructions, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(cal, in, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type viewMode int

const (
	viewMonth viewMode = iota
	viewInstructions
	viewHelp
)

type tuiModel struct {
	cal       *calendar.Calendar
	in        *calendar.Instructions
	month     time.Month
	season    season.Season
	mode      viewMode
	showEmpty bool
}

func newTUIModel(cal *calendar.Calendar, in *calendar.Instructions, opts ...TUIOption) *tuiModel {
	c := &tuiConfig{startMonth: time.January}
	for _, opt := range opts {
		opt(c)
	}
	return &tuiModel{
		cal:       cal,
		in:        in,
		month:     c.startMonth,
		season:    seasonOf(c.startMonth),
		showEmpty: c.showEmpty,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "right", "l", "n":
		m.step(1)
	case "left", "h", "p":
		m.step(-1)
	case "home", "g":
		m.month = time.January
		m.season = seasonOf(m.month)
	case "end", "G":
		m.month = time.December
		m.season = seasonOf(m.month)
	case "i", "tab":
		if m.mode == viewInstructions {
			m.mode = viewMonth
		} else {
			m.mode = viewInstructions
		}
	case "e":
		m.showEmpty = !m.showEmpty
	case "?":
		if m.mode == viewHelp {
			m.mode = viewMonth
		} else {
			m.mode = viewHelp
		}
	case "esc":
		m.mode = viewMonth
	}
	return m, nil
}

// step moves by delta months, or by delta seasons on the instruction view.
// Both wrap around the year.
func (m *tuiModel) step(delta int) {
	if m.mode == viewInstructions {
		n := len(season.All())
		m.season = season.Season((int(m.season)-1+delta+n)%n + 1)
		return
	}
	m.month = time.Month((int(m.month)-1+delta+12)%12 + 1)
	m.season = seasonOf(m.month)
}

func seasonOf(month time.Month) season.Season {
	return season.Of(caldate.Date{Month: month})
}

func (m *tuiModel) View() string {
	var b strings.Builder

	switch m.mode {
	case viewHelp:
		writeTitle(&b, "Greenthumb")
		writeHelp(&b)
	case viewInstructions:
		writeTitle(&b, fmt.Sprintf("%s: %s", locale.InstructionsName, locale.SeasonName(m.season)))
		writeInstructions(&b, m.in, m.season)
	default:
		writeTitle(&b, fmt.Sprintf("%s %d", locale.MonthName(m.month), m.cal.Year()))
		writeMonth(&b, m.cal, m.month, m.showEmpty)
	}

	writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))) + "\n\n")
}

func writeMonth(b *strings.Builder, cal *calendar.Calendar, month time.Month, showEmpty bool) {
	busy := 0
	for d, lists := range cal.Month(month) {
		if lists.Empty() && !showEmpty {
			continue
		}
		busy++
		fmt.Fprintf(b, "  %2d.%d\n", d.Day, int(d.Month))
		for _, l := range lists.Lists() {
			if l.Len() == 0 {
				continue
			}
			fmt.Fprintf(b, "      %s: %s\n", locale.ListName(l.Name), strings.Join(l.Items, ", "))
		}
	}
	if busy == 0 {
		b.WriteString("  No tasks this month.\n")
	}
	b.WriteString("\n")
}

func writeInstructions(b *strings.Builder, in *calendar.Instructions, s season.Season) {
	lists, ok := in.Season(s)
	if !ok || lists.Empty() {
		b.WriteString("  No instructions for this season.\n\n")
		return
	}
	for _, l := range lists.Lists() {
		b.WriteString(locale.ListName(l.Name) + "\n")
		for _, item := range l.Items {
			b.WriteString("  - " + item + "\n")
		}
		b.WriteString("\n")
	}
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c       Quit\n")
	b.WriteString("  right, l, n     Next month (next season on instructions)\n")
	b.WriteString("  left, h, p      Previous month (previous season on instructions)\n")
	b.WriteString("  home, g         January\n")
	b.WriteString("  end, G          December\n")
	b.WriteString("  i, tab          Toggle season instructions\n")
	b.WriteString("  e               Toggle days without tasks\n")
	b.WriteString("  ?               Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press ? for help | q to quit\n")
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
