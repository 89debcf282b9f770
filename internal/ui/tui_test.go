package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/season"
)

func sampleModel(t *testing.T, opts ...TUIOption) *tuiModel {
	t.Helper()
	cal := calendar.New(2024)
	lists, err := cal.TaskLists(caldate.New(2024, time.March, 5))
	if err != nil {
		t.Fatal(err)
	}
	lists.GetOrCreate(calendar.Watering).Add("Ficus")
	lists.GetOrCreate(calendar.Watering).Add("aloe")

	in := calendar.NewInstructions()
	l, err := in.GetOrCreateList(season.Summer, calendar.Fertilization)
	if err != nil {
		t.Fatal(err)
	}
	l.Add("Ficus: Liquid")

	return newTUIModel(cal, in, opts...)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *tuiModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestNewModelDefaults(t *testing.T) {
	m := sampleModel(t)
	if m.month != time.January {
		t.Errorf("month: got %v, want January", m.month)
	}
	if m.season != season.Winter {
		t.Errorf("season: got %v, want Winter", m.season)
	}

	m = sampleModel(t, WithStartMonth(time.July), WithEmptyDays(true))
	if m.month != time.July || m.season != season.Summer || !m.showEmpty {
		t.Errorf("options not applied: month %v season %v empty %v", m.month, m.season, m.showEmpty)
	}

	m = sampleModel(t, WithStartMonth(13))
	if m.month != time.January {
		t.Errorf("invalid start month: got %v, want January", m.month)
	}
}

func TestMonthNavigationWraps(t *testing.T) {
	m := sampleModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.month != time.December {
		t.Errorf("left from January: got %v, want December", m.month)
	}
	press(m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"), runes("n"))
	if m.month != time.March {
		t.Errorf("three steps right: got %v, want March", m.month)
	}
	if m.season != season.Spring {
		t.Errorf("season follows month: got %v, want Spring", m.season)
	}
	press(m, runes("G"))
	if m.month != time.December {
		t.Errorf("G: got %v, want December", m.month)
	}
	press(m, runes("g"))
	if m.month != time.January {
		t.Errorf("g: got %v, want January", m.month)
	}
}

func TestSeasonNavigationWraps(t *testing.T) {
	m := sampleModel(t, WithStartMonth(time.December))
	press(m, runes("i"))
	if m.mode != viewInstructions {
		t.Fatalf("mode: got %v, want instructions", m.mode)
	}

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.season != season.Spring {
		t.Errorf("right from Winter: got %v, want Spring", m.season)
	}
	press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.season != season.Fall {
		t.Errorf("two steps left from Spring: got %v, want Fall", m.season)
	}
	if m.month != time.December {
		t.Errorf("month changed on instruction view: got %v", m.month)
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := sampleModel(t)
		cmd := press(m, key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestViewMonth(t *testing.T) {
	m := sampleModel(t, WithStartMonth(time.March))
	view := m.View()

	for _, want := range []string{"Maaliskuu 2024", " 5.3", "Kastelu: Ficus, aloe", "q to quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, " 6.3") {
		t.Error("empty days should be hidden by default")
	}

	press(m, runes("e"))
	if view := m.View(); !strings.Contains(view, "31.3") {
		t.Errorf("empty days not shown after toggle:\n%s", view)
	}
}

func TestViewEmptyMonth(t *testing.T) {
	m := sampleModel(t)
	if view := m.View(); !strings.Contains(view, "No tasks this month.") {
		t.Errorf("view:\n%s", view)
	}
}

func TestViewInstructions(t *testing.T) {
	m := sampleModel(t, WithStartMonth(time.June))
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	for _, want := range []string{"Hoito-ohjeet: Kesä", "Lannoitus", "  - Ficus: Liquid"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if view := m.View(); !strings.Contains(view, "No instructions for this season.") {
		t.Errorf("fall view:\n%s", view)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != viewMonth {
		t.Errorf("esc: got mode %v, want month", m.mode)
	}
}

func TestViewHelp(t *testing.T) {
	m := sampleModel(t)
	press(m, runes("?"))
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Errorf("help view:\n%s", view)
	}
	press(m, runes("?"))
	if m.mode != viewMonth {
		t.Errorf("second ?: got mode %v, want month", m.mode)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) = true")
	}
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("IsTTY(regular file) = true")
	}
}
