package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/season"
)

func sampleCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal := calendar.New(2024)
	jan1, err := cal.TaskLists(caldate.New(2024, time.January, 1))
	if err != nil {
		t.Fatalf("TaskLists failed: %v", err)
	}
	w := jan1.GetOrCreate(calendar.Watering)
	w.Add("Ficus")
	w.Add("aloe <b>")

	mar1, err := cal.TaskLists(caldate.New(2024, time.March, 1))
	if err != nil {
		t.Fatalf("TaskLists failed: %v", err)
	}
	mar1.GetOrCreate(calendar.SoilChange).Add("Monstera")
	return cal
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestMonths(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Options{Dir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	paths, err := r.Months(sampleCalendar(t))
	if err != nil {
		t.Fatalf("Months failed: %v", err)
	}
	if len(paths) != 12 {
		t.Fatalf("paths count: got %d, want 12", len(paths))
	}
	if want := filepath.Join(dir, "tammikuu-2024.html"); paths[0] != want {
		t.Errorf("first path: got %s, want %s", paths[0], want)
	}
	if want := filepath.Join(dir, "joulukuu-2024.html"); paths[11] != want {
		t.Errorf("last path: got %s, want %s", paths[11], want)
	}

	jan := readFile(t, paths[0])
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<h2 class="centered">Tammikuu</h2>`,
		`<th class="date_column">Päivä</th>`,
		`<th class="task_list_column">Tehtävälista</th>`,
		`<th class="completed_column">Hoidettu</th>`,
		`<th class="notes_column">Huomiot</th>`,
		`<td class="date_column">1.1</td>`,
		`<td class="date_column">31.1</td>`,
		"<h3>Kastelu</h3>",
		"<li>Ficus, aloe &lt;b&gt;</li>",
	} {
		if !strings.Contains(jan, want) {
			t.Errorf("January page missing %q", want)
		}
	}
	if strings.Contains(jan, Placeholder) {
		t.Error("placeholder was not replaced")
	}
	if got := strings.Count(jan, "<tr>"); got != 32 {
		t.Errorf("January rows: got %d, want 32 (header and 31 days)", got)
	}

	feb := readFile(t, filepath.Join(dir, "helmikuu-2024.html"))
	if !strings.Contains(feb, `<td class="date_column">29.2</td>`) {
		t.Error("February 2024 page should contain the leap day")
	}

	mar := readFile(t, filepath.Join(dir, "maaliskuu-2024.html"))
	if !strings.Contains(mar, "<h3>Mullanvaihto</h3>") || !strings.Contains(mar, "<li>Monstera</li>") {
		t.Error("March page missing the soil change")
	}
}

func TestSeasons(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Options{Dir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	in := calendar.NewInstructions()
	l, err := in.GetOrCreateList(season.Spring, calendar.SoilChange)
	if err != nil {
		t.Fatalf("GetOrCreateList failed: %v", err)
	}
	l.Add("Ficus: Peat & bark")

	paths, err := r.Seasons(in)
	if err != nil {
		t.Fatalf("Seasons failed: %v", err)
	}

	wantNames := []string{
		"hoito-ohjeet-kevät.html",
		"hoito-ohjeet-kesä.html",
		"hoito-ohjeet-syksy.html",
		"hoito-ohjeet-talvi.html",
	}
	if len(paths) != len(wantNames) {
		t.Fatalf("paths count: got %d, want %d", len(paths), len(wantNames))
	}
	for i, name := range wantNames {
		if filepath.Base(paths[i]) != name {
			t.Errorf("path %d: got %s, want %s", i, filepath.Base(paths[i]), name)
		}
	}

	spring := readFile(t, paths[0])
	for _, want := range []string{
		`<h1 class="centered">Hoito-ohjeet Kevät</h1>`,
		"<h2>Mullanvaihto</h2>",
		`<li class="spaced-li">Ficus: Peat &amp; bark</li>`,
	} {
		if !strings.Contains(spring, want) {
			t.Errorf("spring page missing %q", want)
		}
	}

	winter := readFile(t, paths[3])
	if !strings.Contains(winter, "Hoito-ohjeet Talvi") || strings.Contains(winter, "<h2>") {
		t.Error("winter page should have a title and no lists")
	}
}

func TestCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "template.html")
	if err := os.WriteFile(tmpl, []byte("<main>GENERATED_HTML</main>"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := New(Options{Dir: dir, TemplatePath: tmpl})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	paths, err := r.Seasons(calendar.NewInstructions())
	if err != nil {
		t.Fatalf("Seasons failed: %v", err)
	}
	page := readFile(t, paths[0])
	if !strings.HasPrefix(page, "<main><div>") || !strings.HasSuffix(page, "</main>") {
		t.Errorf("page: got %q", page)
	}
}

func TestMissingTemplateFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Options{Dir: dir, TemplatePath: filepath.Join(dir, "missing.html")})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if r.page != DefaultTemplate() {
		t.Error("expected the default template")
	}
}

func TestLoadTemplate(t *testing.T) {
	page, err := LoadTemplate("")
	if err != nil || page != DefaultTemplate() {
		t.Errorf("LoadTemplate(\"\"): got %v", err)
	}
	if !strings.Contains(DefaultTemplate(), Placeholder) {
		t.Error("default template should contain the placeholder")
	}
	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("LoadTemplate: expected error for missing file")
	}
}

func TestWriteFailure(t *testing.T) {
	r, err := New(Options{Dir: filepath.Join(t.TempDir(), "does", "not", "exist")})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	paths, err := r.Months(calendar.New(2024))
	if err == nil {
		t.Fatal("Months: expected error for missing directory")
	}
	if len(paths) != 0 {
		t.Errorf("paths: got %v, want none", paths)
	}
}

func TestFileNames(t *testing.T) {
	if got := MonthFileName(time.June, 2025); got != "kesäkuu-2025.html" {
		t.Errorf("MonthFileName: got %s", got)
	}
	if got := SeasonFileName("Syksy"); got != "hoito-ohjeet-syksy.html" {
		t.Errorf("SeasonFileName: got %s", got)
	}
	if got := ICSFileName(2024); got != "hoitokalenteri-2024.ics" {
		t.Errorf("ICSFileName: got %s", got)
	}
}

func TestICS(t *testing.T) {
	dir := t.TempDir()
	r, err := New(Options{Dir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.now = func() time.Time { return time.Date(2024, time.February, 3, 4, 5, 6, 0, time.UTC) }

	cal := sampleCalendar(t)
	path, err := r.ICS(cal)
	if err != nil {
		t.Fatalf("ICS failed: %v", err)
	}
	if filepath.Base(path) != "hoitokalenteri-2024.ics" {
		t.Errorf("path: got %s", path)
	}

	out := readFile(t, path)
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Error("calendar is not wrapped in VCALENDAR with CRLF lines")
	}
	if got := strings.Count(out, "BEGIN:VEVENT\r\n"); got != 2 {
		t.Errorf("events: got %d, want 2", got)
	}
	for _, want := range []string{
		"DTSTAMP:20240203T040506Z\r\n",
		"DTSTART;VALUE=DATE:20240101\r\n",
		"DTEND;VALUE=DATE:20240102\r\n",
		"SUMMARY:Kastelu: Ficus\\, aloe <b>\r\n",
		"DTSTART;VALUE=DATE:20240301\r\n",
		"SUMMARY:Mullanvaihto: Monstera\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar missing %q", want)
		}
	}

	again := r.encodeICS(cal)
	if !bytes.Equal(again, []byte(out)) {
		t.Error("encoding the same calendar twice should be identical")
	}
}

func TestEventUIDIsStable(t *testing.T) {
	a := eventUID("2024-1-1", calendar.Watering)
	if a != eventUID("2024-1-1", calendar.Watering) {
		t.Error("UID changed between calls")
	}
	if a == eventUID("2024-1-2", calendar.Watering) || a == eventUID("2024-1-1", calendar.SoilChange) {
		t.Error("UIDs of different events collide")
	}
}

func TestWriteICSLineFolds(t *testing.T) {
	tests := []string{
		strings.Repeat("a", 200),
		"SUMMARY:" + strings.Repeat("ä", 100),
		"SHORT",
	}
	for _, in := range tests {
		var buf bytes.Buffer
		writeICSLine(&buf, in)
		out := buf.String()
		if !strings.HasSuffix(out, "\r\n") {
			t.Fatalf("line not terminated with CRLF: %q", out)
		}
		for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
			if len(line) > 75 {
				t.Errorf("folded line too long: %d octets", len(line))
			}
			if !utf8.ValidString(line) {
				t.Errorf("folded line splits a UTF-8 sequence: %q", line)
			}
		}
		unfolded := strings.ReplaceAll(strings.TrimSuffix(out, "\r\n"), "\r\n ", "")
		if unfolded != in {
			t.Errorf("unfolded: got %q, want %q", unfolded, in)
		}
	}
}

func TestEscapeICalText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a, b", "a\\, b"},
		{"a;b", "a\\;b"},
		{"back\\slash", "back\\\\slash"},
		{"two\nlines", "two\\nlines"},
	}
	for _, tt := range tests {
		if got := escapeICalText(tt.in); got != tt.want {
			t.Errorf("escapeICalText(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
