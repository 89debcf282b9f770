package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/locale"
)

type monthPage struct {
	Name             string
	DayHeading       string
	TaskListHeading  string
	CompletedHeading string
	NotesHeading     string
	Rows             []dayRow
}

type dayRow struct {
	Date  string
	Lists []dayList
}

type dayList struct {
	Heading string
	Entries string
}

type seasonPage struct {
	Title string
	Lists []instructionList
}

type instructionList struct {
	Heading string
	Items   []string
}

// MonthFileName returns the page name of a month, e.g. "tammikuu-2024.html".
func MonthFileName(m time.Month, year int) string {
	return fmt.Sprintf("%s-%d.html", locale.Lower(locale.MonthName(m)), year)
}

// Months writes one page per month of the calendar and returns the written
// paths in month order. Rendering stops at the first write error.
func (r *Renderer) Months(cal *calendar.Calendar) ([]string, error) {
	paths := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		page := monthPage{
			Name:             locale.MonthName(m),
			DayHeading:       locale.DayHeading,
			TaskListHeading:  locale.TaskListHeading,
			CompletedHeading: locale.CompletedHeading,
			NotesHeading:     locale.NotesHeading,
		}
		for d, lists := range cal.Month(m) {
			row := dayRow{Date: fmt.Sprintf("%d.%d", d.Day, int(d.Month))}
			for _, l := range lists.Lists() {
				row.Lists = append(row.Lists, dayList{
					Heading: locale.ListName(l.Name),
					Entries: strings.Join(l.Items, ", "),
				})
			}
			page.Rows = append(page.Rows, row)
		}

		data, err := r.executeFragment("month", page)
		if err != nil {
			return paths, err
		}
		path, err := r.write(MonthFileName(m, cal.Year()), data)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SeasonFileName returns the instruction page name of a season, e.g.
// "hoito-ohjeet-kevät.html".
func SeasonFileName(seasonName string) string {
	return fmt.Sprintf("%s-%s.html", locale.Lower(locale.InstructionsName), locale.Lower(seasonName))
}

// Seasons writes one instruction page per season and returns the written
// paths in season order. Rendering stops at the first write error.
func (r *Renderer) Seasons(in *calendar.Instructions) ([]string, error) {
	paths := make([]string, 0, 4)
	for s, lists := range in.Seasons() {
		name := locale.SeasonName(s)
		page := seasonPage{Title: locale.InstructionsName + " " + name}
		for _, l := range lists.Lists() {
			page.Lists = append(page.Lists, instructionList{
				Heading: locale.ListName(l.Name),
				Items:   l.Items,
			})
		}

		data, err := r.executeFragment("season", page)
		if err != nil {
			return paths, err
		}
		path, err := r.write(SeasonFileName(name), data)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
