// Package locale holds the Finnish names used in generated pages.
package locale

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/season"
)

// Lower lower-cases s using Finnish casing rules.
func Lower(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Lower(language.Finnish).String(s)
}

var months = [...]string{
	"Tammikuu",
	"Helmikuu",
	"Maaliskuu",
	"Huhtikuu",
	"Toukokuu",
	"Kesäkuu",
	"Heinäkuu",
	"Elokuu",
	"Syyskuu",
	"Lokakuu",
	"Marraskuu",
	"Joulukuu",
}

// MonthName returns the capitalized Finnish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return months[m-1]
}

// SeasonName returns the capitalized Finnish name of s.
func SeasonName(s season.Season) string {
	switch s {
	case season.Spring:
		return "Kevät"
	case season.Summer:
		return "Kesä"
	case season.Fall:
		return "Syksy"
	case season.Winter:
		return "Talvi"
	}
	return s.String()
}

// ListName returns the Finnish heading for a task or instruction list.
// Unknown names are returned unchanged.
func ListName(name string) string {
	switch name {
	case calendar.Watering:
		return "Kastelu"
	case calendar.Fertilization:
		return "Lannoitus"
	case calendar.SoilChange:
		return "Mullanvaihto"
	}
	return name
}

// Table headings of the monthly calendar pages.
const (
	DayHeading       = "Päivä"
	TaskListHeading  = "Tehtävälista"
	CompletedHeading = "Hoidettu"
	NotesHeading     = "Huomiot"
	InstructionsName = "Hoito-ohjeet"
)
