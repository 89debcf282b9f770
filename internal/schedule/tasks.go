// Package schedule turns plant regimens into calendar tasks and seasonal
// care instructions.
package schedule

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/locale"
	"github.com/nibzard/greenthumb/internal/occurrence"
	"github.com/nibzard/greenthumb/internal/plant"
	"github.com/nibzard/greenthumb/internal/season"
)

// ErrIncompleteRegimen is returned for plants without a soil change.
var ErrIncompleteRegimen = errors.New("incomplete regimen")

// SoilChangeTasks adds the plant to the "Soil Change" list of every day in
// the calendar year on which its soil is due to be changed.
func SoilChangeTasks(p plant.Plant, cal *calendar.Calendar) error {
	sc := p.Regimen.SoilChange
	if sc == nil {
		return fmt.Errorf("%w: plant %q has no soil change", ErrIncompleteRegimen, p.Name)
	}
	if !sc.Season.Valid() {
		return fmt.Errorf("soil change of %q: %w: %d", p.Name, season.ErrUnknownSeason, int(sc.Season))
	}

	dates, err := soilChangeDates(p.SoilChangedAt, *sc, cal.Year())
	if err != nil {
		return fmt.Errorf("soil change of %q: %w", p.Name, err)
	}

	for d := range dates {
		if !season.IsInSeason(d, sc.Season) || d.Year != cal.Year() {
			continue
		}
		if err := addToDay(cal, d, calendar.SoilChange, p.Name); err != nil {
			return err
		}
	}
	return nil
}

// soilChangeDates returns the candidate soil change dates starting from the
// last change. Weekly and monthly changes step until the end of the target
// year; yearly changes land on the first day of the season n years later.
func soilChangeDates(changedAt caldate.Date, sc plant.SoilChange, year int) (iter.Seq[caldate.Date], error) {
	n := sc.Every.Times
	if n < 1 {
		return nil, fmt.Errorf("%w: times must be at least 1, got %d", occurrence.ErrInvalidOccurrence, n)
	}

	switch sc.Every.Window {
	case occurrence.Week:
		return caldate.Until(changedAt, caldate.StepDays(7*n), caldate.ThroughYear(year)), nil
	case occurrence.Month:
		return caldate.Until(changedAt, caldate.StepMonths(n), caldate.ThroughYear(year)), nil
	case occurrence.Year:
		first, err := season.FirstDayOf(sc.Season, changedAt.AddYears(n).Year)
		if err != nil {
			return nil, err
		}
		return slices.Values([]caldate.Date{first}), nil
	}
	return nil, fmt.Errorf("%w %q", occurrence.ErrUnsupportedWindow, sc.Every.Window)
}

// FertilizationTasks adds the plant to the "Fertilization" list on every
// fertilizing day of the calendar year.
func FertilizationTasks(p plant.Plant, cal *calendar.Calendar) error {
	for i, f := range p.Regimen.Fertilization {
		if err := addOccurrenceTasks(cal, calendar.Fertilization, p.Name, f.Occurrence, f.Seasons); err != nil {
			return fmt.Errorf("fertilization %d of %q: %w", i, p.Name, err)
		}
	}
	return nil
}

// WateringTasks adds the plant to the "Watering" list on every watering day
// of the calendar year.
func WateringTasks(p plant.Plant, cal *calendar.Calendar) error {
	for i, w := range p.Regimen.Watering {
		if err := addOccurrenceTasks(cal, calendar.Watering, p.Name, w.Occurrence, w.Seasons); err != nil {
			return fmt.Errorf("watering %d of %q: %w", i, p.Name, err)
		}
	}
	return nil
}

// addOccurrenceTasks expands o over the calendar year and adds name to the
// list on each date. A nil seasons slice keeps every date; otherwise only
// dates falling in one of the seasons are kept.
func addOccurrenceTasks(cal *calendar.Calendar, list, name string, o occurrence.Occurrence, seasons []season.Season) error {
	dates, err := o.DatesOver(cal.Epoch())
	if err != nil {
		return err
	}
	for _, d := range dates {
		if seasons != nil && !season.Contains(seasons, season.Of(d)) {
			continue
		}
		if err := addToDay(cal, d, list, name); err != nil {
			return err
		}
	}
	return nil
}

func addToDay(cal *calendar.Calendar, d caldate.Date, list, name string) error {
	lists, err := cal.TaskLists(d)
	if err != nil {
		return err
	}
	addPlant(lists.GetOrCreate(list), name)
	return nil
}

// addPlant appends a plant name to a day's list. Only the first entry keeps
// its case so the joined list reads as a sentence.
func addPlant(l *calendar.TaskList, name string) {
	if l.Len() > 0 {
		name = locale.Lower(name)
	}
	l.Add(name)
}
