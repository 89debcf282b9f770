package schedule

import (
	"fmt"

	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/plant"
	"github.com/nibzard/greenthumb/internal/season"
)

// SoilChangeInstructions adds "<plant>: <soil type>" to the soil change
// instructions of the plant's soil change season.
func SoilChangeInstructions(p plant.Plant, in *calendar.Instructions) error {
	sc := p.Regimen.SoilChange
	if sc == nil {
		return fmt.Errorf("%w: plant %q has no soil change", ErrIncompleteRegimen, p.Name)
	}
	l, err := in.GetOrCreateList(sc.Season, calendar.SoilChange)
	if err != nil {
		return fmt.Errorf("soil change of %q: %w", p.Name, err)
	}
	l.Add(fmt.Sprintf("%s: %s", p.Name, sc.SoilType))
	return nil
}

// FertilizationInstructions adds "<plant>: <fertilizer type>" to the
// fertilization instructions of every season the routine applies in.
func FertilizationInstructions(p plant.Plant, in *calendar.Instructions) error {
	for _, f := range p.Regimen.Fertilization {
		for _, s := range targetSeasons(f.Seasons) {
			l, err := in.GetOrCreateList(s, calendar.Fertilization)
			if err != nil {
				return fmt.Errorf("fertilization of %q: %w", p.Name, err)
			}
			l.Add(fmt.Sprintf("%s: %s", p.Name, f.FertilizerType))
		}
	}
	return nil
}

// WateringInstructions adds "<plant>: <condition>[, <notes>]" to the
// watering instructions of every season the routine applies in.
func WateringInstructions(p plant.Plant, in *calendar.Instructions) error {
	for _, w := range p.Regimen.Watering {
		text := fmt.Sprintf("%s: %s", p.Name, w.Condition)
		if w.Notes != "" {
			text += ", " + w.Notes
		}
		for _, s := range targetSeasons(w.Seasons) {
			l, err := in.GetOrCreateList(s, calendar.Watering)
			if err != nil {
				return fmt.Errorf("watering of %q: %w", p.Name, err)
			}
			l.Add(text)
		}
	}
	return nil
}

// targetSeasons returns all four seasons for whole-year routines.
func targetSeasons(seasons []season.Season) []season.Season {
	if seasons == nil {
		return season.All()
	}
	return seasons
}
