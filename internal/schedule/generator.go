package schedule

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/greenthumb/internal/calendar"
	"github.com/nibzard/greenthumb/internal/plant"
)

// Generator fills a calendar year and the seasonal instructions from plant
// regimens. It is not safe for concurrent use.
type Generator struct {
	Calendar     *calendar.Calendar
	Instructions *calendar.Instructions

	logger *log.Logger
}

// NewGenerator returns a generator for the given year. A nil logger
// discards output.
func NewGenerator(year int, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		Calendar:     calendar.New(year),
		Instructions: calendar.NewInstructions(),
		logger:       logger,
	}
}

// Plant adds one plant's calendar tasks and instructions.
func (g *Generator) Plant(p plant.Plant) error {
	g.logger.Info("generating plant regimen", "plant", p.Name)

	steps := []func() error{
		func() error { return SoilChangeTasks(p, g.Calendar) },
		func() error { return FertilizationTasks(p, g.Calendar) },
		func() error { return WateringTasks(p, g.Calendar) },
		func() error { return SoilChangeInstructions(p, g.Instructions) },
		func() error { return FertilizationInstructions(p, g.Instructions) },
		func() error { return WateringInstructions(p, g.Instructions) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Run adds every plant in order and stops at the first error or when ctx
// is cancelled.
func (g *Generator) Run(ctx context.Context, plants []plant.Plant) error {
	g.logger.Info("generating calendar", "year", g.Calendar.Year(), "plants", len(plants))
	for _, p := range plants {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Plant(p); err != nil {
			return err
		}
	}
	return nil
}
