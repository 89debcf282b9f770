package plant

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/occurrence"
	"github.com/nibzard/greenthumb/internal/season"
)

// DefaultFile is the plant file path used when none is configured.
const DefaultFile = "Files/plants.json"

// Plant is one plant with its care anchors and regimen.
type Plant struct {
	Name             string       `json:"name" validate:"required"`
	SoilChangedAt    caldate.Date `json:"soilChangedAt"`
	SoilFertilizedAt caldate.Date `json:"soilFertilizedAt"`
	WateredAt        caldate.Date `json:"wateredAt"`
	Regimen          Regimen      `json:"regimen"`
}

// Regimen groups the care tasks of a plant.
type Regimen struct {
	Fertilization []Fertilization `json:"fertilization,omitempty" validate:"omitempty,dive"`
	SoilChange    *SoilChange     `json:"soilChange" validate:"required"`
	Watering      []Watering      `json:"watering" validate:"required,dive"`
}

// Fertilization describes one fertilizing routine.
type Fertilization struct {
	Occurrence     occurrence.Occurrence `json:"occurrence"`
	FertilizerType string                `json:"fertilizerType"`
	Seasons        []season.Season       `json:"seasons,omitempty" validate:"omitempty,dive,season"`
	Notes          string                `json:"notes,omitempty"`
}

// OverTheYear reports whether the routine applies in every season.
func (f Fertilization) OverTheYear() bool {
	return f.Seasons == nil
}

// SoilChange describes how often and in which season the soil is changed.
type SoilChange struct {
	SoilType string                `json:"soilType"`
	Every    occurrence.Occurrence `json:"every"`
	Season   season.Season         `json:"season" validate:"season"`
}

// Watering describes one watering routine.
type Watering struct {
	Occurrence occurrence.Occurrence `json:"occurrence"`
	Seasons    []season.Season       `json:"seasons,omitempty" validate:"omitempty,dive,season"`
	Condition  string                `json:"condition"`
	Notes      string                `json:"notes,omitempty"`
}

// OverTheYear reports whether the routine applies in every season.
func (w Watering) OverTheYear() bool {
	return w.Seasons == nil
}

// Read reads the raw plant file.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plant file: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of plants. A JSON null yields no plants.
func Decode(data []byte) ([]Plant, error) {
	var plants []Plant
	if err := json.Unmarshal(data, &plants); err != nil {
		return nil, fmt.Errorf("parse plant file: %w", err)
	}
	return plants, nil
}

// Load reads and parses the plant file at path.
func Load(path string) ([]Plant, error) {
	data, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save writes plants to path with 2-space indentation.
func Save(path string, plants []Plant) error {
	data, err := json.MarshalIndent(plants, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plant file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write plant file: %w", err)
	}
	return nil
}
