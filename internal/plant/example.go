package plant

import (
	"time"

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/occurrence"
	"github.com/nibzard/greenthumb/internal/season"
)

// Example returns a small plant list that exercises every regimen part.
func Example() []Plant {
	return []Plant{
		{
			Name:             "Ficus",
			SoilChangedAt:    caldate.New(2023, time.April, 15),
			SoilFertilizedAt: caldate.New(2024, time.March, 1),
			WateredAt:        caldate.New(2024, time.January, 1),
			Regimen: Regimen{
				Fertilization: []Fertilization{{
					Occurrence:     occurrence.MustParse("2/m"),
					FertilizerType: "Nitrogen",
					Seasons:        []season.Season{season.Spring, season.Summer},
				}},
				SoilChange: &SoilChange{
					SoilType: "Peat",
					Every:    occurrence.MustParse("2/y"),
					Season:   season.Spring,
				},
				Watering: []Watering{{
					Occurrence: occurrence.MustParse("1/w"),
					Condition:  "Soil dry",
					Notes:      "Lukewarm water",
				}},
			},
		},
		{
			Name:          "Aloe",
			SoilChangedAt: caldate.New(2022, time.May, 20),
			Regimen: Regimen{
				SoilChange: &SoilChange{
					SoilType: "Cactus soil",
					Every:    occurrence.MustParse("1/y"),
					Season:   season.Spring,
				},
				Watering: []Watering{
					{
						Occurrence: occurrence.MustParse("2/m"),
						Seasons:    []season.Season{season.Spring, season.Summer},
						Condition:  "Soil completely dry",
					},
					{
						Occurrence: occurrence.MustParse("1/m"),
						Seasons:    []season.Season{season.Fall, season.Winter},
						Condition:  "Soil completely dry",
						Notes:      "Sparingly",
					},
				},
			},
		},
	}
}
