package plant

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nibzard/greenthumb/internal/caldate"
	"github.com/nibzard/greenthumb/internal/occurrence"
	"github.com/nibzard/greenthumb/internal/season"
)

const sampleFile = `[
  {
    "name": "Ficus",
    "soilChangedAt": "2023-4-15",
    "soilFertilizedAt": "2024-03-01",
    "wateredAt": "",
    "regimen": {
      "fertilization": [
        {"occurrence": "2/m", "fertilizerType": "Nitrogen", "seasons": ["Spring", "summer"]}
      ],
      "soilChange": {"soilType": "Peat", "every": "2 / y", "season": "Spring"},
      "watering": [
        {"occurrence": "1/w", "condition": "Soil dry", "notes": "Lukewarm water"}
      ]
    }
  }
]`

func TestDecode(t *testing.T) {
	plants, err := Decode([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(plants) != 1 {
		t.Fatalf("plants count: got %d, want 1", len(plants))
	}

	p := plants[0]
	if p.Name != "Ficus" {
		t.Errorf("Name: got %q, want Ficus", p.Name)
	}
	if want := caldate.New(2023, time.April, 15); p.SoilChangedAt != want {
		t.Errorf("SoilChangedAt: got %v, want %v", p.SoilChangedAt, want)
	}
	if want := caldate.New(2024, time.March, 1); p.SoilFertilizedAt != want {
		t.Errorf("SoilFertilizedAt: got %v, want %v", p.SoilFertilizedAt, want)
	}
	if !p.WateredAt.IsZero() {
		t.Errorf("WateredAt: got %v, want zero date", p.WateredAt)
	}

	sc := p.Regimen.SoilChange
	if sc == nil {
		t.Fatal("SoilChange: got nil")
	}
	if sc.Every != occurrence.MustParse("2/y") || sc.Season != season.Spring || sc.SoilType != "Peat" {
		t.Errorf("SoilChange: got %+v", *sc)
	}

	if len(p.Regimen.Fertilization) != 1 {
		t.Fatalf("Fertilization count: got %d, want 1", len(p.Regimen.Fertilization))
	}
	f := p.Regimen.Fertilization[0]
	if f.OverTheYear() {
		t.Error("Fertilization.OverTheYear: got true for explicit seasons")
	}
	if len(f.Seasons) != 2 || f.Seasons[0] != season.Spring || f.Seasons[1] != season.Summer {
		t.Errorf("Fertilization.Seasons: got %v", f.Seasons)
	}

	if len(p.Regimen.Watering) != 1 {
		t.Fatalf("Watering count: got %d, want 1", len(p.Regimen.Watering))
	}
	w := p.Regimen.Watering[0]
	if !w.OverTheYear() {
		t.Error("Watering.OverTheYear: got false without seasons")
	}
	if w.Occurrence != occurrence.MustParse("1/w") || w.Condition != "Soil dry" || w.Notes != "Lukewarm water" {
		t.Errorf("Watering: got %+v", w)
	}
}

func TestDecodeEmptySeasons(t *testing.T) {
	plants, err := Decode([]byte(`[{"name":"Aloe","regimen":{"soilChange":{"every":"1/y","season":"Fall"},"watering":[{"occurrence":"1/m","seasons":[]}]}}]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	w := plants[0].Regimen.Watering[0]
	if w.Seasons == nil || len(w.Seasons) != 0 {
		t.Errorf("Seasons: got %#v, want empty non-nil slice", w.Seasons)
	}
	if w.OverTheYear() {
		t.Error("OverTheYear: got true for an empty season list")
	}
}

func TestDecodeNull(t *testing.T) {
	plants, err := Decode([]byte("null"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(plants) != 0 {
		t.Errorf("plants count: got %d, want 0", len(plants))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"object instead of array", `{"name":"Ficus"}`},
		{"bad occurrence", `[{"name":"Ficus","regimen":{"watering":[{"occurrence":"2/x"}]}}]`},
		{"bad date", `[{"name":"Ficus","wateredAt":"2024-13-40"}]`},
		{"bad season", `[{"name":"Ficus","regimen":{"soilChange":{"every":"1/y","season":"Monsoon"}}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Errorf("Decode(%s): expected error", tt.data)
			}
		})
	}
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.json")

	original := []Plant{
		{
			Name:          "Monstera",
			SoilChangedAt: caldate.New(2022, time.May, 2),
			Regimen: Regimen{
				Fertilization: []Fertilization{
					{Occurrence: occurrence.MustParse("1/m"), FertilizerType: "NPK", Seasons: []season.Season{season.Summer}},
				},
				SoilChange: &SoilChange{SoilType: "Bark mix", Every: occurrence.MustParse("1/y"), Season: season.Spring},
				Watering: []Watering{
					{Occurrence: occurrence.MustParse("2/w"), Condition: "Top dry"},
				},
			},
		},
	}

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("plants count: got %d, want 1", len(loaded))
	}

	got := loaded[0]
	if got.Name != "Monstera" || got.SoilChangedAt != original[0].SoilChangedAt {
		t.Errorf("plant: got %q %v", got.Name, got.SoilChangedAt)
	}
	if !got.WateredAt.IsZero() {
		t.Errorf("WateredAt: got %v, want zero date", got.WateredAt)
	}
	if *got.Regimen.SoilChange != *original[0].Regimen.SoilChange {
		t.Errorf("SoilChange: got %+v, want %+v", *got.Regimen.SoilChange, *original[0].Regimen.SoilChange)
	}
	if got.Regimen.Watering[0].Occurrence != occurrence.MustParse("2/w") {
		t.Errorf("Watering occurrence: got %v", got.Regimen.Watering[0].Occurrence)
	}
	if !got.Regimen.Watering[0].OverTheYear() {
		t.Error("Watering without seasons should stay whole-year after a round trip")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("saved file should end with a newline")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load: expected error for missing file")
	}
}
