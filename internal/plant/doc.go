// Package plant parses and validates the plant regimen file.
//
// The plant file is a JSON array of plants:
//
//	[
//	  {
//	    "name": "Ficus",
//	    "soilChangedAt": "2023-4-15",
//	    "soilFertilizedAt": "2024-3-1",
//	    "wateredAt": "2024-1-1",
//	    "regimen": {
//	      "fertilization": [
//	        {"occurrence": "2/m", "fertilizerType": "Nitrogen", "seasons": ["Spring", "Summer"]}
//	      ],
//	      "soilChange": {"soilType": "Peat", "every": "2/y", "season": "Spring"},
//	      "watering": [
//	        {"occurrence": "1/w", "condition": "Soil dry", "notes": "Lukewarm water"}
//	      ]
//	    }
//	  }
//	]
//
// Dates use the yyyy-M-d form with optional zero padding; an empty date is
// the unset date. Occurrences use "<times>/<w|m|y>"; an empty occurrence is
// unset. Seasons are English season names. Omitting "seasons" applies an
// entry over the whole year.
//
// # Validation
//
// Validation runs in two stages:
//
// 1. JSON Schema validation of the raw document against the bundled
// draft 2020-12 schema, or against a schema file when one is configured.
//
// 2. Rule validation of the decoded plants: names are required, every plant
// has a soil change and a watering list, occurrences are set and seasons are
// valid.
package plant
