package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/greenthumb/internal/config"
	"github.com/nibzard/greenthumb/internal/plant"
	"github.com/nibzard/greenthumb/internal/render"
)

// doctorCommand checks config, the plants file and the page template.
func doctorCommand(cfg *config.Config, w io.Writer, verbose bool) error {
	fmt.Fprintln(w, "Greenthumb Doctor")
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	allOK := true

	// Check project root
	fmt.Fprintf(w, "Project root: %s\n", cfg.ProjectRoot)
	if _, err := os.Stat(cfg.ProjectRoot); err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	if !checkConfig(w, cfg) {
		allOK = false
	}
	if !checkPlants(w, cfg, verbose) {
		allOK = false
	}
	if !checkTemplate(w, cfg.TemplateFile) {
		allOK = false
	}
	checkOutputDir(w, cfg.OutputDir)

	// Overall status
	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. Greenthumb may not generate a complete calendar.")
	return fmt.Errorf("doctor checks failed")
}

// checkConfig reports config values. A missing year or output directory
// is only a warning since both are usually given as flags.
func checkConfig(w io.Writer, cfg *config.Config) bool {
	fmt.Fprintln(w, "Config:")
	ok := true
	err := cfg.Validate()
	switch {
	case errors.Is(err, config.ErrMissingYear):
		fmt.Fprintln(w, "  ⚠️  Year: not set (pass -year)")
	case errors.Is(err, config.ErrInvalidYear):
		fmt.Fprintf(w, "  ❌ Year: %d (expected 1-9999)\n", cfg.Year)
		ok = false
	default:
		fmt.Fprintf(w, "  ✅ Year: %d\n", cfg.Year)
	}
	if errors.Is(err, config.ErrMissingOutput) {
		fmt.Fprintln(w, "  ⚠️  Output directory: not set (pass -output)")
	}
	if errors.Is(err, config.ErrInvalidLogLevel) {
		fmt.Fprintf(w, "  ❌ Log level: %s (expected debug|info|warn|error|fatal)\n", cfg.LogLevel)
		ok = false
	} else {
		fmt.Fprintf(w, "  ✅ Log level: %s\n", cfg.LogLevel)
	}
	if errors.Is(err, config.ErrInvalidLogFormat) {
		fmt.Fprintf(w, "  ❌ Log format: %s (expected text|json|logfmt)\n", cfg.LogFormat)
		ok = false
	} else {
		fmt.Fprintf(w, "  ✅ Log format: %s\n", cfg.LogFormat)
	}
	fmt.Fprintln(w)
	return ok
}

func checkPlants(w io.Writer, cfg *config.Config, verbose bool) bool {
	fmt.Fprintf(w, "Plants file: %s\n", cfg.PlantsFile)
	defer fmt.Fprintln(w)

	info, err := os.Stat(cfg.PlantsFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ❌ Not found (run greenthumb init)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		}
		return false
	}
	if info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		return false
	}

	if cfg.SchemaFile != "" {
		fmt.Fprintf(w, "  Schema: %s\n", cfg.SchemaFile)
	} else {
		fmt.Fprintln(w, "  Schema: bundled")
	}

	plants, result, err := plant.LoadValidated(cfg.PlantsFile, plant.ValidationOptions{
		SchemaPath: cfg.SchemaFile,
		Strict:     cfg.Strict,
	})
	if result == nil {
		fmt.Fprintf(w, "  ❌ Load error: %v\n", err)
		return false
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}
	if !result.Valid {
		fmt.Fprintln(w, "  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "     - %v\n", e)
		}
		return false
	}
	fmt.Fprintf(w, "  ✅ Valid (%d plants)\n", len(plants))
	if verbose {
		for _, p := range plants {
			fmt.Fprintf(w, "    - %s: soil change %s, %d watering, %d fertilization\n",
				p.Name, p.Regimen.SoilChange.Every, len(p.Regimen.Watering), len(p.Regimen.Fertilization))
		}
	}
	return true
}

func checkTemplate(w io.Writer, path string) bool {
	fmt.Fprintf(w, "Template: %s\n", path)
	defer fmt.Fprintln(w)

	page, err := render.LoadTemplate(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(w, "  ⚠️  Not found (default template will be used)")
			return true
		}
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}
	if !strings.Contains(page, render.Placeholder) {
		fmt.Fprintf(w, "  ❌ Missing placeholder %s\n", render.Placeholder)
		return false
	}
	fmt.Fprintln(w, "  ✅ OK")
	return true
}

func checkOutputDir(w io.Writer, dir string) {
	if dir == "" {
		return
	}
	fmt.Fprintf(w, "Output directory: %s\n", dir)
	if info, err := os.Stat(dir); err != nil {
		fmt.Fprintln(w, "  ⚠️  Not found (will be created on generate)")
	} else if !info.IsDir() {
		fmt.Fprintln(w, "  ⚠️  Path is not a directory")
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)
}
