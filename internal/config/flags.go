package config

import (
	"flag"
)

// parseFlags defines the generation flags on fs, parses args and applies
// explicitly set flags over cfg.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("greenthumb", flag.ContinueOnError)
	}

	// Flags bind to copies so that unset flags never clobber file or
	// environment values.
	v := *cfg
	DefineFlags(fs, &v)

	if err := fs.Parse(args); err != nil {
		return err
	}

	flagToField := map[string]string{
		"plants":         "plants_file",
		"template":       "template_file",
		"schema":         "schema_file",
		"output":         "output_dir",
		"year":           "year",
		"ics":            "ics",
		"strict":         "strict",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}

	fs.Visit(func(f *flag.Flag) {
		field, ok := flagToField[f.Name]
		if !ok {
			return
		}
		setSource(sources, field, SourceFlag)
		switch field {
		case "plants_file":
			cfg.PlantsFile = v.PlantsFile
		case "template_file":
			cfg.TemplateFile = v.TemplateFile
		case "schema_file":
			cfg.SchemaFile = v.SchemaFile
		case "output_dir":
			cfg.OutputDir = v.OutputDir
		case "year":
			cfg.Year = v.Year
		case "ics":
			cfg.ICS = v.ICS
		case "strict":
			cfg.Strict = v.Strict
		case "log_level":
			cfg.LogLevel = v.LogLevel
		case "log_format":
			cfg.LogFormat = v.LogFormat
		case "log_timestamps":
			cfg.LogTimestamps = v.LogTimestamps
		case "log_caller":
			cfg.LogCaller = v.LogCaller
		}
	})

	return nil
}

// DefineFlags registers the configuration flags on fs, bound to cfg.
func DefineFlags(fs *flag.FlagSet, cfg *Config) {
	// Paths
	fs.StringVar(&cfg.PlantsFile, "plants", cfg.PlantsFile, "Path to plants file")
	fs.StringVar(&cfg.TemplateFile, "template", cfg.TemplateFile, "Path to page template")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to plants JSON Schema (default: bundled)")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Output directory (required)")

	// Generation
	fs.IntVar(&cfg.Year, "year", cfg.Year, "Calendar year (required)")
	fs.BoolVar(&cfg.ICS, "ics", cfg.ICS, "Also write an iCalendar file")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail when the plants file cannot be loaded")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
}
