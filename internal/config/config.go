package config

import (
	"errors"
	"fmt"

	"github.com/nibzard/greenthumb/internal/logging"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceDotEnv   ConfigSource = ".env file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultPlantsFile   = "Files/plants.json"
	DefaultTemplateFile = "Files/template.html"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DotEnvFile          = ".env"
	EnvPrefix           = "GREENTHUMB_"
)

// Errors reported by Validate.
var (
	ErrMissingYear   = errors.New("year is required")
	ErrInvalidYear   = errors.New("year must be between 1 and 9999")
	ErrMissingOutput = errors.New("output directory is required")
	// ErrInvalidLogLevel and ErrInvalidLogFormat wrap unknown logging values.
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Config holds the full configuration for greenthumb.
type Config struct {
	// Paths
	PlantsFile   string `toml:"plants_file"`
	TemplateFile string `toml:"template_file"`
	SchemaFile   string `toml:"schema_file"` // empty uses the bundled schema
	OutputDir    string `toml:"output_dir"`

	// Generation
	Year   int  `toml:"year"`
	ICS    bool `toml:"ics"`
	Strict bool `toml:"strict"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// configFields returns the configurable field names for source tracking.
func configFields() []string {
	return []string{
		"plants_file",
		"template_file",
		"schema_file",
		"output_dir",
		"year",
		"ics",
		"strict",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.PlantsFile = DefaultPlantsFile
	cfg.TemplateFile = DefaultTemplateFile
	cfg.SchemaFile = ""
	cfg.OutputDir = ""
	cfg.Year = 0
	cfg.ICS = false
	cfg.Strict = false
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

// Validate checks the values needed to generate a calendar.
func (c *Config) Validate() error {
	var errs []error
	switch {
	case c.Year == 0:
		errs = append(errs, ErrMissingYear)
	case c.Year < 1 || c.Year > 9999:
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidYear, c.Year))
	}
	if c.OutputDir == "" {
		errs = append(errs, ErrMissingOutput)
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("%w %q", ErrInvalidLogFormat, c.LogFormat))
	}
	return errors.Join(errs...)
}
