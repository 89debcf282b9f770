package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// readDotEnv reads key/value pairs from a .env file. A missing file yields
// nil without error.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return values, nil
}

// envLookup returns a lookup that prefers the process environment over
// values from the .env file.
func envLookup(dotenv map[string]string) func(string) (string, ConfigSource, bool) {
	return func(key string) (string, ConfigSource, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, SourceEnv, true
		}
		if v, ok := dotenv[key]; ok && v != "" {
			return v, SourceDotEnv, true
		}
		return "", "", false
	}
}

// loadFromEnv overrides config from GREENTHUMB_* variables.
func loadFromEnv(cfg *Config, lookup func(string) (string, ConfigSource, bool), sources map[string]ConfigSource) {
	str := func(key, field string, target *string) {
		if v, src, ok := lookup(EnvPrefix + key); ok {
			*target = v
			setSource(sources, field, src)
		}
	}
	boolean := func(key, field string, target *bool) {
		if v, src, ok := lookup(EnvPrefix + key); ok {
			*target = boolFromString(v)
			setSource(sources, field, src)
		}
	}

	str("PLANTS", "plants_file", &cfg.PlantsFile)
	str("TEMPLATE", "template_file", &cfg.TemplateFile)
	str("SCHEMA", "schema_file", &cfg.SchemaFile)
	str("OUTPUT", "output_dir", &cfg.OutputDir)
	if v, src, ok := lookup(EnvPrefix + "YEAR"); ok {
		if year, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Year = year
			setSource(sources, "year", src)
		}
	}
	boolean("ICS", "ics", &cfg.ICS)
	boolean("STRICT", "strict", &cfg.Strict)

	// Logging configuration
	str("LOG_LEVEL", "log_level", &cfg.LogLevel)
	str("LOG_FORMAT", "log_format", &cfg.LogFormat)
	boolean("LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	boolean("LOG_CALLER", "log_caller", &cfg.LogCaller)
}

func setSource(sources map[string]ConfigSource, field string, source ConfigSource) {
	if sources != nil {
		sources[field] = source
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
