package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Greenthumb configuration file
# Values can be overridden by a .env file, GREENTHUMB_* environment
# variables or CLI flags

# Plants file (relative to project root)
plants_file = "Files/plants.json"

# Page template; GENERATED_HTML is replaced with each page's content
template_file = "Files/template.html"

# JSON Schema for the plants file (empty uses the bundled schema)
# schema_file = "plants.schema.json"

# Output directory (supports ~ expansion)
# output_dir = "out"

# Calendar year
# year = 2025

# Also write hoitokalenteri-<year>.ics
ics = false

# Abort when the plants file cannot be loaded or validated
strict = false

# Logging
log_level = "info"     # debug, info, warn, error
log_format = "text"    # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
