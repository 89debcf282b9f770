// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.greenthumb/greenthumb.toml or OS-specific config directory)
// 3. Project config file (greenthumb.toml or .greenthumb.toml in the project root)
// 4. .env file in the project root
// 5. Environment variables (GREENTHUMB_*)
// 6. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.greenthumb/greenthumb.toml (preferred)
// - Windows: %APPDATA%\greenthumb\greenthumb.toml
// - macOS: ~/Library/Application Support/greenthumb/greenthumb.toml
// - Linux/BSD: $XDG_CONFIG_HOME/greenthumb/greenthumb.toml or ~/.config/greenthumb/greenthumb.toml
//
// Project-level config locations (overrides user config):
// - ./greenthumb.toml (preferred)
// - ./.greenthumb.toml
package config
