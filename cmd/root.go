// Package cmd implements the CLI command structure for greenthumb.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/greenthumb/internal/config"
	"github.com/nibzard/greenthumb/internal/logging"
	"github.com/nibzard/greenthumb/internal/plant"
	"github.com/nibzard/greenthumb/internal/render"
	"github.com/nibzard/greenthumb/internal/schedule"
	"github.com/nibzard/greenthumb/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// commandOptions holds the flags that only some commands use.
type commandOptions struct {
	month      int  // tui
	verbose    bool // doctor
	force      bool // init
	skipConfig bool // init
}

// Run executes the greenthumb CLI.
func Run(ctx context.Context, args []string) error {
	// Determine the subcommand
	// If no args or first arg is a flag, use "generate" as default
	subcommand := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		subcommand = args[0]
		args = args[1:]
	}

	// Create a flag set for global options
	fs := flag.NewFlagSet("greenthumb", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	var opts commandOptions
	fs.IntVar(&opts.month, "month", 0, "Month to open in the browser, 1-12 (tui)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Verbose output (doctor)")
	fs.BoolVar(&opts.force, "force", false, "Overwrite existing files (init)")
	fs.BoolVar(&opts.skipConfig, "skip-config", false, "Do not write greenthumb.toml (init)")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	logger := logging.NewFromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)

	// Execute the subcommand
	switch subcommand {
	case "generate":
		if err := cfg.Validate(); err != nil {
			printUsage(fs, os.Stderr)
			return fmt.Errorf("invalid arguments: %w", err)
		}
		return generateCommand(ctx, cfg, logger)
	case "tui":
		return tuiCommand(ctx, cfg, logger, opts)
	case "doctor":
		return doctorCommand(cfg, os.Stdout, opts.verbose)
	case "init":
		return initCommand(cfg, os.Stdout, opts)
	case "version":
		return versionCommand(os.Stdout)
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// If it's not a recognized command, it might be a plants file path
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			cfg.PlantsFile, _ = filepath.Abs(subcommand)
			if err := cfg.Validate(); err != nil {
				printUsage(fs, os.Stderr)
				return fmt.Errorf("invalid arguments: %w", err)
			}
			return generateCommand(ctx, cfg, logger)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// generateCommand writes the month pages, the season pages and optionally
// the iCalendar file into the output directory.
func generateCommand(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logger.Error("creating output directory failed", "dir", cfg.OutputDir, "err", err)
		return fmt.Errorf("creating output directory: %w", err)
	}

	g, err := buildSchedule(ctx, cfg, logger)
	if err != nil {
		return err
	}

	r, err := render.New(render.Options{
		Dir:          cfg.OutputDir,
		TemplatePath: cfg.TemplateFile,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	written, err := r.Months(g.Calendar)
	if err != nil {
		return fmt.Errorf("writing month pages: %w", err)
	}
	seasonPages, err := r.Seasons(g.Instructions)
	if err != nil {
		return fmt.Errorf("writing season pages: %w", err)
	}
	written = append(written, seasonPages...)

	if cfg.ICS {
		path, err := r.ICS(g.Calendar)
		if err != nil {
			return fmt.Errorf("writing calendar file: %w", err)
		}
		written = append(written, path)
	}

	logger.Info("calendar written", "dir", cfg.OutputDir, "files", len(written))
	return nil
}

// buildSchedule loads the plants and generates the calendar and the
// seasonal instructions for cfg.Year.
func buildSchedule(ctx context.Context, cfg *config.Config, logger *log.Logger) (*schedule.Generator, error) {
	plants, err := loadPlants(cfg, logger)
	if err != nil {
		return nil, err
	}

	g := schedule.NewGenerator(cfg.Year, logger)
	if err := g.Run(ctx, plants); err != nil {
		return nil, fmt.Errorf("generating schedule: %w", err)
	}
	return g, nil
}

// loadPlants reads and validates the plants file. Failures are logged and
// yield no plants unless strict mode is enabled.
func loadPlants(cfg *config.Config, logger *log.Logger) ([]plant.Plant, error) {
	plants, result, err := plant.LoadValidated(cfg.PlantsFile, plant.ValidationOptions{
		SchemaPath: cfg.SchemaFile,
		Strict:     cfg.Strict,
	})
	if result != nil {
		for _, w := range result.Warnings {
			logger.Warn(w, "path", cfg.PlantsFile)
		}
	}
	if err != nil {
		if cfg.Strict {
			return nil, fmt.Errorf("loading plants: %w", err)
		}
		logger.Error("loading plants failed, continuing without plants", "path", cfg.PlantsFile, "err", err)
		return nil, nil
	}
	return plants, nil
}

// tuiCommand generates the calendar in memory and opens the browser.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, opts commandOptions) error {
	now := time.Now()
	if cfg.Year == 0 {
		cfg.Year = now.Year()
	}
	if err := cfg.Validate(); err != nil && !errors.Is(err, config.ErrMissingOutput) {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	month := now.Month()
	if opts.month != 0 {
		if opts.month < 1 || opts.month > 12 {
			return fmt.Errorf("invalid month %d, expected 1-12", opts.month)
		}
		month = time.Month(opts.month)
	}

	g, err := buildSchedule(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return ui.RunTUI(ctx, g.Calendar, g.Instructions, ui.WithStartMonth(month))
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "greenthumb version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Greenthumb - Plant care calendar generator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  greenthumb [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate      Write month and season pages (default command)")
	fmt.Fprintln(w, "  tui           Browse the calendar in the terminal")
	fmt.Fprintln(w, "  doctor        Check config, plants file and template")
	fmt.Fprintln(w, "  init          Write an example config, plants file and template")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  greenthumb -year 2025 -output out")
	fmt.Fprintln(w, "  greenthumb generate -year 2025 -output out -ics")
	fmt.Fprintln(w, "  greenthumb tui -year 2025 -month 6")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
