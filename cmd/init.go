package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nibzard/greenthumb/internal/config"
	"github.com/nibzard/greenthumb/internal/plant"
	"github.com/nibzard/greenthumb/internal/render"
)

// initCommand writes an example config, plants file and page template.
// Existing files are kept unless opts.force is set.
func initCommand(cfg *config.Config, w io.Writer, opts commandOptions) error {
	type scaffold struct {
		path  string
		write func(path string) error
	}

	var files []scaffold
	if !opts.skipConfig {
		files = append(files, scaffold{
			path:  filepath.Join(cfg.ProjectRoot, config.ConfigFileName),
			write: writeString(config.ExampleConfig()),
		})
	}
	files = append(files,
		scaffold{
			path: cfg.PlantsFile,
			write: func(path string) error {
				return plant.Save(path, plant.Example())
			},
		},
		scaffold{
			path:  cfg.TemplateFile,
			write: writeString(render.DefaultTemplate()),
		},
	)

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil && !opts.force {
			fmt.Fprintf(w, "Skipped %s (exists)\n", f.path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.path, err)
		}
		if err := f.write(f.path); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
		fmt.Fprintf(w, "Created %s\n", f.path)
	}
	return nil
}

func writeString(content string) func(string) error {
	return func(path string) error {
		return os.WriteFile(path, []byte(content), 0644)
	}
}
