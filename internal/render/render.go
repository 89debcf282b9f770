// Package render writes the calendar and the seasonal instructions as HTML
// pages and as an iCalendar file.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Placeholder is replaced with the generated content in page templates.
const Placeholder = "GENERATED_HTML"

var (
	//go:embed template.html
	defaultPage string

	//go:embed fragments.tmpl
	fragmentFS embed.FS

	fragments = template.Must(template.ParseFS(fragmentFS, "fragments.tmpl"))
)

// DefaultTemplate returns the page template used when no template file is
// configured.
func DefaultTemplate() string {
	return defaultPage
}

// Options configures a Renderer.
type Options struct {
	// Dir is the output directory. It must exist.
	Dir string
	// TemplatePath is a page template containing Placeholder. Empty or
	// missing files fall back to the default template.
	TemplatePath string
	Logger       *log.Logger
}

// Renderer writes generated pages into a directory.
type Renderer struct {
	dir    string
	page   string
	logger *log.Logger
	now    func() time.Time
}

// New returns a renderer writing into opts.Dir.
func New(opts Options) (*Renderer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	page, err := LoadTemplate(opts.TemplatePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logger.Warn("template not found, using default template", "path", opts.TemplatePath)
		page = defaultPage
	}
	if !strings.Contains(page, Placeholder) {
		logger.Warn("template has no placeholder, pages will not contain generated content", "placeholder", Placeholder)
	}

	return &Renderer{
		dir:    opts.Dir,
		page:   page,
		logger: logger,
		now:    time.Now,
	}, nil
}

// LoadTemplate reads a page template. An empty path returns the default
// template.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return defaultPage, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// executeFragment renders a named fragment and substitutes it into the
// page template.
func (r *Renderer) executeFragment(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return []byte(strings.ReplaceAll(r.page, Placeholder, buf.String())), nil
}

func (r *Renderer) write(name string, data []byte) (string, error) {
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	r.logger.Debug("wrote file", "path", path)
	return path, nil
}
