// Package render writes the signage HTML document.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/borgmon/games-board/pkg/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Renderer fills one of the built-in layouts with display rows
type Renderer struct {
	layout models.Layout
	title  string
}

type page struct {
	Title string
	Rows  []models.DisplayRow
}

// NewRenderer creates a Renderer for layout
func NewRenderer(layout models.Layout, title string) (*Renderer, error) {
	if templates.Lookup(templateName(layout)) == nil {
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
	if title == "" {
		title = models.DefaultTitle
	}
	return &Renderer{layout: layout, title: title}, nil
}

func templateName(layout models.Layout) string {
	return string(layout) + ".html.tmpl"
}

// Render writes the complete document followed by a generation comment
func (r *Renderer) Render(w io.Writer, rows []models.DisplayRow, generatedAt time.Time, runID string) error {
	if err := templates.ExecuteTemplate(w, templateName(r.layout), page{Title: r.title, Rows: rows}); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", r.layout, err)
	}

	// html/template drops comments, so the trailer is written outside it
	if _, err := fmt.Fprintf(w, "<!-- Generated: %s run %s -->\n", generatedAt.Format(time.RFC3339), runID); err != nil {
		return fmt.Errorf("failed to write generation comment: %w", err)
	}
	return nil
}

// RenderBytes renders into memory so nothing touches disk until rendering succeeded
func (r *Renderer) RenderBytes(rows []models.DisplayRow, generatedAt time.Time, runID string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rows, generatedAt, runID); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile replaces path with doc in full, creating parent directories as needed
func WriteFile(path string, doc []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("  [WRITTEN] %d bytes to %s", len(doc), path)
	return nil
}
