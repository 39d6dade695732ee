package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

const layoutFile = "layout.html"

// Renderer renders pages from a template filesystem. Each page is parsed
// together with the shared layout into its own template set.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the layout and the content template of every page.
func NewRenderer(fsys fs.FS, pages []Page) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, p := range pages {
		tmpl, err := template.ParseFS(fsys, layoutFile, p.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to parse templates for %q: %w", p.Path, err)
		}
		if tmpl.Lookup("layout") == nil {
			return nil, fmt.Errorf("templates for %q do not define a layout", p.Path)
		}
		r.templates[p.Path] = tmpl
	}

	return r, nil
}

// Render writes the markup for p to w. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, p Page) error {
	tmpl, ok := r.templates[p.Path]
	if !ok {
		return fmt.Errorf("no templates loaded for %q", p.Path)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("failed to render %q: %w", p.Path, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
