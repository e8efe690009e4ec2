package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"
)

// templatePattern selects the files of a template set.
const templatePattern = "*.tmpl"

// Renderer executes project metadata templates against a TemplateContext.
type Renderer interface {
	// Render executes the named template. It fails with ErrTemplateNotFound
	// for an unknown name and ErrRender when execution fails.
	Render(name string, data *TemplateContext) ([]byte, error)
}

// renderer holds a template set parsed once at construction.
type renderer struct {
	set *template.Template
}

// NewRenderer parses every *.tmpl file at the root of fsys. Parse errors
// surface here so a broken embedded template fails before any file is
// written.
func NewRenderer(fsys fs.FS) (Renderer, error) {
	set, err := template.ParseFS(fsys, templatePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}
	return &renderer{set: set}, nil
}

func (r *renderer) Render(name string, data *TemplateContext) ([]byte, error) {
	t := r.set.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if data == nil || data.ProjectName == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingProject, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	return buf.Bytes(), nil
}
