package template

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateContext provides data for template rendering.
// All fields are exported for use with Go's text/template package.
//
// Metadata templates are parameterized by the project name only; the
// display name is derived from it.
type TemplateContext struct {
	ProjectName string // e.g., "my-app"
	DisplayName string // e.g., "My App"
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext and applies opts.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject sets the project name and derives its display title.
func WithProject(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.DisplayName = DisplayName(name)
	}
}

// DisplayName turns a project name such as "my_cool-app" into "My Cool App".
func DisplayName(name string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(name))
	if len(words) == 0 {
		return name
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
