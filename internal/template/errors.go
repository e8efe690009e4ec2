// Package template renders the embedded metadata templates (README,
// ignore file, linter and formatter configs) of a generated project.
package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates the named template is not in the set.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrTemplateParse indicates a template file failed to parse.
	ErrTemplateParse = errors.New("template: parse failed")

	// ErrRender indicates template execution failed, usually because the
	// template references a field TemplateContext does not define.
	ErrRender = errors.New("template: render failed")

	// ErrMissingProject indicates rendering was attempted without a project name.
	ErrMissingProject = errors.New("template: project name is required")
)
