// Package generator builds the files of a new project as a pure function
// of its descriptor. Nothing in this package touches the disk; the
// materializer in internal/core/project writes the returned artifacts.
package generator

import (
	"errors"
	"fmt"

	"github.com/forgekit/create-react-kit/internal/defs"
	"github.com/forgekit/create-react-kit/internal/template"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// Sentinel errors for artifact generation. None of them depend on user
// input that passed validation; they guard internal invariants.
var (
	// ErrInvalidVersionSpec indicates a dependency version is neither
	// "latest" nor a valid semver constraint.
	ErrInvalidVersionSpec = errors.New("generator: invalid version spec")

	// ErrSchemaViolation indicates a generated JSON document does not
	// match its embedded schema.
	ErrSchemaViolation = errors.New("generator: schema violation")
)

// Artifact is a generated file, addressed relative to the project root
// with forward slashes.
type Artifact struct {
	Path    string
	Content []byte
}

// Generator produces artifacts for a project descriptor.
type Generator struct {
	renderer template.Renderer
}

// New creates a Generator backed by the embedded metadata templates.
func New() (*Generator, error) {
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	r, err := template.NewRenderer(fsys)
	if err != nil {
		return nil, err
	}
	return NewWithRenderer(r), nil
}

// NewWithRenderer creates a Generator using the given template renderer.
func NewWithRenderer(r template.Renderer) *Generator {
	return &Generator{renderer: r}
}

// Generate returns every create-time artifact for desc in a fixed order.
// Integration files written after install are returned by Integrations.
func (g *Generator) Generate(desc models.ProjectDescriptor) ([]Artifact, error) {
	manifest, err := BuildManifest(desc)
	if err != nil {
		return nil, err
	}
	manifestJSON, err := manifest.JSON()
	if err != nil {
		return nil, err
	}

	metadata, err := g.Metadata(desc)
	if err != nil {
		return nil, err
	}

	artifacts := []Artifact{
		{Path: defs.PackageJSON, Content: manifestJSON},
		{Path: defs.TSConfigJSON, Content: []byte(tsconfigJSON)},
		{Path: defs.TSConfigNode, Content: []byte(tsconfigNodeJSON)},
		{Path: defs.ViteConfig, Content: []byte(BuildConfig(desc.Selection))},
		{Path: defs.IndexHTML, Content: []byte(IndexHTML(desc.Name))},
	}
	artifacts = append(artifacts, metadata...)
	artifacts = append(artifacts,
		Artifact{Path: defs.EntryPointTSX, Content: []byte(EntryPoint(desc.Selection))},
		Artifact{Path: defs.AppShellTSX, Content: []byte(AppShell(desc))},
		Artifact{Path: defs.ViteEnvDTS, Content: []byte(viteEnvDTS)},
		Artifact{Path: defs.GlobalStylesCSS, Content: []byte(Stylesheet(desc.Selection))},
	)
	if setup, ok := TestSetup(desc.Selection); ok {
		artifacts = append(artifacts, Artifact{Path: defs.TestSetupTS, Content: []byte(setup)})
	}

	return artifacts, nil
}
