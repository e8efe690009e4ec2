package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// LatestVersion is the unpinned version marker used for selected libraries.
const LatestVersion = "latest"

// baseDependencies are always present.
var baseDependencies = map[string]string{
	"react":     "^18.2.0",
	"react-dom": "^18.2.0",
}

// baseDevDependencies cover type stubs, linter, formatter, bundler and compiler.
var baseDevDependencies = map[string]string{
	"@types/react":                     "^18.2.43",
	"@types/react-dom":                 "^18.2.17",
	"@typescript-eslint/eslint-plugin": "^6.14.0",
	"@typescript-eslint/parser":        "^6.14.0",
	"eslint":                           "^8.55.0",
	"eslint-plugin-react-hooks":        "^4.6.0",
	"eslint-plugin-react-refresh":      "^0.4.5",
	"prettier":                         "^3.1.1",
	"typescript":                       "^5.2.2",
	"vite":                             "^5.0.8",
}

// bundle is the concrete expansion of a meta-option.
type bundle struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// metaBundles expands meta identifiers into concrete packages. A meta
// identifier never appears as a dependency key itself.
var metaBundles = map[string]bundle{
	catalog.IDShadcn: {
		Dependencies: map[string]string{
			"@radix-ui/react-slot":     "^1.0.2",
			"class-variance-authority": "^0.7.0",
			"clsx":                     "^2.1.0",
			"tailwind-merge":           "^2.2.0",
		},
		DevDependencies: map[string]string{
			"tailwindcss-animate": "^1.0.7",
		},
	},
}

// extraDevDependencies lists companion dev packages pulled in by an identifier.
var extraDevDependencies = map[string][]string{
	catalog.IDTailwind: {"postcss", "autoprefixer"},
	catalog.IDVitest:   {"@testing-library/react", "@testing-library/jest-dom", "@vitejs/plugin-react", "jsdom"},
}

// Scripts is the package.json scripts mapping. Test is omitted from the
// encoded manifest when empty.
type Scripts struct {
	Dev     string `json:"dev"`
	Build   string `json:"build"`
	Lint    string `json:"lint"`
	Preview string `json:"preview"`
	Format  string `json:"format"`
	Test    string `json:"test,omitempty"`
}

// Manifest is the package.json of a generated project. Field order is the
// key order of the encoded document.
type Manifest struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Scripts         Scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// @MX:ANCHOR: [AUTO] BuildManifest decides every dependency a generated project installs.
// @MX:REASON: [AUTO] consumed by Generate, the summary card and the manifest tests
// BuildManifest computes the package manifest for desc.
func BuildManifest(desc models.ProjectDescriptor) (*Manifest, error) {
	m := &Manifest{
		Name:            desc.Name,
		Private:         true,
		Version:         "0.0.0",
		Type:            "module",
		Scripts:         baseScripts(),
		Dependencies:    maps.Clone(baseDependencies),
		DevDependencies: maps.Clone(baseDevDependencies),
	}

	for _, id := range desc.Selection {
		if b, ok := metaBundles[id]; ok {
			maps.Copy(m.Dependencies, b.Dependencies)
			maps.Copy(m.DevDependencies, b.DevDependencies)
			continue
		}
		m.Dependencies[id] = LatestVersion
	}

	for _, id := range desc.Selection {
		for _, pkg := range extraDevDependencies[id] {
			if _, exists := m.DevDependencies[pkg]; !exists {
				m.DevDependencies[pkg] = LatestVersion
			}
		}
	}

	if desc.Selection.Has(catalog.IDVitest) {
		m.Scripts.Test = "vitest"
	}

	if err := checkVersionSpecs(m.Dependencies); err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	if err := checkVersionSpecs(m.DevDependencies); err != nil {
		return nil, fmt.Errorf("devDependencies: %w", err)
	}

	return m, nil
}

func baseScripts() Scripts {
	return Scripts{
		Dev:     "vite",
		Build:   "tsc && vite build",
		Lint:    "eslint . --ext ts,tsx --report-unused-disable-directives --max-warnings 0",
		Preview: "vite preview",
		Format:  `prettier --write "src/**/*.{ts,tsx,css}"`,
	}
}

// JSON encodes the manifest with two-space indentation and a trailing
// newline, then checks it against the embedded package schema.
func (m *Manifest) JSON() ([]byte, error) {
	data, err := encodeJSON(m)
	if err != nil {
		return nil, fmt.Errorf("encode package.json: %w", err)
	}
	if err := validateDocument(packageSchemaName, data); err != nil {
		return nil, err
	}
	return data, nil
}

// encodeJSON indents v without escaping &, < and >, which appear in scripts.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
