package generator

import (
	"fmt"
	"html"

	"github.com/lithammer/dedent"

	"github.com/forgekit/create-react-kit/internal/defs"
	"github.com/forgekit/create-react-kit/internal/template"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// metadataTemplates maps embedded template names to artifact paths.
var metadataTemplates = []struct {
	name string
	path string
}{
	{template.GitignoreTmpl, defs.GitIgnore},
	{template.ESLintTemplate, defs.ESLintConfig},
	{template.PrettierTemplate, defs.PrettierConfig},
	{template.ReadmeTemplate, defs.ReadmeMD},
}

// Metadata renders the ignore file, linter config, formatter config and
// README. Only the README uses the project name.
func (g *Generator) Metadata(desc models.ProjectDescriptor) ([]Artifact, error) {
	ctx := template.NewTemplateContext(template.WithProject(desc.Name))

	artifacts := make([]Artifact, 0, len(metadataTemplates))
	for _, mt := range metadataTemplates {
		content, err := g.renderer.Render(mt.name, ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", mt.path, err)
		}
		artifacts = append(artifacts, Artifact{Path: mt.path, Content: content})
	}
	return artifacts, nil
}

// IndexHTML returns the Vite HTML entry document.
func IndexHTML(name string) string {
	return fmt.Sprintf(dedent.Dedent(`
		<!doctype html>
		<html lang="en">
		  <head>
		    <meta charset="UTF-8" />
		    <link rel="icon" type="image/svg+xml" href="/vite.svg" />
		    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
		    <title>%s</title>
		  </head>
		  <body>
		    <div id="root"></div>
		    <script type="module" src="/%s"></script>
		  </body>
		</html>
		`)[1:], html.EscapeString(template.DisplayName(name)), defs.EntryPointTSX)
}

const tsconfigJSON = `{
  "compilerOptions": {
    "target": "ES2020",
    "useDefineForClassFields": true,
    "lib": ["ES2020", "DOM", "DOM.Iterable"],
    "module": "ESNext",
    "skipLibCheck": true,
    "moduleResolution": "bundler",
    "allowImportingTsExtensions": true,
    "resolveJsonModule": true,
    "isolatedModules": true,
    "noEmit": true,
    "jsx": "react-jsx",
    "strict": true,
    "noUnusedLocals": true,
    "noUnusedParameters": true,
    "noFallthroughCasesInSwitch": true,
    "baseUrl": ".",
    "paths": {
      "@/*": ["./src/*"]
    }
  },
  "include": ["src"],
  "references": [{ "path": "./tsconfig.node.json" }]
}
`

const tsconfigNodeJSON = `{
  "compilerOptions": {
    "composite": true,
    "skipLibCheck": true,
    "module": "ESNext",
    "moduleResolution": "bundler",
    "allowSyntheticDefaultImports": true,
    "strict": true
  },
  "include": ["vite.config.ts"]
}
`

const viteEnvDTS = "/// <reference types=\"vite/client\" />\n"
