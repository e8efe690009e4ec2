package generator

import (
	"fmt"
	"strings"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/internal/defs"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// Integration groups the post-install files of one selected option.
type Integration struct {
	ID        string
	Artifacts []Artifact
}

// ComponentsConfig is the UI kit's components.json.
type ComponentsConfig struct {
	Schema   string             `json:"$schema"`
	Style    string             `json:"style"`
	RSC      bool               `json:"rsc"`
	TSX      bool               `json:"tsx"`
	Tailwind ComponentsTailwind `json:"tailwind"`
	Aliases  ComponentsAliases  `json:"aliases"`
}

// ComponentsTailwind points the UI kit at the CSS framework files.
type ComponentsTailwind struct {
	Config       string `json:"config"`
	CSS          string `json:"css"`
	BaseColor    string `json:"baseColor"`
	CSSVariables bool   `json:"cssVariables"`
	Prefix       string `json:"prefix"`
}

// ComponentsAliases are the import aliases used by generated components.
type ComponentsAliases struct {
	Components string `json:"components"`
	Utils      string `json:"utils"`
}

// integrationBuilders run in this order when their identifier is selected.
var integrationBuilders = []struct {
	id    string
	build func(models.Selection) ([]Artifact, error)
}{
	{catalog.IDShadcn, uiKitArtifacts},
	{catalog.IDTailwind, cssFrameworkArtifacts},
}

// Integrations returns the post-install files for every selected
// integration. An empty result means nothing needs wiring.
func Integrations(sel models.Selection) ([]Integration, error) {
	var out []Integration
	for _, ib := range integrationBuilders {
		if !sel.Has(ib.id) {
			continue
		}
		artifacts, err := ib.build(sel)
		if err != nil {
			return nil, fmt.Errorf("integration %s: %w", ib.id, err)
		}
		out = append(out, Integration{ID: ib.id, Artifacts: artifacts})
	}
	return out, nil
}

func uiKitArtifacts(models.Selection) ([]Artifact, error) {
	cfg := ComponentsConfig{
		Schema: "https://ui.shadcn.com/schema.json",
		Style:  "default",
		RSC:    false,
		TSX:    true,
		Tailwind: ComponentsTailwind{
			Config:       defs.TailwindConfig,
			CSS:          defs.GlobalStylesCSS,
			BaseColor:    "slate",
			CSSVariables: true,
			Prefix:       "",
		},
		Aliases: ComponentsAliases{
			Components: "@/components",
			Utils:      "@/lib/utils",
		},
	}
	data, err := encodeJSON(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", defs.ComponentsJSON, err)
	}
	if err := validateDocument(componentsSchemaName, data); err != nil {
		return nil, err
	}

	return []Artifact{
		{Path: defs.ComponentsJSON, Content: data},
		{Path: defs.UtilsTS, Content: []byte(cnUtility)},
	}, nil
}

const cnUtility = `import { type ClassValue, clsx } from 'clsx'
import { twMerge } from 'tailwind-merge'

export function cn(...inputs: ClassValue[]) {
  return twMerge(clsx(inputs))
}
`

func cssFrameworkArtifacts(sel models.Selection) ([]Artifact, error) {
	return []Artifact{
		{Path: defs.TailwindConfig, Content: []byte(TailwindConfig(sel))},
		{Path: defs.PostCSSConfig, Content: []byte(postcssConfig)},
	}, nil
}

// TailwindConfig returns tailwind.config.js. The animation plugin is
// registered when the UI kit is selected.
func TailwindConfig(sel models.Selection) string {
	withAnimate := sel.Has(catalog.IDShadcn)

	var b strings.Builder
	if withAnimate {
		b.WriteString("import animate from 'tailwindcss-animate'\n\n")
	}
	b.WriteString(tailwindConfigBody)
	if withAnimate {
		b.WriteString("  plugins: [animate],\n")
	} else {
		b.WriteString("  plugins: [],\n")
	}
	b.WriteString("}\n")
	return b.String()
}

const tailwindConfigBody = `/** @type {import('tailwindcss').Config} */
export default {
  darkMode: ['class'],
  content: ['./index.html', './src/**/*.{ts,tsx}'],
  theme: {
    extend: {
      colors: {
        border: 'hsl(var(--border))',
        input: 'hsl(var(--input))',
        ring: 'hsl(var(--ring))',
        background: 'hsl(var(--background))',
        foreground: 'hsl(var(--foreground))',
        primary: {
          DEFAULT: 'hsl(var(--primary))',
          foreground: 'hsl(var(--primary-foreground))',
        },
        secondary: {
          DEFAULT: 'hsl(var(--secondary))',
          foreground: 'hsl(var(--secondary-foreground))',
        },
        destructive: {
          DEFAULT: 'hsl(var(--destructive))',
          foreground: 'hsl(var(--destructive-foreground))',
        },
        muted: {
          DEFAULT: 'hsl(var(--muted))',
          foreground: 'hsl(var(--muted-foreground))',
        },
        accent: {
          DEFAULT: 'hsl(var(--accent))',
          foreground: 'hsl(var(--accent-foreground))',
        },
        card: {
          DEFAULT: 'hsl(var(--card))',
          foreground: 'hsl(var(--card-foreground))',
        },
      },
      borderRadius: {
        lg: 'var(--radius)',
        md: 'calc(var(--radius) - 2px)',
        sm: 'calc(var(--radius) - 4px)',
      },
    },
  },
`

const postcssConfig = `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`
