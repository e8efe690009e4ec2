package generator

import (
	"strings"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// tailwindDirectives open the stylesheet when the CSS framework is selected.
const tailwindDirectives = `@tailwind base;
@tailwind components;
@tailwind utilities;
`

// themeVariables holds the light and dark palettes as HSL channel triples.
const themeVariables = `:root {
  --background: 0 0% 100%;
  --foreground: 222.2 84% 4.9%;
  --card: 0 0% 100%;
  --card-foreground: 222.2 84% 4.9%;
  --primary: 222.2 47.4% 11.2%;
  --primary-foreground: 210 40% 98%;
  --secondary: 210 40% 96.1%;
  --secondary-foreground: 222.2 47.4% 11.2%;
  --muted: 210 40% 96.1%;
  --muted-foreground: 215.4 16.3% 46.9%;
  --accent: 210 40% 96.1%;
  --accent-foreground: 222.2 47.4% 11.2%;
  --destructive: 0 84.2% 60.2%;
  --destructive-foreground: 210 40% 98%;
  --border: 214.3 31.8% 91.4%;
  --input: 214.3 31.8% 91.4%;
  --ring: 222.2 84% 4.9%;
  --radius: 0.5rem;
}

.dark {
  --background: 222.2 84% 4.9%;
  --foreground: 210 40% 98%;
  --card: 222.2 84% 4.9%;
  --card-foreground: 210 40% 98%;
  --primary: 210 40% 98%;
  --primary-foreground: 222.2 47.4% 11.2%;
  --secondary: 217.2 32.6% 17.5%;
  --secondary-foreground: 210 40% 98%;
  --muted: 217.2 32.6% 17.5%;
  --muted-foreground: 215 20.2% 65.1%;
  --accent: 217.2 32.6% 17.5%;
  --accent-foreground: 210 40% 98%;
  --destructive: 0 62.8% 30.6%;
  --destructive-foreground: 210 40% 98%;
  --border: 217.2 32.6% 17.5%;
  --input: 217.2 32.6% 17.5%;
  --ring: 212.7 26.8% 83.9%;
}
`

// baseLayer uses plain CSS so it works with or without the framework.
const baseLayer = `@layer base {
  * {
    border-color: hsl(var(--border));
  }

  body {
    margin: 0;
    min-height: 100vh;
    background-color: hsl(var(--background));
    color: hsl(var(--foreground));
    font-family: system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif;
    -webkit-font-smoothing: antialiased;
  }

  .app {
    max-width: 64rem;
    margin: 0 auto;
    padding: 2rem;
  }
}
`

// styleSection is one optional block of the global stylesheet.
type styleSection struct {
	id      string // empty means always present
	content string
}

var styleSections = []styleSection{
	{id: catalog.IDTailwind, content: tailwindDirectives},
	{content: themeVariables},
	{content: baseLayer},
}

// Stylesheet returns src/styles/globals.css.
func Stylesheet(sel models.Selection) string {
	var parts []string
	for _, s := range styleSections {
		if s.id == "" || sel.Has(s.id) {
			parts = append(parts, s.content)
		}
	}
	return strings.Join(parts, "\n")
}
