package generator

import (
	"strings"

	"github.com/lithammer/dedent"

	"github.com/forgekit/create-react-kit/internal/catalog"
	"github.com/forgekit/create-react-kit/internal/defs"
	"github.com/forgekit/create-react-kit/pkg/models"
)

var viteConfigBody = dedent.Dedent(`
	export default defineConfig({
	  resolve: {
	    alias: {
	      '@': fileURLToPath(new URL('./src', import.meta.url)),
	    },
	  },
	  server: {
	    port: 3000,
	    open: true,
	  },
	`)[1:]

const viteTestBlock = "" +
	"  test: {\n" +
	"    globals: true,\n" +
	"    environment: 'jsdom',\n" +
	"    setupFiles: './" + defs.TestSetupTS + "',\n" +
	"  },\n"

// BuildConfig returns vite.config.ts. The test block is appended only when
// the test runner is selected.
func BuildConfig(sel models.Selection) string {
	withTests := sel.Has(catalog.IDVitest)

	var b strings.Builder
	if withTests {
		b.WriteString("/// <reference types=\"vitest\" />\n")
	}
	b.WriteString("import { fileURLToPath, URL } from 'node:url'\n")
	b.WriteString("import { defineConfig } from 'vite'\n\n")
	b.WriteString(viteConfigBody)
	if withTests {
		b.WriteString(viteTestBlock)
	}
	b.WriteString("})\n")
	return b.String()
}

// TestSetup returns src/tests/setup.ts when the test runner is selected.
func TestSetup(sel models.Selection) (string, bool) {
	if !sel.Has(catalog.IDVitest) {
		return "", false
	}
	return "import '@testing-library/jest-dom'\n", true
}
