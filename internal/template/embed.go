package template

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embedded embed.FS

// Template names under the embedded templates directory.
const (
	ReadmeTemplate   = "README.md.tmpl"
	GitignoreTmpl    = "gitignore.tmpl"
	ESLintTemplate   = "eslintrc.cjs.tmpl"
	PrettierTemplate = "prettierrc.tmpl"
)

// EmbeddedTemplates returns the embedded templates rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
