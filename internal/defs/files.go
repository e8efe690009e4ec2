package defs

// Common file names of a generated project.
const (
	PackageJSON     = "package.json"
	TSConfigJSON    = "tsconfig.json"
	TSConfigNode    = "tsconfig.node.json"
	ViteConfig      = "vite.config.ts"
	ESLintConfig    = ".eslintrc.cjs"
	PrettierConfig  = ".prettierrc"
	GitIgnore       = ".gitignore"
	ReadmeMD        = "README.md"
	IndexHTML       = "index.html"
	ComponentsJSON  = "components.json"
	TailwindConfig  = "tailwind.config.js"
	PostCSSConfig   = "postcss.config.js"
	EntryPointTSX   = "src/main.tsx"
	AppShellTSX     = "src/App.tsx"
	ViteEnvDTS      = "src/vite-env.d.ts"
	GlobalStylesCSS = "src/styles/globals.css"
	TestSetupTS     = "src/tests/setup.ts"
	UtilsTS         = "src/lib/utils.ts"
)

// SrcDir is the source root of a generated project.
const SrcDir = "src"

// SkeletonDirs lists the directories created under SrcDir.
var SkeletonDirs = []string{
	"components",
	"features",
	"hooks",
	"utils",
	"services",
	"assets",
	"styles",
	"types",
	"constants",
	"context",
	"pages",
	"tests",
}
