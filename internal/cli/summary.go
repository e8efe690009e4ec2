package cli

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ddddddO/gtree"

	"github.com/forgekit/create-react-kit/internal/core/project"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// summaryWrap is the word-wrap width of the rendered next steps.
const summaryWrap = 80

// renderTree draws the created directories and files below name.
func renderTree(name string, dirs, files []string) (string, error) {
	paths := slices.Concat(dirs, files)
	slices.Sort(paths)
	paths = slices.Compact(paths)

	root := gtree.NewRoot(name)
	for _, p := range paths {
		node := root
		for seg := range strings.SplitSeq(p, "/") {
			node = node.Add(seg)
		}
	}

	var buf bytes.Buffer
	if err := gtree.OutputFromRoot(&buf, root); err != nil {
		return "", fmt.Errorf("render tree: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// nextStepsMarkdown lists the commands to start the new project.
func nextStepsMarkdown(desc models.ProjectDescriptor, installed bool) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "1. `cd %s`\n", desc.Name)
	step := 2
	if !installed {
		if install, err := desc.PackageManager.InstallCommand(); err == nil {
			fmt.Fprintf(&b, "%d. `%s`\n", step, install)
			step++
		}
	}
	fmt.Fprintf(&b, "%d. `%s dev`\n", step, desc.PackageManager.RunCommand())
	return b.String()
}

// renderMarkdown renders md for the terminal. plain selects the no-TTY
// style used when colour is off or no terminal is attached.
func renderMarkdown(md string, plain bool) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(summaryWrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// renderSummary builds the success card, the created tree and the next steps.
func renderSummary(desc models.ProjectDescriptor, outcome *project.Outcome, plain bool) (string, error) {
	files := slices.Concat(outcome.CreatedFiles, outcome.WiredFiles)

	tree, err := renderTree(desc.Name, outcome.CreatedDirs, files)
	if err != nil {
		return "", err
	}

	libraries := "none"
	if len(desc.Selection) > 0 {
		libraries = strings.Join(desc.Selection, ", ")
	}
	card := renderSuccessCard(fmt.Sprintf("Created %s", desc.Name),
		renderKeyValueLines([]kvPair{
			{"Location", outcome.Root},
			{"Package manager", string(desc.PackageManager)},
			{"Libraries", libraries},
			{"Files", fmt.Sprintf("%d written", len(files))},
		}),
	)

	steps, err := renderMarkdown(nextStepsMarkdown(desc, outcome.Installed), plain)
	if err != nil {
		return "", err
	}

	return card + "\n\n" + tree + "\n" + steps, nil
}
