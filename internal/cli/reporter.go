package cli

import (
	"fmt"
	"io"

	"github.com/forgekit/create-react-kit/internal/core/project"
	"github.com/forgekit/create-react-kit/internal/ui"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// phaseLabels holds the running and finished wording of each phase.
var phaseLabels = map[project.Phase]struct{ running, done string }{
	project.PhaseGenerate:    {"Generating project files", "Project files generated"},
	project.PhaseMaterialize: {"Writing project to disk", "Project written to disk"},
	project.PhaseInstall:     {"Installing dependencies", "Dependencies installed"},
	project.PhaseWire:        {"Configuring integrations", "Integrations configured"},
}

// phaseReporter prints one line per finished phase and shows a spinner
// while dependencies install.
type phaseReporter struct {
	out      io.Writer
	progress ui.Progress
	pm       models.PackageManager
	spinner  ui.Spinner
}

func newPhaseReporter(out io.Writer, progress ui.Progress, pm models.PackageManager) *phaseReporter {
	return &phaseReporter{out: out, progress: progress, pm: pm}
}

// PhaseStarted implements project.Reporter.
func (r *phaseReporter) PhaseStarted(p project.Phase) {
	if p != project.PhaseInstall {
		return
	}
	r.spinner = r.progress.Spinner(fmt.Sprintf("%s with %s...", phaseLabels[p].running, r.pm))
}

// PhaseFinished implements project.Reporter.
func (r *phaseReporter) PhaseFinished(p project.Phase, err error) {
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
	if err != nil {
		_, _ = fmt.Fprintf(r.out, "%s %s failed\n", symError(), phaseLabels[p].running)
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", symSuccess(), phaseLabels[p].done)
}

// PhaseSkipped implements project.Reporter.
func (r *phaseReporter) PhaseSkipped(p project.Phase) {
	_, _ = fmt.Fprintf(r.out, "%s %s skipped\n", symSkipped(), phaseLabels[p].running)
}
