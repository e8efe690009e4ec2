package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgekit/create-react-kit/internal/cli/wizard"
	"github.com/forgekit/create-react-kit/internal/core/project"
	"github.com/forgekit/create-react-kit/pkg/version"
)

// createFlow runs prompts, the project pipeline and the summary.
type createFlow struct {
	deps      *Dependencies
	out       io.Writer
	cwd       string
	installer project.Installer // nil uses the real package manager
}

func runCreate(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	flow := &createFlow{deps: deps, out: cmd.OutOrStdout(), cwd: cwd}
	return flow.run(ctx)
}

// run asks the questions, creates the project in cwd/<name> and prints
// the summary.
func (f *createFlow) run(ctx context.Context) error {
	headless := f.deps.Headless.IsHeadless()
	if !headless {
		PrintBanner(f.out, version.GetVersion())
	}

	questions := wizard.DefaultQuestions(f.deps.Config)
	var (
		answers *wizard.WizardResult
		err     error
	)
	if headless {
		answers, err = wizard.RunHeadless(questions)
	} else {
		answers, err = wizard.Run(ctx, questions)
	}
	if err != nil {
		return err
	}

	desc := answers.Descriptor()
	root := filepath.Join(f.cwd, desc.Name)

	f.deps.Logger.Info("creating project",
		"name", desc.Name,
		"packageManager", desc.PackageManager,
		"libraries", len(desc.Selection),
	)
	_, _ = fmt.Fprintf(f.out, "\n%s Creating %s in %s\n", symProgress(), cliPrimary.Render(desc.Name), root)

	executor, err := project.NewExecutor(project.ExecutorOptions{
		Installer:   f.installer,
		Reporter:    newPhaseReporter(f.out, f.deps.Progress, desc.PackageManager),
		SkipInstall: f.deps.Config.SkipInstall,
		Logger:      f.deps.Logger,
	})
	if err != nil {
		return err
	}

	outcome, err := executor.Execute(ctx, desc, root)
	if err != nil {
		return err
	}

	summary, err := renderSummary(desc, outcome, headless || f.deps.Theme.NoColor)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.out)
	_, _ = fmt.Fprint(f.out, summary)
	return nil
}
