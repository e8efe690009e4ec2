package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forgekit/create-react-kit/internal/cli/wizard"
	"github.com/forgekit/create-react-kit/internal/core/project"
	"github.com/forgekit/create-react-kit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "create-react-kit",
	Short: "Scaffold a React + TypeScript + Vite project",
	Long: `create-react-kit asks for a project name, a package manager and the
libraries you want, then writes a ready-to-run React + TypeScript + Vite
project into a new directory, installs its dependencies and wires the
selected integrations.

Preferences are read from $XDG_CONFIG_HOME/create-react-kit/config.yaml and
CRK_* environment variables. Without a terminal the configured defaults are
used instead of prompts.`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Runs after flag parsing; --help and --version never load preferences.
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if deps != nil {
			return nil
		}
		return InitDependencies()
	},
	RunE: runCreate,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the create-react-kit CLI
// @MX:REASON: [AUTO] Called from cmd/create-react-kit/main.go; prints every fatal error exactly once.
// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("create-react-kit %s\n", version.GetFullVersion()))
}

// printError reports err on w. Cancellation is reported quietly.
func printError(w io.Writer, err error) {
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(w, cliMuted.Render("Cancelled. No files were written."))
		return
	}
	_, _ = fmt.Fprintln(w, renderErrorCard("Could not create project", err))
	if hint := errorHint(err); hint != "" {
		_, _ = fmt.Fprintln(w, cliMuted.Render(hint))
	}
}

// errorHint suggests a way out of well-known failures.
func errorHint(err error) string {
	switch {
	case errors.Is(err, project.ErrTargetExists):
		return "Choose another project name or remove the existing directory."
	case errors.Is(err, project.ErrPackageManagerNotFound):
		return "Install the package manager or pick another one."
	case errors.Is(err, project.ErrInstallFailed):
		return "The project files were written; run the install command inside the project to retry."
	default:
		return ""
	}
}
