package project

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/forgekit/create-react-kit/pkg/models"
)

// maxStderrLines bounds how much package manager output ends up in an error.
const maxStderrLines = 20

// CommandRunner runs name with args in dir and returns its captured stderr.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) (stderr []byte, err error)

// Installer installs the dependencies declared in a project's manifest.
type Installer interface {
	// Install runs the package manager's install command with root as the
	// working directory and blocks until it exits. It is never retried.
	Install(ctx context.Context, root string, pm models.PackageManager) error
}

// commandInstaller is the concrete implementation of Installer.
type commandInstaller struct {
	run    CommandRunner
	logger *slog.Logger
}

// NewInstaller creates an Installer. A nil run executes real subprocesses.
func NewInstaller(run CommandRunner, logger *slog.Logger) Installer {
	if run == nil {
		run = execCommand
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &commandInstaller{run: run, logger: logger}
}

// Install implements Installer.
func (i *commandInstaller) Install(ctx context.Context, root string, pm models.PackageManager) error {
	command, err := pm.InstallCommand()
	if err != nil {
		return err
	}
	fields := strings.Fields(command)

	i.logger.Info("installing dependencies", "root", root, "command", command)

	stderr, err := i.run(ctx, root, fields[0], fields[1:]...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", command, ctxErr)
		}
		msg := tailLines(strings.TrimSpace(string(stderr)), maxStderrLines)
		if msg == "" {
			return fmt.Errorf("%w: %s: %w", ErrInstallFailed, command, err)
		}
		return fmt.Errorf("%w: %s: %w\n%s", ErrInstallFailed, command, err, msg)
	}

	i.logger.Info("dependencies installed", "command", command)
	return nil
}

// execCommand runs a subprocess with stdout discarded and stderr captured.
func execCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageManagerNotFound, name)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stderr.Bytes(), err
}

// tailLines keeps the last n lines of s.
func tailLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
