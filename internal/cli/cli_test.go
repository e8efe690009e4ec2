package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forgekit/create-react-kit/internal/cli/wizard"
	"github.com/forgekit/create-react-kit/internal/config"
	"github.com/forgekit/create-react-kit/internal/core/project"
	"github.com/forgekit/create-react-kit/internal/ui"
	"github.com/forgekit/create-react-kit/pkg/models"
)

type fakeSpinner struct {
	title   string
	stopped int
}

func (s *fakeSpinner) Stop() { s.stopped++ }

type fakeProgress struct {
	spinners []*fakeSpinner
}

func (p *fakeProgress) Spinner(title string) ui.Spinner {
	s := &fakeSpinner{title: title}
	p.spinners = append(p.spinners, s)
	return s
}

type fakeInstaller struct {
	calls int
	err   error
}

func (f *fakeInstaller) Install(_ context.Context, _ string, _ models.PackageManager) error {
	f.calls++
	return f.err
}

func TestRenderKeyValueLines(t *testing.T) {
	out := renderKeyValueLines([]kvPair{{"a", "1"}, {"long key", "2"}})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"1", "2", "long key"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// values start at the same column
	if strings.Index(lines[0], "1") != strings.Index(lines[1], "2") {
		t.Errorf("values not aligned:\n%s", out)
	}
}

func TestErrorHint(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		empty bool
	}{
		{"target exists", fmt.Errorf("materialize: %w", project.ErrTargetExists), false},
		{"pm missing", fmt.Errorf("install: %w", project.ErrPackageManagerNotFound), false},
		{"install failed", fmt.Errorf("install: %w", project.ErrInstallFailed), false},
		{"other", errors.New("boom"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorHint(tt.err)
			if (got == "") != tt.empty {
				t.Errorf("errorHint(%v) = %q", tt.err, got)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, fmt.Errorf("prompt: %w", wizard.ErrCancelled))
	if !strings.Contains(buf.String(), "Cancelled") {
		t.Errorf("cancel output = %q", buf.String())
	}

	buf.Reset()
	printError(&buf, fmt.Errorf("materialize: %w", project.ErrTargetExists))
	out := buf.String()
	if !strings.Contains(out, "Could not create project") || !strings.Contains(out, "existing directory") {
		t.Errorf("error output = %q", out)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.NewDefaultConfig()
	newLogger(cfg, &buf).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("logger without level wrote %q", buf.String())
	}

	cfg.LogLevel = "debug"
	newLogger(cfg, &buf).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug logger output = %q", buf.String())
	}
}

func TestPhaseReporter(t *testing.T) {
	var buf bytes.Buffer
	progress := &fakeProgress{}
	r := newPhaseReporter(&buf, progress, models.PackageManagerPNPM)

	r.PhaseStarted(project.PhaseGenerate)
	r.PhaseFinished(project.PhaseGenerate, nil)
	if len(progress.spinners) != 0 {
		t.Fatalf("spinner started for generate phase")
	}

	r.PhaseStarted(project.PhaseInstall)
	if len(progress.spinners) != 1 {
		t.Fatalf("install phase started %d spinners, want 1", len(progress.spinners))
	}
	if title := progress.spinners[0].title; !strings.Contains(title, "pnpm") {
		t.Errorf("spinner title = %q, want package manager name", title)
	}
	r.PhaseFinished(project.PhaseInstall, errors.New("boom"))
	if progress.spinners[0].stopped != 1 {
		t.Errorf("spinner stopped %d times, want 1", progress.spinners[0].stopped)
	}

	r.PhaseSkipped(project.PhaseWire)

	out := buf.String()
	for _, want := range []string{
		phaseLabels[project.PhaseGenerate].done,
		phaseLabels[project.PhaseInstall].running + " failed",
		phaseLabels[project.PhaseWire].running + " skipped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTree(t *testing.T) {
	out, err := renderTree("demo", []string{"src", "src/components"}, []string{"src/main.tsx", "package.json"})
	if err != nil {
		t.Fatalf("renderTree: %v", err)
	}
	lines := strings.Split(out, "\n")
	if lines[0] != "demo" {
		t.Errorf("first line = %q, want root name", lines[0])
	}
	for _, want := range []string{"package.json", "components", "main.tsx"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "src\n"); n != 1 {
		t.Errorf("src listed %d times, want 1:\n%s", n, out)
	}
}

func TestNextStepsMarkdown(t *testing.T) {
	desc := models.ProjectDescriptor{Name: "demo", PackageManager: models.PackageManagerNPM}

	installed := nextStepsMarkdown(desc, true)
	if strings.Contains(installed, "npm install") {
		t.Errorf("install step listed after install:\n%s", installed)
	}
	if !strings.Contains(installed, "`npm run dev`") || !strings.Contains(installed, "`cd demo`") {
		t.Errorf("unexpected steps:\n%s", installed)
	}

	pending := nextStepsMarkdown(desc, false)
	if !strings.Contains(pending, "`npm install`") {
		t.Errorf("install step missing:\n%s", pending)
	}
}

func newTestDependencies(t *testing.T) *Dependencies {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.NoColor = true
	cfg.Defaults.ProjectName = "demo-app"
	cfg.Defaults.Libraries = []string{}

	d := NewDependencies(cfg)
	d.Headless.ForceHeadless(true)
	d.Progress = &fakeProgress{}
	return d
}

func TestCreateFlowHeadless(t *testing.T) {
	d := newTestDependencies(t)
	cwd := t.TempDir()
	inst := &fakeInstaller{}
	var out bytes.Buffer

	flow := &createFlow{deps: d, out: &out, cwd: cwd, installer: inst}
	if err := flow.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	root := filepath.Join(cwd, "demo-app")
	for _, f := range []string{"package.json", "index.html", "src/main.tsx", "README.md"} {
		if _, err := os.Stat(filepath.Join(root, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
	if inst.calls != 1 {
		t.Errorf("installer called %d times, want 1", inst.calls)
	}

	text := out.String()
	for _, want := range []string{"Created demo-app", "npm run dev", "package.json"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "npm install`") {
		t.Errorf("install listed as next step after successful install")
	}
}

func TestCreateFlowSkipInstall(t *testing.T) {
	d := newTestDependencies(t)
	d.Config.SkipInstall = true
	inst := &fakeInstaller{}
	var out bytes.Buffer

	flow := &createFlow{deps: d, out: &out, cwd: t.TempDir(), installer: inst}
	if err := flow.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if inst.calls != 0 {
		t.Errorf("installer called %d times with install skipped", inst.calls)
	}
	if !strings.Contains(out.String(), "npm install") {
		t.Errorf("next steps missing install command:\n%s", out.String())
	}
}

func TestCreateFlowTargetExists(t *testing.T) {
	d := newTestDependencies(t)
	cwd := t.TempDir()
	if err := os.Mkdir(filepath.Join(cwd, "demo-app"), 0o755); err != nil {
		t.Fatal(err)
	}

	flow := &createFlow{deps: d, out: &bytes.Buffer{}, cwd: cwd, installer: &fakeInstaller{}}
	err := flow.run(context.Background())
	if !errors.Is(err, project.ErrTargetExists) {
		t.Fatalf("run error = %v, want ErrTargetExists", err)
	}
}

func TestRootCommand_BrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("package_manager: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigFile, path)

	saved := deps
	t.Cleanup(func() {
		deps = saved
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	// a plain run loads the broken preferences
	deps = nil
	rootCmd.SetArgs([]string{})
	if err := rootCmd.Execute(); !errors.Is(err, config.ErrInvalidYAML) {
		t.Fatalf("Execute() error = %v, want ErrInvalidYAML", err)
	}

	// --version is answered before preferences load
	deps = nil
	out.Reset()
	rootCmd.SetArgs([]string{"--version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(--version) error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "create-react-kit ") {
		t.Errorf("version output = %q", out.String())
	}
	if deps != nil {
		t.Error("--version should not initialize dependencies")
	}
}
