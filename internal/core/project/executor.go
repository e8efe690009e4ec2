package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/forgekit/create-react-kit/internal/generator"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// Phase names one step of the create pipeline.
type Phase string

// Pipeline phases in execution order.
const (
	PhaseGenerate    Phase = "generate"
	PhaseMaterialize Phase = "materialize"
	PhaseInstall     Phase = "install"
	PhaseWire        Phase = "wire"
)

// Phases returns the pipeline phases in execution order.
func Phases() []Phase {
	return []Phase{PhaseGenerate, PhaseMaterialize, PhaseInstall, PhaseWire}
}

// Reporter observes pipeline progress. Every started phase is finished
// exactly once; err is nil on success.
type Reporter interface {
	PhaseStarted(p Phase)
	PhaseFinished(p Phase, err error)
	PhaseSkipped(p Phase)
}

// nopReporter discards all progress events.
type nopReporter struct{}

func (nopReporter) PhaseStarted(Phase)         {}
func (nopReporter) PhaseFinished(Phase, error) {}
func (nopReporter) PhaseSkipped(Phase)         {}

// Outcome summarizes a completed pipeline run.
type Outcome struct {
	*Result
	WiredFiles []string
	Installed  bool
}

// ExecutorOptions configures an Executor. Nil collaborators get the
// default implementations.
type ExecutorOptions struct {
	Generator     *generator.Generator
	Materializer  Materializer
	Installer     Installer
	PostInstaller PostInstaller
	Reporter      Reporter
	SkipInstall   bool
	Logger        *slog.Logger
}

// Executor runs generate, materialize, install and wire in order.
type Executor struct {
	gen         *generator.Generator
	mat         Materializer
	inst        Installer
	post        PostInstaller
	reporter    Reporter
	skipInstall bool
	logger      *slog.Logger
}

// NewExecutor creates an Executor from opts.
func NewExecutor(opts ExecutorOptions) (*Executor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Executor{
		gen:         opts.Generator,
		mat:         opts.Materializer,
		inst:        opts.Installer,
		post:        opts.PostInstaller,
		reporter:    opts.Reporter,
		skipInstall: opts.SkipInstall,
		logger:      logger,
	}
	if e.gen == nil {
		g, err := generator.New()
		if err != nil {
			return nil, err
		}
		e.gen = g
	}
	if e.mat == nil {
		e.mat = NewMaterializer(logger)
	}
	if e.inst == nil {
		e.inst = NewInstaller(nil, logger)
	}
	if e.post == nil {
		e.post = NewPostInstaller(logger)
	}
	if e.reporter == nil {
		e.reporter = nopReporter{}
	}
	return e, nil
}

// Execute creates the project described by desc at root. The descriptor
// is validated first; the first failing phase stops the pipeline and its
// error is returned wrapped with the phase name.
func (e *Executor) Execute(ctx context.Context, desc models.ProjectDescriptor, root string) (*Outcome, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	var artifacts []generator.Artifact
	err := e.phase(PhaseGenerate, func() error {
		var err error
		artifacts, err = e.gen.Generate(desc)
		return err
	})
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{}
	err = e.phase(PhaseMaterialize, func() error {
		var err error
		outcome.Result, err = e.mat.Materialize(ctx, root, artifacts)
		return err
	})
	if err != nil {
		return outcome, err
	}

	if e.skipInstall {
		e.logger.Info("dependency install skipped")
		e.reporter.PhaseSkipped(PhaseInstall)
	} else {
		err = e.phase(PhaseInstall, func() error {
			return e.inst.Install(ctx, root, desc.PackageManager)
		})
		if err != nil {
			return outcome, err
		}
		outcome.Installed = true
	}

	err = e.phase(PhaseWire, func() error {
		var err error
		outcome.WiredFiles, err = e.post.Wire(ctx, root, desc)
		return err
	})
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}

// phase runs fn between reporter events and wraps its error.
func (e *Executor) phase(p Phase, fn func() error) error {
	e.reporter.PhaseStarted(p)
	err := fn()
	if err != nil {
		err = fmt.Errorf("%s: %w", p, err)
	}
	e.reporter.PhaseFinished(p, err)
	return err
}
