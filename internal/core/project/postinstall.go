package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/forgekit/create-react-kit/internal/generator"
	"github.com/forgekit/create-react-kit/pkg/models"
)

// PostInstaller writes integration files once dependencies are installed.
type PostInstaller interface {
	// Wire writes the artifacts of every selected integration under root
	// and returns the written paths in order. The first failed write stops
	// wiring; files already written stay.
	Wire(ctx context.Context, root string, desc models.ProjectDescriptor) ([]string, error)
}

// integrationWirer is the concrete implementation of PostInstaller.
type integrationWirer struct {
	logger *slog.Logger
}

// NewPostInstaller creates a PostInstaller.
func NewPostInstaller(logger *slog.Logger) PostInstaller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &integrationWirer{logger: logger}
}

// Wire implements PostInstaller.
func (w *integrationWirer) Wire(ctx context.Context, root string, desc models.ProjectDescriptor) ([]string, error) {
	integrations, err := generator.Integrations(desc.Selection)
	if err != nil {
		return nil, err
	}

	root = filepath.Clean(root)
	var written []string
	for _, in := range integrations {
		for _, a := range in.Artifacts {
			if err := ctx.Err(); err != nil {
				return written, err
			}
			if err := writeArtifact(root, a); err != nil {
				return written, fmt.Errorf("wire %s: %w", in.ID, err)
			}
			written = append(written, a.Path)
		}
		w.logger.Info("integration wired", "id", in.ID, "files", len(in.Artifacts))
	}
	return written, nil
}
