package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/forgekit/create-react-kit/internal/defs"
	"github.com/forgekit/create-react-kit/internal/generator"
)

// Result summarizes what the materializer put on disk. Paths are relative
// to Root and use forward slashes.
type Result struct {
	Root         string
	CreatedDirs  []string
	CreatedFiles []string
}

// Materializer writes generated artifacts into a fresh project directory.
type Materializer interface {
	// Materialize creates root, the source skeleton and every artifact.
	// It fails with ErrTargetExists, before touching the disk, when root
	// already exists. Partial output is left in place on later failures.
	Materialize(ctx context.Context, root string, artifacts []generator.Artifact) (*Result, error)
}

// fsMaterializer is the concrete implementation of Materializer.
type fsMaterializer struct {
	logger *slog.Logger
}

// NewMaterializer creates a Materializer that writes to the local filesystem.
func NewMaterializer(logger *slog.Logger) Materializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fsMaterializer{logger: logger}
}

// @MX:ANCHOR: [AUTO] Single write path for create-time artifacts.
// @MX:REASON: [AUTO] The existence check must run before any mkdir so a rejected target stays untouched.
func (m *fsMaterializer) Materialize(ctx context.Context, root string, artifacts []generator.Artifact) (*Result, error) {
	root = filepath.Clean(root)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkTargetAbsent(root); err != nil {
		return nil, err
	}

	m.logger.Info("materializing project", "root", root, "artifacts", len(artifacts))

	result := &Result{Root: root}

	for _, dir := range defs.SkeletonDirs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		rel := path.Join(defs.SrcDir, dir)
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), defs.DirPerm); err != nil {
			return result, fmt.Errorf("mkdir %s: %w", rel, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, rel)
	}

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := writeArtifact(root, a); err != nil {
			return result, err
		}
		result.CreatedFiles = append(result.CreatedFiles, a.Path)
		m.logger.Debug("wrote artifact", "path", a.Path, "bytes", len(a.Content))
	}

	m.logger.Info("project materialized",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// checkTargetAbsent returns ErrTargetExists when anything, including a
// dangling symlink, is present at root.
func checkTargetAbsent(root string) error {
	_, err := os.Lstat(root)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrTargetExists, root)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("stat %s: %w", root, err)
	}
}

// writeArtifact writes a under root, creating parent directories.
func writeArtifact(root string, a generator.Artifact) error {
	rel := filepath.FromSlash(a.Path)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("%w: %q", ErrInvalidArtifactPath, a.Path)
	}

	target := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(target), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir for %s: %w", a.Path, err)
	}
	if err := os.WriteFile(target, a.Content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", a.Path, err)
	}
	return nil
}
