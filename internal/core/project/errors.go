// Package project writes a generated React project to disk, installs its
// dependencies and wires the post-install integrations. It implements the
// side-effecting half of the create flow; everything it writes comes from
// internal/generator.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrTargetExists indicates the project directory is already present.
	// Nothing is written when this error is returned.
	ErrTargetExists = errors.New("project: target directory already exists")

	// ErrInvalidArtifactPath indicates an artifact path escapes the project root.
	ErrInvalidArtifactPath = errors.New("project: invalid artifact path")

	// ErrInstallFailed indicates the package manager exited with an error.
	ErrInstallFailed = errors.New("project: dependency install failed")

	// ErrPackageManagerNotFound indicates the package manager binary is not on PATH.
	ErrPackageManagerNotFound = errors.New("project: package manager not found")
)
