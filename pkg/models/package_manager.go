// @MX:NOTE: [AUTO] Supported package managers and their fixed install commands. internal/core/project runs the command.
package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPackageManager indicates a package manager outside the fixed table.
var ErrUnsupportedPackageManager = errors.New("models: unsupported package manager")

// PackageManager identifies the Node.js package manager used to install
// the generated project.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
	PackageManagerBun  PackageManager = "bun"
)

// ValidPackageManagers returns all supported package managers in prompt order.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM, PackageManagerBun}
}

// IsValid checks if the package manager is a supported value.
func (pm PackageManager) IsValid() bool {
	switch pm {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM, PackageManagerBun:
		return true
	}
	return false
}

// RunCommand returns the command prefix used to run a package.json script,
// e.g. "npm run" or "pnpm".
func (pm PackageManager) RunCommand() string {
	if pm == PackageManagerNPM {
		return "npm run"
	}
	return string(pm)
}

var installCommands = map[PackageManager]string{
	PackageManagerNPM:  "npm install",
	PackageManagerYarn: "yarn install",
	PackageManagerPNPM: "pnpm install",
	PackageManagerBun:  "bun install",
}

// InstallCommand returns the canonical "install all" command line.
func (pm PackageManager) InstallCommand() (string, error) {
	cmd, ok := installCommands[pm]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPackageManager, string(pm))
	}
	return cmd, nil
}
