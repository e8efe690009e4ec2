// Package defs holds file names, directory layout and permissions shared
// by the generator and the materializer.
package defs

import "os"

// Permissions for created directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
