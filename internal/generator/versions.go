package generator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// checkVersionSpecs verifies that every version is LatestVersion or a
// valid semver range such as "^18.2.0".
func checkVersionSpecs(deps map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		spec := deps[name]
		if spec == LatestVersion {
			continue
		}
		if _, err := semver.NewConstraint(spec); err != nil {
			return fmt.Errorf("%w: %s@%s: %v", ErrInvalidVersionSpec, name, spec, err)
		}
	}
	return nil
}
