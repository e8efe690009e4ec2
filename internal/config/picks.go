package config

import (
	"slices"

	"github.com/forgekit/create-react-kit/internal/catalog"
)

// DefaultPicks returns the pre-selected identifiers for c: the configured
// libraries of that category when defaults.libraries is set, the catalog
// defaults otherwise.
func (c *Config) DefaultPicks(cat catalog.Category) []string {
	if c.Defaults.Libraries == nil {
		return catalog.Defaults(cat)
	}
	var ids []string
	for _, lib := range catalog.ByCategory(cat) {
		if slices.Contains(c.Defaults.Libraries, lib.ID) {
			ids = append(ids, lib.ID)
		}
	}
	return ids
}
