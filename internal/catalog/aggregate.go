package catalog

import "github.com/forgekit/create-react-kit/pkg/models"

// Aggregate flattens per-category picks into one selection. Categories are
// visited in declaration order and picks keep their order within a category.
// Duplicates keep their first position; empty categories contribute nothing.
func Aggregate(picks map[Category][]string) models.Selection {
	var ids []string
	for _, c := range categories {
		ids = append(ids, picks[c]...)
	}
	return models.NewSelection(ids...)
}
