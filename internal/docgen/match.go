package docgen

import (
	"strings"

	"github.com/moduledocs/modlist/internal/catalog"
	"github.com/moduledocs/modlist/internal/graph"
)

// CategoryModules pairs one renderable category with its matched modules.
type CategoryModules struct {
	Category catalog.Category
	Modules  []*graph.Module
}

// MatchResult is the outcome of assigning buckets to the fixed categories.
type MatchResult struct {
	// Categories holds the renderable categories in declared catalog
	// order, each with every module whose group id starts with the
	// category prefix. Skipped (test) categories are not included.
	Categories []CategoryModules

	// Unmatched holds modules from buckets no category claimed,
	// in bucket order.
	Unmatched []*graph.Module
}

// Match assigns categorized buckets to the fixed categories.
//
// Categories are iterated in declared order; a bucket belongs to a
// category when its key starts with the category's group-id prefix. A
// bucket may feed several overlapping categories, but every claimed key is
// marked used so it never shows up as unmatched. Test categories claim
// their buckets without producing a renderable entry.
func Match(buckets *Buckets, categories []catalog.Category) *MatchResult {
	result := &MatchResult{}
	used := make(map[string]bool)

	for _, category := range categories {
		used[category.GroupID] = true

		var matched []*graph.Module
		for _, key := range buckets.Keys() {
			if strings.HasPrefix(key, category.GroupID) {
				used[key] = true
				matched = append(matched, buckets.Get(key)...)
			}
		}

		if category.Skipped() {
			continue
		}

		result.Categories = append(result.Categories, CategoryModules{
			Category: category,
			Modules:  matched,
		})
	}

	for _, key := range buckets.Keys() {
		if !used[key] {
			result.Unmatched = append(result.Unmatched, buckets.Get(key)...)
		}
	}

	return result
}
