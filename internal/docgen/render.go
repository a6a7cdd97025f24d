package docgen

import (
	"sort"
	"strings"

	"github.com/moduledocs/modlist/internal/catalog"
	"github.com/moduledocs/modlist/internal/graph"
	"github.com/moduledocs/modlist/internal/templates"
)

// Renderer produces the text block for one category from a template set.
// Substituted values are inserted verbatim; see the templates package for
// the no-escaping contract.
type Renderer struct {
	set *templates.Set
}

// NewRenderer creates a renderer over the given template set.
func NewRenderer(set *templates.Set) *Renderer {
	return &Renderer{set: set}
}

// RenderCategory renders one category block: header, one row per module
// sorted by ascending artifact id, then footer.
//
// Aggregator placeholders (artifact id "project") are never rendered as
// rows; they exist only to shape the build tree.
func (r *Renderer) RenderCategory(caption, categoryID string, modules []*graph.Module) string {
	var b strings.Builder

	header := strings.ReplaceAll(r.set.TableHeader, templates.CaptionPlaceholder, caption)
	header = strings.ReplaceAll(header, templates.GroupIDPlaceholder, categoryID)
	b.WriteString(header)

	sorted := make([]*graph.Module, len(modules))
	copy(sorted, modules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArtifactID < sorted[j].ArtifactID
	})

	for _, m := range sorted {
		if m.ArtifactID == catalog.AggregatorArtifactID {
			continue
		}

		row := strings.ReplaceAll(r.set.TableRow, templates.NamePlaceholder, m.ArtifactID)
		row = strings.ReplaceAll(row, templates.DescriptionPlaceholder, m.Description)
		row = strings.ReplaceAll(row, templates.LinkPathPlaceholder, LinkPath(m)+m.ArtifactID)
		b.WriteString(row)
	}

	b.WriteString(r.set.TableFooter)
	return b.String()
}

// LinkPath computes the relative project-info path prefix for a module by
// walking its parent chain upward. Each parent contributes its artifact id
// and a slash; the walk stops at the root aggregator or when no parent
// remains. A direct child of the root yields the empty string.
func LinkPath(m *graph.Module) string {
	path := ""
	for parent := m.Parent; parent != nil; parent = parent.Parent {
		if catalog.IsRootAggregator(parent.GroupID, parent.ArtifactID) {
			break
		}
		path = parent.ArtifactID + "/" + path
	}
	return path
}
