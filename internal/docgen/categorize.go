// Package docgen turns a build graph into the rendered module-list document.
//
// The pipeline is linear: Categorize → Match → render per category →
// Assemble → write. Each stage is a pure function over the previous one;
// the only I/O happens at the edges (template loading lives in the
// templates package, the final write in WriteDocument).
package docgen

import (
	"github.com/moduledocs/modlist/internal/graph"
)

// Buckets maps raw group ids to the modules sharing them. Key order is
// first-encounter order and module order within a bucket is input order;
// Go maps do not preserve either, so the keys are tracked separately.
type Buckets struct {
	keys    []string
	byGroup map[string][]*graph.Module
}

// Categorize groups modules by their raw group id in a single pass.
func Categorize(modules []*graph.Module) *Buckets {
	b := &Buckets{
		byGroup: make(map[string][]*graph.Module),
	}

	for _, m := range modules {
		if _, ok := b.byGroup[m.GroupID]; !ok {
			b.keys = append(b.keys, m.GroupID)
		}
		b.byGroup[m.GroupID] = append(b.byGroup[m.GroupID], m)
	}

	return b
}

// Keys returns the bucket keys in first-encounter order.
func (b *Buckets) Keys() []string {
	return b.keys
}

// Get returns the modules bucketed under the given group id.
func (b *Buckets) Get(groupID string) []*graph.Module {
	return b.byGroup[groupID]
}

// Len returns the number of buckets.
func (b *Buckets) Len() int {
	return len(b.keys)
}
