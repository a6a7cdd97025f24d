// Package graph models the build dependency graph the generator consumes.
//
// The graph is externally owned: providers in this package read it from a
// YAML manifest or recover it from a Maven reactor on disk, and the
// generator treats the resulting modules as read-only.
package graph

// Module is one build module of a multi-module project.
// Identity within a build is the artifact id.
type Module struct {
	// GroupID is the hierarchical namespace identifier, e.g.
	// "org.glassfish.jersey.core".
	GroupID string

	// ArtifactID is the leaf component name, e.g. "jersey-common".
	ArtifactID string

	// Description is free-form text rendered into the module table.
	Description string

	// Parent points at the aggregator module that declared this module,
	// or nil for the root.
	Parent *Module
}

// Graph is the flattened list of modules reachable from a root module,
// in provider order.
type Graph struct {
	Modules []*Module
}

// Lookup returns the module with the given artifact id, or nil.
func (g *Graph) Lookup(artifactID string) *Module {
	for _, m := range g.Modules {
		if m.ArtifactID == artifactID {
			return m
		}
	}
	return nil
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.Modules)
}
