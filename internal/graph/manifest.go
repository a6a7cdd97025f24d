package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	merrors "github.com/moduledocs/modlist/internal/errors"
)

// manifestFile is the on-disk shape of a graph manifest.
type manifestFile struct {
	Modules []manifestModule `yaml:"modules"`
}

// manifestModule is one module entry in a graph manifest.
type manifestModule struct {
	GroupID     string `yaml:"groupId"`
	ArtifactID  string `yaml:"artifactId"`
	Description string `yaml:"description,omitempty"`

	// Parent references the declaring aggregator by artifact id.
	Parent string `yaml:"parent,omitempty"`
}

// LoadManifest loads a build graph from a YAML manifest file.
//
// Manifest format:
//
//	modules:
//	  - groupId: org.glassfish.jersey.core
//	    artifactId: jersey-common
//	    description: Jersey core common packages
//	    parent: core
//
// Parent references are resolved by artifact id after all entries are read.
// Duplicate artifact ids and dangling parent references are load errors.
func LoadManifest(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("graph manifest %s: %w", path, merrors.ErrNotFound)
		}
		return nil, fmt.Errorf("reading graph manifest %s: %w", path, err)
	}

	var mf manifestFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing graph manifest %s: %w: %v", path, merrors.ErrGraph, err)
	}

	if len(mf.Modules) == 0 {
		return nil, fmt.Errorf("graph manifest %s declares no modules: %w", path, merrors.ErrGraph)
	}

	g := &Graph{Modules: make([]*Module, 0, len(mf.Modules))}
	byArtifact := make(map[string]*Module, len(mf.Modules))

	for _, entry := range mf.Modules {
		if entry.ArtifactID == "" {
			return nil, fmt.Errorf("graph manifest %s: module with empty artifactId: %w", path, merrors.ErrGraph)
		}
		if _, dup := byArtifact[entry.ArtifactID]; dup {
			return nil, fmt.Errorf("graph manifest %s: duplicate artifactId %q: %w", path, entry.ArtifactID, merrors.ErrGraph)
		}

		m := &Module{
			GroupID:     entry.GroupID,
			ArtifactID:  entry.ArtifactID,
			Description: entry.Description,
		}
		byArtifact[entry.ArtifactID] = m
		g.Modules = append(g.Modules, m)
	}

	// Second pass: link parents once every module exists.
	for i, entry := range mf.Modules {
		if entry.Parent == "" {
			continue
		}
		parent, ok := byArtifact[entry.Parent]
		if !ok {
			return nil, fmt.Errorf("graph manifest %s: module %q references unknown parent %q: %w",
				path, entry.ArtifactID, entry.Parent, merrors.ErrGraph)
		}
		g.Modules[i].Parent = parent
	}

	// Parent chains must terminate at a root; the link-path walk relies
	// on it. A self-parent is the degenerate cycle.
	for _, m := range g.Modules {
		seen := make(map[*Module]bool, 4)
		for p := m.Parent; p != nil; p = p.Parent {
			if seen[p] {
				return nil, fmt.Errorf("graph manifest %s: module %q has a cyclic parent chain: %w",
					path, m.ArtifactID, merrors.ErrGraph)
			}
			seen[p] = true
		}
	}

	return g, nil
}
