package graph

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	merrors "github.com/moduledocs/modlist/internal/errors"
)

// pomProject is the subset of a pom.xml the scanner cares about.
type pomProject struct {
	XMLName     xml.Name  `xml:"project"`
	GroupID     string    `xml:"groupId"`
	ArtifactID  string    `xml:"artifactId"`
	Description string    `xml:"description"`
	Parent      pomParent `xml:"parent"`
	Modules     []string  `xml:"modules>module"`
}

// pomParent is the <parent> element of a pom.xml.
type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// ScanReactor recovers a build graph from a Maven reactor on disk.
//
// The pom.xml at root is the root aggregator; its <modules> entries are
// followed recursively, each entry naming a subdirectory containing its own
// pom.xml. Parent links follow the aggregator chain, which mirrors the
// directory nesting used for link-path construction. A module without its
// own <groupId> inherits the group id of its declaring aggregator.
func ScanReactor(root string) (*Graph, error) {
	g := &Graph{}
	if err := scanDir(root, nil, g, make(map[string]bool)); err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("no modules found under %s: %w", root, merrors.ErrGraph)
	}
	return g, nil
}

// scanDir parses dir/pom.xml, appends its module, and recurses into the
// declared child modules. Visited directories are tracked by canonical
// path; a <modules> entry that resolves back to an already-scanned
// directory (".", "..", a symlink loop) is a graph error, not unbounded
// recursion.
func scanDir(dir string, parent *Module, g *Graph, visited map[string]bool) error {
	key, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(key); err == nil {
		key = resolved
	}
	if visited[key] {
		return fmt.Errorf("module directory %s declared more than once; aggregator cycle: %w",
			dir, merrors.ErrGraph)
	}
	visited[key] = true

	pomPath := filepath.Join(dir, "pom.xml")

	data, err := os.ReadFile(pomPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", pomPath, merrors.ErrNotFound)
		}
		return fmt.Errorf("reading %s: %w", pomPath, err)
	}

	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return fmt.Errorf("parsing %s: %w: %v", pomPath, merrors.ErrGraph, err)
	}

	if pom.ArtifactID == "" {
		return fmt.Errorf("%s: missing artifactId: %w", pomPath, merrors.ErrGraph)
	}

	groupID := pom.GroupID
	if groupID == "" {
		// Maven inheritance: group id defaults to the parent's.
		if pom.Parent.GroupID != "" {
			groupID = pom.Parent.GroupID
		} else if parent != nil {
			groupID = parent.GroupID
		}
	}

	m := &Module{
		GroupID:     groupID,
		ArtifactID:  pom.ArtifactID,
		Description: pom.Description,
		Parent:      parent,
	}
	g.Modules = append(g.Modules, m)

	for _, child := range pom.Modules {
		if err := scanDir(filepath.Join(dir, child), m, g, visited); err != nil {
			return err
		}
	}

	return nil
}
