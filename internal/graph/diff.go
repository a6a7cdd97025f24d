package graph

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffResult represents a diff between two graph manifests.
type DiffResult struct {
	// Added holds artifact ids present only in the new manifest.
	Added []string

	// Removed holds artifact ids present only in the old manifest.
	Removed []string

	// Report is the rendered structural diff of the two manifests,
	// empty when the documents are identical.
	Report string
}

// IsEmpty returns true if there are no changes.
func (r *DiffResult) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && r.Report == ""
}

// Summary returns a summary string of changes.
func (r *DiffResult) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 2)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(parts) == 0 {
		return "modules changed in place"
	}
	return strings.Join(parts, ", ")
}

// DiffManifests compares two graph manifest files.
//
// Module-level additions and removals are computed from the parsed graphs;
// the full structural diff (description edits, parent moves) comes from a
// YAML-aware comparison of the raw documents.
func DiffManifests(oldPath, newPath string) (*DiffResult, error) {
	oldGraph, err := LoadManifest(oldPath)
	if err != nil {
		return nil, err
	}
	newGraph, err := LoadManifest(newPath)
	if err != nil {
		return nil, err
	}

	result := &DiffResult{}

	oldByArtifact := make(map[string]*Module, oldGraph.Len())
	for _, m := range oldGraph.Modules {
		oldByArtifact[m.ArtifactID] = m
	}
	newByArtifact := make(map[string]*Module, newGraph.Len())
	for _, m := range newGraph.Modules {
		newByArtifact[m.ArtifactID] = m
	}

	for _, m := range newGraph.Modules {
		if _, ok := oldByArtifact[m.ArtifactID]; !ok {
			result.Added = append(result.Added, m.ArtifactID)
		}
	}
	for _, m := range oldGraph.Modules {
		if _, ok := newByArtifact[m.ArtifactID]; !ok {
			result.Removed = append(result.Removed, m.ArtifactID)
		}
	}

	report, err := diffYAMLFiles(oldPath, newPath)
	if err != nil {
		return nil, err
	}
	result.Report = report

	return result, nil
}

// diffYAMLFiles computes a YAML-aware diff of two files using dyff.
// Returns empty string if no differences.
func diffYAMLFiles(oldPath, newPath string) (string, error) {
	oldInput, err := ytbx.LoadFile(oldPath)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", oldPath, err)
	}

	newInput, err := ytbx.LoadFile(newPath)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", newPath, err)
	}

	report, err := dyff.CompareInputFiles(oldInput, newInput)
	if err != nil {
		return "", fmt.Errorf("comparing manifests: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report)
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	result := buf.String()

	// Trim trailing whitespace per line for stable output
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
