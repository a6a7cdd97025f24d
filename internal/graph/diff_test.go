package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNamedManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiffManifests_Identical(t *testing.T) {
	dir := t.TempDir()
	content := `
modules:
  - {groupId: org.example.core, artifactId: alpha}
`
	oldPath := writeNamedManifest(t, dir, "old.yaml", content)
	newPath := writeNamedManifest(t, dir, "new.yaml", content)

	result, err := DiffManifests(oldPath, newPath)
	require.NoError(t, err)

	assert.True(t, result.IsEmpty())
	assert.Equal(t, "No changes", result.Summary())
}

func TestDiffManifests_AddedAndRemoved(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeNamedManifest(t, dir, "old.yaml", `
modules:
  - {groupId: org.example.core, artifactId: alpha}
  - {groupId: org.example.core, artifactId: beta}
`)
	newPath := writeNamedManifest(t, dir, "new.yaml", `
modules:
  - {groupId: org.example.core, artifactId: alpha}
  - {groupId: org.example.media, artifactId: gamma}
`)

	result, err := DiffManifests(oldPath, newPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"gamma"}, result.Added)
	assert.Equal(t, []string{"beta"}, result.Removed)
	assert.False(t, result.IsEmpty())
	assert.Equal(t, "1 added, 1 removed", result.Summary())
	assert.NotEmpty(t, result.Report)
}

func TestDiffManifests_DescriptionEdit(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeNamedManifest(t, dir, "old.yaml", `
modules:
  - {groupId: org.example.core, artifactId: alpha, description: old words}
`)
	newPath := writeNamedManifest(t, dir, "new.yaml", `
modules:
  - {groupId: org.example.core, artifactId: alpha, description: new words}
`)

	result, err := DiffManifests(oldPath, newPath)
	require.NoError(t, err)

	// No module-level changes, but the structural report catches the edit.
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	assert.NotEmpty(t, result.Report)
	assert.False(t, result.IsEmpty())
}

func TestDiffManifests_MissingFile(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeNamedManifest(t, dir, "old.yaml", `
modules:
  - {groupId: g, artifactId: a}
`)

	_, err := DiffManifests(oldPath, filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}
