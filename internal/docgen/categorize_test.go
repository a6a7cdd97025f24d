package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moduledocs/modlist/internal/graph"
)

func mod(groupID, artifactID string, parent *graph.Module) *graph.Module {
	return &graph.Module{
		GroupID:     groupID,
		ArtifactID:  artifactID,
		Description: "description of " + artifactID,
		Parent:      parent,
	}
}

func TestCategorize_BucketsByGroupID(t *testing.T) {
	modules := []*graph.Module{
		mod("org.example.core", "alpha", nil),
		mod("org.example.media", "beta", nil),
		mod("org.example.core", "gamma", nil),
	}

	buckets := Categorize(modules)

	assert.Equal(t, 2, buckets.Len())
	assert.Len(t, buckets.Get("org.example.core"), 2)
	assert.Len(t, buckets.Get("org.example.media"), 1)
}

func TestCategorize_KeyOrderIsFirstEncounter(t *testing.T) {
	modules := []*graph.Module{
		mod("org.example.media", "beta", nil),
		mod("org.example.core", "alpha", nil),
		mod("org.example.media", "delta", nil),
		mod("org.example.ext", "epsilon", nil),
	}

	buckets := Categorize(modules)

	assert.Equal(t, []string{"org.example.media", "org.example.core", "org.example.ext"}, buckets.Keys())
}

func TestCategorize_ModulesKeepInputOrderWithinBucket(t *testing.T) {
	modules := []*graph.Module{
		mod("org.example.core", "zeta", nil),
		mod("org.example.core", "alpha", nil),
		mod("org.example.core", "mu", nil),
	}

	buckets := Categorize(modules)

	got := buckets.Get("org.example.core")
	assert.Equal(t, "zeta", got[0].ArtifactID)
	assert.Equal(t, "alpha", got[1].ArtifactID)
	assert.Equal(t, "mu", got[2].ArtifactID)
}

func TestCategorize_Empty(t *testing.T) {
	buckets := Categorize(nil)

	assert.Equal(t, 0, buckets.Len())
	assert.Empty(t, buckets.Keys())
}
