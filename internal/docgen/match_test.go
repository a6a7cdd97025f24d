package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moduledocs/modlist/internal/catalog"
	"github.com/moduledocs/modlist/internal/graph"
)

var testCategories = []catalog.Category{
	{Caption: "Core", GroupID: "org.example.core"},
	{Caption: "Media", GroupID: "org.example.media"},
	{Caption: "Tests", GroupID: "org.example.tests"},
}

func TestMatch_AssignsBucketsByPrefix(t *testing.T) {
	buckets := Categorize([]*graph.Module{
		mod("org.example.core", "alpha", nil),
		mod("org.example.core.internal", "beta", nil),
		mod("org.example.media", "gamma", nil),
	})

	result := Match(buckets, testCategories)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "Core", result.Categories[0].Category.Caption)
	assert.Len(t, result.Categories[0].Modules, 2)
	assert.Equal(t, "Media", result.Categories[1].Category.Caption)
	assert.Len(t, result.Categories[1].Modules, 1)
	assert.Empty(t, result.Unmatched)
}

func TestMatch_EveryModuleInExactlyOnePlace(t *testing.T) {
	modules := []*graph.Module{
		mod("org.example.core", "alpha", nil),
		mod("org.example.media", "beta", nil),
		mod("com.thirdparty.widget", "gamma", nil),
	}

	result := Match(Categorize(modules), testCategories)

	seen := make(map[string]int)
	for _, cm := range result.Categories {
		for _, m := range cm.Modules {
			seen[m.ArtifactID]++
		}
	}
	for _, m := range result.Unmatched {
		seen[m.ArtifactID]++
	}

	for _, m := range modules {
		assert.Equal(t, 1, seen[m.ArtifactID], "module %s must appear exactly once", m.ArtifactID)
	}
}

func TestMatch_TestCategoriesClaimButNeverRender(t *testing.T) {
	buckets := Categorize([]*graph.Module{
		mod("org.example.tests", "test-suite", nil),
		mod("org.example.tests.integration", "it-suite", nil),
	})

	result := Match(buckets, testCategories)

	// Claimed by the tests category, so not unmatched; but no rendered
	// block may contain them either.
	assert.Empty(t, result.Unmatched)
	for _, cm := range result.Categories {
		assert.Empty(t, cm.Modules)
	}
}

func TestMatch_UnmatchedCollectsUnclaimedBuckets(t *testing.T) {
	buckets := Categorize([]*graph.Module{
		mod("com.thirdparty.widget", "widget", nil),
		mod("org.example.core", "alpha", nil),
		mod("net.unrelated", "stray", nil),
	})

	result := Match(buckets, testCategories)

	require.Len(t, result.Unmatched, 2)
	assert.Equal(t, "widget", result.Unmatched[0].ArtifactID)
	assert.Equal(t, "stray", result.Unmatched[1].ArtifactID)
}

func TestMatch_EmptyCategoriesStillListed(t *testing.T) {
	result := Match(Categorize(nil), testCategories)

	// Renderable categories are always present, in declared order.
	require.Len(t, result.Categories, 2)
	assert.Equal(t, "Core", result.Categories[0].Category.Caption)
	assert.Equal(t, "Media", result.Categories[1].Category.Caption)
}
