package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_DeclaredOrderIsStable(t *testing.T) {
	cats := Categories()

	require.NotEmpty(t, cats)
	assert.Equal(t, "Jersey Core", cats[0].Caption)
	assert.Equal(t, "org.glassfish.jersey.core", cats[0].GroupID)
	assert.Equal(t, "org.glassfish.jersey.tests", cats[len(cats)-1].GroupID)
}

func TestCategories_ReturnsACopy(t *testing.T) {
	first := Categories()
	first[0].Caption = "mutated"

	assert.Equal(t, "Jersey Core", Categories()[0].Caption)
}

func TestCategory_Skipped(t *testing.T) {
	assert.True(t, Category{GroupID: "org.glassfish.jersey.tests"}.Skipped())
	assert.False(t, Category{GroupID: "org.glassfish.jersey.test-framework"}.Skipped())
	assert.False(t, Category{GroupID: "org.glassfish.jersey.core"}.Skipped())
}

func TestCategories_ExactlyOneSkipped(t *testing.T) {
	skipped := 0
	for _, c := range Categories() {
		if c.Skipped() {
			skipped++
		}
		assert.True(t, strings.HasPrefix(c.GroupID, RootGroupID+"."),
			"every category prefix extends the root group id")
	}
	assert.Equal(t, 1, skipped)
}

func TestIsRootAggregator(t *testing.T) {
	assert.True(t, IsRootAggregator(RootGroupID, AggregatorArtifactID))
	assert.False(t, IsRootAggregator(RootGroupID, "jersey-common"))
	assert.False(t, IsRootAggregator("org.glassfish.jersey.core", AggregatorArtifactID))
}
