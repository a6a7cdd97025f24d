// Package catalog declares the fixed documentation categories.
//
// The category set is a closed, ordered list known at compile time. It is
// deliberately not a registry: adding a category means editing this file,
// which keeps the rendered document order a reviewable fact of the source.
package catalog

import "strings"

// Reserved module identifiers.
const (
	// AggregatorArtifactID is the artifact id used by parent aggregator
	// poms. Modules with this artifact id are never rendered as rows.
	AggregatorArtifactID = "project"

	// RootGroupID is the group id of the root aggregator. The pair
	// (RootGroupID, AggregatorArtifactID) marks the top of every parent
	// chain and is excluded from link-path construction.
	RootGroupID = "org.glassfish.jersey"
)

// Identifiers of the synthetic category for unmatched modules.
const (
	// OtherCaption is the caption of the unmatched-modules category.
	OtherCaption = "Other"

	// OtherID is the category id of the unmatched-modules category.
	OtherID = "other"
)

// Category is one documentation grouping bucket keyed by group-id prefix.
type Category struct {
	// Caption is the human-readable heading rendered for the category.
	Caption string

	// GroupID is the group-id prefix that assigns modules to the category.
	// It doubles as the category's identifier in rendered element ids.
	GroupID string
}

// Skipped reports whether the category is recognized for bookkeeping but
// never rendered. Test modules are documented elsewhere.
func (c Category) Skipped() bool {
	return strings.Contains(c.GroupID, "tests")
}

// categories is the fixed category list in rendered document order.
var categories = []Category{
	{Caption: "Jersey Core", GroupID: "org.glassfish.jersey.core"},
	{Caption: "Jersey Containers", GroupID: "org.glassfish.jersey.containers"},
	{Caption: "Jersey Connectors", GroupID: "org.glassfish.jersey.connectors"},
	{Caption: "Jersey Media", GroupID: "org.glassfish.jersey.media"},
	{Caption: "Jersey Extensions", GroupID: "org.glassfish.jersey.ext"},
	{Caption: "Security", GroupID: "org.glassfish.jersey.security"},
	{Caption: "Jersey Test Framework", GroupID: "org.glassfish.jersey.test-framework"},
	{Caption: "Jersey Incubator", GroupID: "org.glassfish.jersey.incubator"},
	{Caption: "Jersey Examples", GroupID: "org.glassfish.jersey.examples"},
	{Caption: "Jersey Tests", GroupID: "org.glassfish.jersey.tests"},
}

// Categories returns the fixed category list in declared order.
// The returned slice is a copy; callers may not mutate the catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsRootAggregator reports whether the given coordinates identify the root
// aggregator module.
func IsRootAggregator(groupID, artifactID string) bool {
	return groupID == RootGroupID && artifactID == AggregatorArtifactID
}
