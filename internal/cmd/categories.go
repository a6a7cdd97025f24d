package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moduledocs/modlist/internal/catalog"
	"github.com/moduledocs/modlist/internal/output"
)

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the fixed documentation categories",
		Long: `List the fixed documentation categories in rendered document order.

The category set is compiled into the tool; modules are assigned by
group-id prefix match. Categories marked "skipped" claim their modules
for bookkeeping but are never rendered.`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}
}

func runCategories(_ *cobra.Command, _ []string) error {
	t := output.NewTable("CAPTION", "GROUP ID PREFIX", "RENDERED")

	for _, c := range catalog.Categories() {
		rendered := "yes"
		if c.Skipped() {
			rendered = "skipped"
		}
		t.Row(c.Caption, c.GroupID, rendered)
	}

	output.Println(t.String())
	output.Println(output.StyleDim.Render(
		fmt.Sprintf("root aggregator: %s:%s", catalog.RootGroupID, catalog.AggregatorArtifactID)))

	return nil
}
