package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moduledocs/modlist/internal/docgen"
	merrors "github.com/moduledocs/modlist/internal/errors"
	"github.com/moduledocs/modlist/internal/graph"
	"github.com/moduledocs/modlist/internal/output"
)

// NewGraphCmd creates the graph command group.
func NewGraphCmd(gc *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "graph",
		Short: "Inspect and compare build graphs",
	}

	c.AddCommand(newGraphShowCmd(gc))
	c.AddCommand(newGraphDiffCmd(gc))

	return c
}

// graphDoc is the serialized shape used for yaml/json graph output.
type graphDoc struct {
	Modules []graphDocModule `yaml:"modules" json:"modules"`
}

type graphDocModule struct {
	GroupID     string `yaml:"groupId" json:"groupId"`
	ArtifactID  string `yaml:"artifactId" json:"artifactId"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Parent      string `yaml:"parent,omitempty" json:"parent,omitempty"`
	LinkPath    string `yaml:"linkPath,omitempty" json:"linkPath,omitempty"`
}

// newGraphShowCmd creates the graph show command.
func newGraphShowCmd(gc *GlobalConfig) *cobra.Command {
	var (
		graphFlag  string
		formatFlag string
	)

	c := &cobra.Command{
		Use:   "show [path]",
		Short: "Show the build graph",
		Long: `Show the build graph as modlist sees it.

Reads the graph from a YAML manifest (--graph) or by scanning a Maven
reactor directory, and prints every module with its group id, parent and
computed link path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGraphShow(args, graphFlag, formatFlag)
		},
	}

	c.Flags().StringVarP(&graphFlag, "graph", "g", "", "Path to a graph manifest file")
	c.Flags().StringVarP(&formatFlag, "output", "o", "table",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return c
}

// runGraphShow executes the graph show command.
func runGraphShow(args []string, graphFlag, formatFlag string) error {
	format, valid := output.ParseFormat(formatFlag)
	if !valid {
		return merrors.NewExitError(
			fmt.Errorf("invalid output format %q (valid: %s)", formatFlag, strings.Join(output.ValidFormats(), ", ")),
			merrors.ExitGeneralError,
		)
	}

	g, err := loadGraph(context.Background(), graphFlag, args)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatTable:
		t := output.NewTable("ARTIFACT ID", "GROUP ID", "PARENT", "LINK PATH", "DESCRIPTION")
		for _, m := range g.Modules {
			parent := ""
			if m.Parent != nil {
				parent = m.Parent.ArtifactID
			}
			t.Row(m.ArtifactID, m.GroupID, parent, docgen.LinkPath(m), m.Description)
		}
		output.Println(t.String())
		output.Println(output.StyleDim.Render(fmt.Sprintf("%d modules", g.Len())))

	case output.FormatYAML:
		data, err := yaml.Marshal(toGraphDoc(g))
		if err != nil {
			return fmt.Errorf("marshaling graph: %w", err)
		}
		output.Print(string(data))

	case output.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toGraphDoc(g)); err != nil {
			return fmt.Errorf("marshaling graph: %w", err)
		}
	}

	return nil
}

// toGraphDoc converts a graph into its serialized shape.
func toGraphDoc(g *graph.Graph) graphDoc {
	doc := graphDoc{Modules: make([]graphDocModule, 0, g.Len())}
	for _, m := range g.Modules {
		entry := graphDocModule{
			GroupID:     m.GroupID,
			ArtifactID:  m.ArtifactID,
			Description: m.Description,
			LinkPath:    docgen.LinkPath(m),
		}
		if m.Parent != nil {
			entry.Parent = m.Parent.ArtifactID
		}
		doc.Modules = append(doc.Modules, entry)
	}
	return doc
}

// newGraphDiffCmd creates the graph diff command.
func newGraphDiffCmd(_ *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "diff <old-manifest> <new-manifest>",
		Short: "Compare two graph manifests",
		Long: `Compare two graph manifest files.

Prints module-level additions and removals, then a structural YAML diff
covering description edits and parent moves.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runGraphDiff(args[0], args[1])
		},
	}

	return c
}

// runGraphDiff executes the graph diff command.
func runGraphDiff(oldPath, newPath string) error {
	result, err := graph.DiffManifests(oldPath, newPath)
	if err != nil {
		return err
	}

	if result.IsEmpty() {
		output.Println(output.FormatCheckmark("no changes"))
		return nil
	}

	if len(result.Added) > 0 {
		output.Println(output.StyleAdded.Render("Added:"))
		for _, artifactID := range result.Added {
			output.Println("  + " + output.StyleAdded.Render(artifactID))
		}
	}

	if len(result.Removed) > 0 {
		output.Println(output.StyleRemoved.Render("Removed:"))
		for _, artifactID := range result.Removed {
			output.Println("  - " + output.StyleRemoved.Render(artifactID))
		}
	}

	if result.Report != "" {
		output.Println("")
		output.Println(result.Report)
	}

	output.Println("")
	output.Println(output.StyleSummary.Render(result.Summary()))

	return nil
}
