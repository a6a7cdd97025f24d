package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moduledocs/modlist/internal/config"
	"github.com/moduledocs/modlist/internal/docgen"
	merrors "github.com/moduledocs/modlist/internal/errors"
	"github.com/moduledocs/modlist/internal/graph"
	"github.com/moduledocs/modlist/internal/output"
	"github.com/moduledocs/modlist/internal/templates"
)

// templateFlags holds the four per-run template path overrides.
type templateFlags struct {
	section string
	header  string
	row     string
	footer  string
}

// addTo registers the template flags on a command.
func (tf *templateFlags) addTo(c *cobra.Command) {
	c.Flags().StringVar(&tf.section, "section-template", "", "Path to the section wrapper template")
	c.Flags().StringVar(&tf.header, "table-header", "", "Path to the per-category header template")
	c.Flags().StringVar(&tf.row, "table-row", "", "Path to the per-module row template")
	c.Flags().StringVar(&tf.footer, "table-footer", "", "Path to the per-category footer template")
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(gc *GlobalConfig) *cobra.Command {
	var (
		tf            templateFlags
		graphFlag     string
		outputFlag    string
		unmatchedFlag bool
	)

	c := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate the module list document",
		Long: `Generate the module list document from a build graph.

The graph comes from a YAML manifest (--graph) or from scanning a Maven
reactor directory given as the positional argument (default: current
directory). Template fragments default to the embedded docbook set; to
override them, all four template flags must be given together (or
configured together in the config file).

Examples:
  # Scan the reactor in the current directory
  modlist generate

  # Generate from a graph manifest
  modlist generate -g graph.yaml -O docs/modules.xml

  # Render unmatched modules under an "Other" category
  modlist generate --output-unmatched`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, args, gc, &tf, graphFlag, outputFlag, unmatchedFlag)
		},
	}

	tf.addTo(c)
	c.Flags().StringVarP(&graphFlag, "graph", "g", "", "Path to a graph manifest file")
	c.Flags().StringVarP(&outputFlag, "output", "O", "", "Output file path (env: MODLIST_OUTPUT)")
	c.Flags().BoolVar(&unmatchedFlag, "output-unmatched", false, "Render unmatched modules under an \"Other\" category")

	return c
}

// runGenerate executes the generate command: Setup, Categorize, Render,
// Assemble, Write. Setup failures abort before the graph is touched.
func runGenerate(c *cobra.Command, args []string, gc *GlobalConfig, tf *templateFlags, graphFlag, outputFlag string, unmatchedFlag bool) error {
	ctx := context.Background()

	set, err := resolveTemplates(gc, tf)
	if err != nil {
		return err
	}

	g, err := loadGraph(ctx, graphFlag, args)
	if err != nil {
		return err
	}
	output.Debug("graph loaded", "modules", g.Len())

	resolvedOutput := config.ResolveOutputFile(outputFlag, gc.Config)
	output.Debug("output file resolved", "path", resolvedOutput.Value, "source", resolvedOutput.Source)

	renderUnmatched := gc.Config.OutputUnmatched
	if c.Flags().Changed("output-unmatched") {
		renderUnmatched = unmatchedFlag
	}

	result, err := docgen.Generate(g, docgen.Options{
		OutputFile:      resolvedOutput.Value,
		Templates:       set,
		RenderUnmatched: renderUnmatched,
	})
	if err != nil {
		return err
	}

	output.Info("output written", "path", result.OutputFile, "categories", result.Categories)
	output.Println(output.FormatCheckmark("module list written to " + output.StyleNoun.Render(result.OutputFile)))

	return nil
}

// resolveTemplates loads the template set from flags, config, or the
// embedded defaults, in that order of precedence. A partially specified
// set is a setup error: mixing fragments from different sets produces
// silently broken documents.
func resolveTemplates(gc *GlobalConfig, tf *templateFlags) (*templates.Set, error) {
	paths := templates.Paths{
		Section:     tf.section,
		TableHeader: tf.header,
		TableRow:    tf.row,
		TableFooter: tf.footer,
	}

	if paths.Empty() {
		paths = templates.Paths{
			Section:     gc.Config.Templates.Section,
			TableHeader: gc.Config.Templates.TableHeader,
			TableRow:    gc.Config.Templates.TableRow,
			TableFooter: gc.Config.Templates.TableFooter,
		}
	}

	if paths.Empty() {
		output.Debug("using embedded default templates")
		return templates.Default(), nil
	}

	if !paths.Complete() {
		return nil, fmt.Errorf("template set is incomplete; "+
			"section, table-header, table-row and table-footer must all be given: %w", merrors.ErrSetup)
	}

	return templates.Load(paths)
}

// loadGraph loads the build graph from a manifest file or by scanning a
// reactor directory. Scans run under a spinner; manifest reads are fast
// enough not to need one.
func loadGraph(ctx context.Context, graphFlag string, args []string) (*graph.Graph, error) {
	if graphFlag != "" {
		return graph.LoadManifest(graphFlag)
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	var g *graph.Graph
	err := output.RunWithSpinner(ctx, func() error {
		var scanErr error
		g, scanErr = graph.ScanReactor(dir)
		return scanErr
	}, output.WithTitle(fmt.Sprintf("Scanning reactor in %s...", dir)))
	if err != nil {
		return nil, err
	}

	return g, nil
}
