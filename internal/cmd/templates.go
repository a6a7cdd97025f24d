package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	merrors "github.com/moduledocs/modlist/internal/errors"
	"github.com/moduledocs/modlist/internal/output"
	"github.com/moduledocs/modlist/internal/templates"
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd(gc *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "templates",
		Short: "Work with template sets",
	}

	c.AddCommand(newTemplatesVetCmd(gc))

	return c
}

// newTemplatesVetCmd creates the templates vet command.
func newTemplatesVetCmd(gc *GlobalConfig) *cobra.Command {
	var tf templateFlags

	c := &cobra.Command{
		Use:   "vet",
		Short: "Lint a template set for placeholder problems",
		Long: `Lint a template set for placeholder problems.

Loads the template set the same way generate does (flags, then config,
then the embedded defaults) and reports missing or unrecognized
placeholders before they end up verbatim in generated documents.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplatesVet(gc, &tf)
		},
	}

	tf.addTo(c)

	return c
}

// runTemplatesVet executes the templates vet command.
func runTemplatesVet(gc *GlobalConfig, tf *templateFlags) error {
	set, err := resolveTemplates(gc, tf)
	if err != nil {
		return err
	}

	findings := templates.Vet(set)
	if len(findings) == 0 {
		output.Println(output.FormatCheckmark("template set is clean"))
		return nil
	}

	for _, f := range findings {
		output.Println("  " + output.StyleWarning.Render(f.String()))
	}

	return merrors.NewExitError(
		fmt.Errorf("template set has %d problem(s)", len(findings)),
		merrors.ExitSetupError,
	)
}
