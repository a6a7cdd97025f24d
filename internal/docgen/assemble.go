package docgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/moduledocs/modlist/internal/catalog"
	merrors "github.com/moduledocs/modlist/internal/errors"
	"github.com/moduledocs/modlist/internal/graph"
	"github.com/moduledocs/modlist/internal/output"
	"github.com/moduledocs/modlist/internal/templates"
)

// Options configures one generator run.
type Options struct {
	// OutputFile is the path the assembled document is written to.
	OutputFile string

	// Templates is the loaded template set.
	Templates *templates.Set

	// RenderUnmatched appends an "Other" category with every unmatched
	// module instead of only warning about them.
	RenderUnmatched bool
}

// Result summarizes a completed generator run.
type Result struct {
	// OutputFile is the path the document was written to.
	OutputFile string

	// Categories is the number of category blocks rendered.
	Categories int

	// Unmatched is the number of modules no category claimed.
	Unmatched int
}

// Generate runs the full pipeline over a build graph and writes the
// assembled document. Every module ends up in exactly one category block
// or in the unmatched set; unmatched modules are only rendered when
// configured, but are always counted and warned about.
func Generate(g *graph.Graph, opts Options) (*Result, error) {
	buckets := Categorize(g.Modules)
	matched := Match(buckets, catalog.Categories())
	renderer := NewRenderer(opts.Templates)

	var content strings.Builder
	for _, cm := range matched.Categories {
		content.WriteString(renderer.RenderCategory(cm.Category.Caption, cm.Category.GroupID, cm.Modules))
	}

	if len(matched.Unmatched) > 0 {
		output.Warn("unmatched modules present", "count", len(matched.Unmatched))
		if !opts.RenderUnmatched {
			output.Warn("unmatched modules are omitted from the output; " +
				"enable outputUnmatched to render them under \"Other\"")
		}
	}

	if opts.RenderUnmatched && len(matched.Unmatched) > 0 {
		content.WriteString(renderer.RenderCategory(catalog.OtherCaption, catalog.OtherID, matched.Unmatched))
	}

	document := strings.ReplaceAll(opts.Templates.Section, templates.ContentPlaceholder, content.String())

	if err := WriteDocument(opts.OutputFile, document); err != nil {
		return nil, err
	}

	return &Result{
		OutputFile: opts.OutputFile,
		Categories: len(matched.Categories),
		Unmatched:  len(matched.Unmatched),
	}, nil
}

// WriteDocument writes the assembled document to path with a trailing
// newline, overwriting any existing file. The path is opened eagerly, so a
// partial file may exist after a failed write.
func WriteDocument(path, document string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w: %v", path, merrors.ErrWrite, err)
	}
	defer f.Close()

	if _, err := f.WriteString(document + "\n"); err != nil {
		return fmt.Errorf("writing output file %s: %w: %v", path, merrors.ErrWrite, err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("flushing output file %s: %w: %v", path, merrors.ErrWrite, err)
	}

	return nil
}
