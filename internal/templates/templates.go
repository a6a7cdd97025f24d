// Package templates provides the four-fragment template set the generator
// substitutes module data into.
//
// Substitution is literal substring replacement of %TOKEN placeholders.
// No escaping is performed on substituted values; descriptions and ids are
// inserted verbatim, and producing well-formed output is the caller's
// responsibility. This keeps the generated document byte-compatible with
// hand-maintained template fragments.
package templates

import (
	"fmt"
	"os"

	merrors "github.com/moduledocs/modlist/internal/errors"
)

// Placeholders recognized in template fragments.
const (
	// NamePlaceholder in a table row is replaced by the module artifact id.
	NamePlaceholder = "%NAME"

	// DescriptionPlaceholder in a table row is replaced by the module description.
	DescriptionPlaceholder = "%DESCRIPTION"

	// LinkPathPlaceholder in a table row is replaced by the relative
	// project-info path of the module.
	LinkPathPlaceholder = "%LINK_PATH"

	// CaptionPlaceholder in a table header is replaced by the category caption.
	CaptionPlaceholder = "%CAPTION"

	// GroupIDPlaceholder in a table header is replaced by the category id.
	GroupIDPlaceholder = "%GROUP_ID"

	// ContentPlaceholder in the section template is replaced by the
	// concatenated category tables.
	ContentPlaceholder = "%CONTENT"
)

// Set holds the four template fragments for one run. Loaded once during
// setup and immutable afterwards.
type Set struct {
	// Section wraps the whole document; must contain ContentPlaceholder.
	Section string

	// TableHeader opens one category table; supports CaptionPlaceholder
	// and GroupIDPlaceholder.
	TableHeader string

	// TableRow renders one module; supports NamePlaceholder,
	// DescriptionPlaceholder and LinkPathPlaceholder.
	TableRow string

	// TableFooter closes one category table; no placeholders.
	TableFooter string
}

// Paths names the four template files of a set.
type Paths struct {
	Section     string
	TableHeader string
	TableRow    string
	TableFooter string
}

// Complete reports whether all four paths are set.
func (p Paths) Complete() bool {
	return p.Section != "" && p.TableHeader != "" && p.TableRow != "" && p.TableFooter != ""
}

// Empty reports whether no path is set.
func (p Paths) Empty() bool {
	return p.Section == "" && p.TableHeader == "" && p.TableRow == "" && p.TableFooter == ""
}

// Load reads a template set from the four files named by paths.
// Any unreadable file is fatal; no partial set is ever returned.
func Load(paths Paths) (*Set, error) {
	if !paths.Complete() {
		return nil, fmt.Errorf("all four template files are required: %w", merrors.ErrSetup)
	}

	section, err := readTemplate(paths.Section)
	if err != nil {
		return nil, err
	}
	header, err := readTemplate(paths.TableHeader)
	if err != nil {
		return nil, err
	}
	row, err := readTemplate(paths.TableRow)
	if err != nil {
		return nil, err
	}
	footer, err := readTemplate(paths.TableFooter)
	if err != nil {
		return nil, err
	}

	return &Set{
		Section:     section,
		TableHeader: header,
		TableRow:    row,
		TableFooter: footer,
	}, nil
}

// readTemplate reads one template file fully into memory.
func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("template file %s: %w", path, merrors.ErrSetup)
		}
		return "", fmt.Errorf("reading template file %s: %w: %v", path, merrors.ErrSetup, err)
	}
	return string(data), nil
}
