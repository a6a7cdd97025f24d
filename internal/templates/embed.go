package templates

import (
	_ "embed"
)

// Default docbook fragments, used when no template paths are configured.
// They mirror the hand-maintained fragments shipped with the documentation
// build and carry the same placeholders.

//go:embed defaults/section.xml
var defaultSection string

//go:embed defaults/table-header.xml
var defaultTableHeader string

//go:embed defaults/table-row.xml
var defaultTableRow string

//go:embed defaults/table-footer.xml
var defaultTableFooter string

// Default returns the embedded docbook template set.
func Default() *Set {
	return &Set{
		Section:     defaultSection,
		TableHeader: defaultTableHeader,
		TableRow:    defaultTableRow,
		TableFooter: defaultTableFooter,
	}
}
