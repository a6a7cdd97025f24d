package templates

import (
	"fmt"
	"regexp"
)

// placeholderPattern matches anything that looks like a placeholder token.
var placeholderPattern = regexp.MustCompile(`%[A-Z][A-Z_]*`)

// allowed placeholders per fragment.
var (
	sectionAllowed = map[string]bool{ContentPlaceholder: true}
	headerAllowed  = map[string]bool{CaptionPlaceholder: true, GroupIDPlaceholder: true}
	rowAllowed     = map[string]bool{NamePlaceholder: true, DescriptionPlaceholder: true, LinkPathPlaceholder: true}
	footerAllowed  = map[string]bool{}
)

// Finding is one problem reported by Vet.
type Finding struct {
	// Fragment names the template fragment the finding applies to.
	Fragment string

	// Message describes the problem.
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Fragment, f.Message)
}

// Vet lints a template set for placeholder problems.
//
// It reports a missing %CONTENT in the section template (the document
// would render without any tables) and any %TOKEN-shaped text that is not
// a recognized placeholder for its fragment, which usually indicates a
// typo that would survive substitution into the output.
func Vet(set *Set) []Finding {
	var findings []Finding

	if !placeholderPresent(set.Section, ContentPlaceholder) {
		findings = append(findings, Finding{
			Fragment: "section",
			Message:  fmt.Sprintf("missing %s placeholder; generated tables would be dropped", ContentPlaceholder),
		})
	}

	findings = append(findings, vetFragment("section", set.Section, sectionAllowed)...)
	findings = append(findings, vetFragment("table-header", set.TableHeader, headerAllowed)...)
	findings = append(findings, vetFragment("table-row", set.TableRow, rowAllowed)...)
	findings = append(findings, vetFragment("table-footer", set.TableFooter, footerAllowed)...)

	return findings
}

// vetFragment reports unrecognized placeholder tokens in one fragment.
func vetFragment(name, content string, allowed map[string]bool) []Finding {
	var findings []Finding
	seen := make(map[string]bool)

	for _, token := range placeholderPattern.FindAllString(content, -1) {
		if allowed[token] || seen[token] {
			continue
		}
		seen[token] = true
		findings = append(findings, Finding{
			Fragment: name,
			Message:  fmt.Sprintf("unrecognized placeholder %s will appear verbatim in the output", token),
		})
	}

	return findings
}

// placeholderPresent reports whether token occurs in content.
func placeholderPresent(content, token string) bool {
	for _, t := range placeholderPattern.FindAllString(content, -1) {
		if t == token {
			return true
		}
	}
	return false
}
