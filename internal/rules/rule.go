// Package rules implements the compliance checks evaluated against
// extracted document material. Each check is a named, parameterized
// strategy registered under a stable identifier so validation profiles
// can bind sections to checks declaratively.
package rules

import (
	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/extract"
	"github.com/grantlint/grantlint/internal/section"
)

// Material is the extracted content a rule evaluates against. Section is
// the display name used in findings; Range and Doc are available for
// rules that need styled runs rather than plain text.
type Material struct {
	Section string
	Range   section.Range
	Content extract.SectionContent
	Doc     document.Document
}

// Rule is a named compliance check. Evaluate returns zero findings on a
// clean pass; expected absence of content is always expressed as a
// finding, never as an error. Only document adapter failures may escape
// evaluation, and the profile runner recovers internal precondition
// panics into failing findings.
type Rule interface {
	Name() string
	Evaluate(m Material) []Finding
}
