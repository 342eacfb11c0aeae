package rules

import (
	"fmt"
	"strings"

	"github.com/grantlint/grantlint/internal/extract"
)

// RuleCrossReference requires the line immediately following a literal
// anchor to end with a given suffix, confirming that a referenced
// attachment is named in the body text.
const RuleCrossReference = "attachment-reference"

type crossReferenceRule struct {
	anchor string
	suffix string
}

func newCrossReferenceRule(p Params) (Rule, error) {
	if p.Anchor == "" {
		return nil, fmt.Errorf("%s: anchor is required", RuleCrossReference)
	}
	if p.Suffix == "" {
		return nil, fmt.Errorf("%s: suffix is required", RuleCrossReference)
	}
	return &crossReferenceRule{anchor: p.Anchor, suffix: p.Suffix}, nil
}

func (r *crossReferenceRule) Name() string {
	return RuleCrossReference
}

func (r *crossReferenceRule) Evaluate(m Material) []Finding {
	for _, page := range m.Content.Pages {
		if !strings.Contains(page.Text, r.anchor) {
			continue
		}
		next := extract.LineAfter(page.Text, r.anchor)
		if strings.HasSuffix(next, r.suffix) {
			return nil
		}
		return []Finding{Fail(RuleCrossReference, m.Section, page.Page,
			fmt.Sprintf("page %d: line following %q does not name a %q attachment",
				page.Page, r.anchor, r.suffix))}
	}

	return []Finding{Fail(RuleCrossReference, m.Section, 0,
		fmt.Sprintf("%q not found in section", r.anchor))}
}
