package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grantlint/grantlint/internal/extract"
)

// RuleFormat requires the token on the line following a literal anchor
// to match a fixed shape, e.g. exactly nine decimal digits.
const RuleFormat = "token-format"

type formatRule struct {
	anchor string
	format *regexp.Regexp
	label  string
}

func newFormatRule(p Params) (Rule, error) {
	if p.Anchor == "" {
		return nil, fmt.Errorf("%s: anchor is required", RuleFormat)
	}
	if p.Format == "" {
		return nil, fmt.Errorf("%s: format is required", RuleFormat)
	}
	re, err := regexp.Compile(p.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid format: %w", RuleFormat, err)
	}
	label := p.Label
	if label == "" {
		label = strings.TrimRight(p.Anchor, ":* ")
	}
	return &formatRule{anchor: p.Anchor, format: re, label: label}, nil
}

func (r *formatRule) Name() string {
	return RuleFormat
}

func (r *formatRule) Evaluate(m Material) []Finding {
	for _, page := range m.Content.Pages {
		if !strings.Contains(page.Text, r.anchor) {
			continue
		}
		value := extract.LineAfter(page.Text, r.anchor)
		if r.format.MatchString(value) {
			return nil
		}
		return []Finding{Fail(RuleFormat, m.Section, page.Page,
			fmt.Sprintf("page %d: %s value %q does not match the required format",
				page.Page, r.label, value))}
	}

	return []Finding{Fail(RuleFormat, m.Section, 0,
		fmt.Sprintf("%q not found in section", r.anchor))}
}
