package rules

import (
	"fmt"
	"strings"

	"github.com/grantlint/grantlint/internal/extract"
)

// RuleConditional validates yes/no checkbox questions whose selected
// state is encoded as literal glyph blocks in the extracted text (a
// filled bullet before the selected label, an open circle before the
// other). On "Yes" a follow-up value delimited by markers must be
// present and must not be a placeholder; on "No" the follow-up block
// must be absent.
const RuleConditional = "conditional-fields"

type conditionalRule struct {
	yesBlock       string
	noBlock        string
	valueStart     string
	valueEnd       string
	placeholders   []string
	forbiddenBlock string
	label          string
}

func newConditionalRule(p Params) (Rule, error) {
	if p.YesBlock == "" || p.NoBlock == "" {
		return nil, fmt.Errorf("%s: yes_block and no_block are required", RuleConditional)
	}
	if p.ValueStart == "" || p.ValueEnd == "" {
		return nil, fmt.Errorf("%s: value_start and value_end are required", RuleConditional)
	}
	label := p.Label
	if label == "" {
		label = p.ValueStart
	}
	return &conditionalRule{
		yesBlock:       p.YesBlock,
		noBlock:        p.NoBlock,
		valueStart:     p.ValueStart,
		valueEnd:       p.ValueEnd,
		placeholders:   p.Placeholders,
		forbiddenBlock: p.ForbiddenBlock,
		label:          label,
	}, nil
}

func (r *conditionalRule) Name() string {
	return RuleConditional
}

func (r *conditionalRule) Evaluate(m Material) []Finding {
	for _, page := range m.Content.Pages {
		switch {
		case strings.Contains(page.Text, r.yesBlock):
			return r.checkValue(m, page)
		case strings.Contains(page.Text, r.noBlock):
			return r.checkAbsence(m, page)
		}
	}
	// The question block was not rendered in this section; there is no
	// selected state to validate.
	return nil
}

func (r *conditionalRule) checkValue(m Material, page extract.PageText) []Finding {
	value := extract.BetweenMarkers(page.Text, r.valueStart, r.valueEnd)
	if value == "" || r.isPlaceholder(value) {
		return []Finding{Fail(RuleConditional, m.Section, page.Page,
			fmt.Sprintf("%s required at page %d", r.label, page.Page))}
	}
	return nil
}

func (r *conditionalRule) checkAbsence(m Material, page extract.PageText) []Finding {
	if r.forbiddenBlock != "" && strings.Contains(page.Text, r.forbiddenBlock) {
		return []Finding{Fail(RuleConditional, m.Section, page.Page,
			fmt.Sprintf("information not required but found at page %d", page.Page))}
	}
	return nil
}

func (r *conditionalRule) isPlaceholder(value string) bool {
	for _, placeholder := range r.placeholders {
		if strings.EqualFold(value, placeholder) {
			return true
		}
	}
	return false
}
