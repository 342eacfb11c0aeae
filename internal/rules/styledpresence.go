package rules

import (
	"fmt"

	"github.com/grantlint/grantlint/internal/extract"
)

// RuleStyledPresence requires a literal substring to appear in the
// section rendered with a given style, e.g. "Biohazard" in a bold face.
const RuleStyledPresence = "styled-presence"

type styledPresenceRule struct {
	literal string
	style   string
	message string
}

func newStyledPresenceRule(p Params) (Rule, error) {
	if p.Literal == "" {
		return nil, fmt.Errorf("%s: literal is required", RuleStyledPresence)
	}
	return &styledPresenceRule{
		literal: p.Literal,
		style:   p.Style,
		message: p.Message,
	}, nil
}

func (r *styledPresenceRule) Name() string {
	return RuleStyledPresence
}

func (r *styledPresenceRule) Evaluate(m Material) []Finding {
	scanner := extract.NewStyleScanner(m.Doc)
	match, err := scanner.FindFirst(m.Range, r.literal, extract.PredicateFor(r.style))
	if err != nil {
		return []Finding{Fail(RuleStyledPresence, m.Section, 0,
			fmt.Sprintf("styled scan failed: %v", err))}
	}

	if match == nil {
		message := r.message
		if message == "" {
			message = fmt.Sprintf("%q not found in %s style within section", r.literal, r.style)
		}
		return []Finding{Fail(RuleStyledPresence, m.Section, 0, message)}
	}
	return nil
}
