package rules

import (
	"fmt"
	"strings"
)

// RulePresence requires a set of literal headers or lines to appear
// within the section.
const RulePresence = "required-headers"

type presenceRule struct {
	headers []string
	exact   bool
}

func newPresenceRule(p Params) (Rule, error) {
	if len(p.Headers) == 0 {
		return nil, fmt.Errorf("%s: headers are required", RulePresence)
	}
	return &presenceRule{headers: p.Headers, exact: p.MatchExact}, nil
}

func (r *presenceRule) Name() string {
	return RulePresence
}

func (r *presenceRule) Evaluate(m Material) []Finding {
	found := make(map[string]bool, len(r.headers))

	for _, page := range m.Content.Pages {
		for _, line := range strings.Split(page.Text, "\n") {
			for _, header := range r.headers {
				if lineMatches(line, header, r.exact) {
					found[header] = true
				}
			}
		}
	}

	var findings []Finding
	for _, header := range r.headers {
		if !found[header] {
			findings = append(findings, Fail(RulePresence, m.Section, 0,
				fmt.Sprintf("header %q not found in section (pages %d to %d)",
					header, m.Range.Start, m.Range.End-1)))
		}
	}
	return findings
}

// lineMatches implements the configurable exact-line versus prefix match
// the header checks need. Prefix matching is the default because form
// renderers append trailing artifacts to heading lines.
func lineMatches(line, target string, exact bool) bool {
	if exact {
		return strings.TrimSpace(line) == target
	}
	return strings.HasPrefix(line, target)
}
