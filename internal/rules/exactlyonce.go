package rules

import (
	"fmt"
	"strings"
)

// RuleExactlyOnce requires each named item to appear exactly once across
// the evaluated material. Zero occurrences and duplicates are distinct
// failures; an optional family prefix flags sibling items outside the
// required list.
const RuleExactlyOnce = "exactly-once"

type exactlyOnceRule struct {
	items        []string
	exact        bool
	familyPrefix string
}

func newExactlyOnceRule(p Params) (Rule, error) {
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%s: items are required", RuleExactlyOnce)
	}
	return &exactlyOnceRule{
		items:        p.Items,
		exact:        p.MatchExact,
		familyPrefix: p.FamilyPrefix,
	}, nil
}

func (r *exactlyOnceRule) Name() string {
	return RuleExactlyOnce
}

func (r *exactlyOnceRule) Evaluate(m Material) []Finding {
	counts := make(map[string]int, len(r.items))
	firstPage := make(map[string]int, len(r.items))
	strayPage := 0

	for _, page := range m.Content.Pages {
		for _, line := range strings.Split(page.Text, "\n") {
			matched := false
			for _, item := range r.items {
				if lineMatches(line, item, r.exact) {
					counts[item]++
					if counts[item] == 1 {
						firstPage[item] = page.Page
					}
					matched = true
				}
			}
			if !matched && r.familyPrefix != "" && strayPage == 0 &&
				strings.HasPrefix(strings.ToLower(line), strings.ToLower(r.familyPrefix)) {
				strayPage = page.Page
			}
		}
	}

	var findings []Finding
	for _, item := range r.items {
		switch {
		case counts[item] == 0:
			findings = append(findings, Fail(RuleExactlyOnce, m.Section, 0,
				fmt.Sprintf("%s is missing", item)))
		case counts[item] > 1:
			findings = append(findings, Fail(RuleExactlyOnce, m.Section, firstPage[item],
				fmt.Sprintf("%s exists more than once", item)))
		}
	}
	if strayPage != 0 {
		findings = append(findings, Fail(RuleExactlyOnce, m.Section, strayPage,
			fmt.Sprintf("other %q entries found that are not in the required list", r.familyPrefix)))
	}
	return findings
}
