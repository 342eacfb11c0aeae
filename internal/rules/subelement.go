package rules

import (
	"fmt"
	"strings"
)

// RuleSubElements validates lettered sub-items inside numbered element
// blocks. The material is segmented into blocks starting at each item
// title and ending at the next one; each block listed in require_in must
// contain every marker as a line prefix, and each block listed in
// forbid_in must contain none of them.
const RuleSubElements = "sub-elements"

type subElementRule struct {
	items     []string
	markers   []string
	requireIn []string
	forbidIn  []string
}

func newSubElementRule(p Params) (Rule, error) {
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%s: items are required", RuleSubElements)
	}
	if len(p.Markers) == 0 {
		return nil, fmt.Errorf("%s: markers are required", RuleSubElements)
	}
	return &subElementRule{
		items:     p.Items,
		markers:   p.Markers,
		requireIn: p.RequireIn,
		forbidIn:  p.ForbidIn,
	}, nil
}

func (r *subElementRule) Name() string {
	return RuleSubElements
}

func (r *subElementRule) Evaluate(m Material) []Finding {
	var findings []Finding

	for _, block := range r.blocks(m.Content.Text) {
		label := blockLabel(block)
		present := r.markersPresent(block)

		if r.matchesAny(block, r.requireIn) {
			for _, marker := range r.markers {
				if !present[marker] {
					findings = append(findings, Fail(RuleSubElements, m.Section, 0,
						fmt.Sprintf("%s: sub-item %q not found", label, marker)))
				}
			}
		}
		if r.matchesAny(block, r.forbidIn) {
			for _, marker := range r.markers {
				if present[marker] {
					findings = append(findings, Fail(RuleSubElements, m.Section, 0,
						fmt.Sprintf("%s: sub-item %q found but not allowed", label, marker)))
				}
			}
		}
	}

	return findings
}

// blocks segments the text into per-item blocks. A block starts at the
// first line carrying an item title and runs until the next item title
// or the end of the text.
func (r *subElementRule) blocks(text string) []string {
	type span struct {
		start int
		item  string
	}
	var spans []span
	for _, item := range r.items {
		if at := strings.Index(text, item); at >= 0 {
			spans = append(spans, span{start: at, item: item})
		}
	}

	var blocks []string
	for _, s := range spans {
		end := len(text)
		for _, other := range spans {
			if other.start > s.start && other.start < end {
				end = other.start
			}
		}
		blocks = append(blocks, text[s.start:end])
	}
	return blocks
}

func (r *subElementRule) markersPresent(block string) map[string]bool {
	present := make(map[string]bool, len(r.markers))
	for _, line := range strings.Split(block, "\n") {
		for _, marker := range r.markers {
			if strings.HasPrefix(line, marker) {
				present[marker] = true
			}
		}
	}
	return present
}

func (r *subElementRule) matchesAny(block string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(block, prefix) {
			return true
		}
	}
	return false
}

// blockLabel is the element identifier before the first colon, used in
// finding messages.
func blockLabel(block string) string {
	head, _, found := strings.Cut(block, ":")
	if !found {
		head, _, _ = strings.Cut(block, "\n")
	}
	return strings.TrimSpace(head)
}
