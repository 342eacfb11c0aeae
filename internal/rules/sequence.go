package rules

import (
	"fmt"
	"regexp"
	"strconv"
)

// RuleSequence requires numbered captions of a kind to appear with
// strictly increasing, consecutive integers starting at 1, scanning
// pages in order and text order within each page.
const RuleSequence = "figure-sequence"

const defaultCaptionPattern = `Figure\s+(\d+)\.`

type sequenceRule struct {
	pattern *regexp.Regexp
}

func newSequenceRule(p Params) (Rule, error) {
	pattern := p.Pattern
	if pattern == "" {
		pattern = defaultCaptionPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid caption pattern: %w", RuleSequence, err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("%s: caption pattern must capture exactly one number group", RuleSequence)
	}
	return &sequenceRule{pattern: re}, nil
}

func (r *sequenceRule) Name() string {
	return RuleSequence
}

func (r *sequenceRule) Evaluate(m Material) []Finding {
	var findings []Finding
	last := 0

	for _, page := range m.Content.Pages {
		for _, match := range r.pattern.FindAllStringSubmatch(page.Text, -1) {
			number, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if number != last+1 {
				findings = append(findings, Fail(RuleSequence, m.Section, page.Page,
					fmt.Sprintf("caption number %d is out of sequence on page %d (expected %d)",
						number, page.Page, last+1)))
			}
			// The next caption is validated against the observed number,
			// not the expected one, so one gap yields one finding.
			last = number
		}
	}

	return findings
}
