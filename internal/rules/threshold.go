package rules

import (
	"fmt"
	"strings"

	"github.com/grantlint/grantlint/internal/extract"
)

// RuleThreshold bounds a count extracted from the section: content
// lines, sentences, or distinct non-empty entries between a marker
// pair. Counts outside [min, max] fail with the observed count in the
// message.
const RuleThreshold = "length-limit"

// Counting modes.
const (
	ModeLines     = "lines"
	ModeSentences = "sentences"
	ModeEntries   = "entries"
)

type thresholdRule struct {
	mode          string
	min           int
	max           int
	startMarker   string
	endMarker     string
	stripPrefixes []string
	stripLiterals []string
	label         string
}

func newThresholdRule(p Params) (Rule, error) {
	switch p.Mode {
	case ModeLines, ModeSentences:
	case ModeEntries:
		if p.StartMarker == "" || p.EndMarker == "" {
			return nil, fmt.Errorf("%s: entries mode requires start_marker and end_marker", RuleThreshold)
		}
	default:
		return nil, fmt.Errorf("%s: mode must be one of lines, sentences, entries", RuleThreshold)
	}
	if p.Min == 0 && p.Max == 0 {
		return nil, fmt.Errorf("%s: at least one of min and max is required", RuleThreshold)
	}
	label := p.Label
	if label == "" {
		label = p.Mode
	}
	return &thresholdRule{
		mode:          p.Mode,
		min:           p.Min,
		max:           p.Max,
		startMarker:   p.StartMarker,
		endMarker:     p.EndMarker,
		stripPrefixes: p.StripPrefixes,
		stripLiterals: p.StripLiterals,
		label:         label,
	}, nil
}

func (r *thresholdRule) Name() string {
	return RuleThreshold
}

func (r *thresholdRule) Evaluate(m Material) []Finding {
	count := r.count(m.Content)

	var findings []Finding
	if r.min > 0 && count < r.min {
		findings = append(findings, Fail(RuleThreshold, m.Section, 0,
			fmt.Sprintf("found %d %s, at least %d required", count, r.label, r.min)))
	}
	if r.max > 0 && count > r.max {
		findings = append(findings, Fail(RuleThreshold, m.Section, 0,
			fmt.Sprintf("found %d %s, limit is %d", count, r.label, r.max)))
	}
	return findings
}

func (r *thresholdRule) count(content extract.SectionContent) int {
	switch r.mode {
	case ModeEntries:
		count := 0
		for _, page := range content.Pages {
			chunk := extract.BetweenMarkers(page.Text, r.startMarker, r.endMarker)
			if chunk == "" {
				continue
			}
			count += extract.CountNonEmptyLines(r.stripLiteralText(chunk))
		}
		return count
	case ModeSentences:
		count := 0
		for _, sentence := range strings.Split(content.Text, ".") {
			if r.isContent(r.stripLiteralText(sentence)) {
				count++
			}
		}
		return count
	default: // ModeLines
		count := 0
		for _, line := range content.Lines() {
			if r.isContent(r.stripLiteralText(line)) {
				count++
			}
		}
		return count
	}
}

// isContent reports whether the fragment counts toward the threshold:
// non-empty after trimming and not form boilerplate (page banners,
// repeated heading prefixes).
func (r *thresholdRule) isContent(fragment string) bool {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return false
	}
	for _, prefix := range r.stripPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return false
		}
	}
	return true
}

func (r *thresholdRule) stripLiteralText(fragment string) string {
	for _, literal := range r.stripLiterals {
		fragment = strings.ReplaceAll(fragment, literal, "")
	}
	return fragment
}
