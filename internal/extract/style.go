package extract

import (
	"fmt"
	"strings"

	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/section"
)

// StylePredicate tests the face attributes of a styled run.
type StylePredicate func(document.StyledRun) bool

// BoldFace matches runs rendered in a bold font face.
func BoldFace(run document.StyledRun) bool {
	return run.Bold()
}

// AnyFace matches every run, for scans that only care about the literal.
func AnyFace(document.StyledRun) bool {
	return true
}

// PredicateFor returns the predicate registered under the given style
// name. Unknown names fall back to AnyFace.
func PredicateFor(style string) StylePredicate {
	switch strings.ToLower(style) {
	case "bold":
		return BoldFace
	case "italic":
		return document.StyledRun.Italic
	default:
		return AnyFace
	}
}

// StyleMatch locates one styled-run match within a page.
type StyleMatch struct {
	Page int
	Run  document.StyledRun
}

// StyleScanner walks styled runs across a page range looking for a
// literal substring rendered with a matching style. It is the mechanism
// behind glyph-encoded checkbox and emphasis detection: the source
// documents do not expose interactive form-field state, so selection is
// inferred from literal glyph and face patterns in the rendered text.
type StyleScanner struct {
	doc document.Document
}

// NewStyleScanner creates a scanner over the given document.
func NewStyleScanner(doc document.Document) *StyleScanner {
	return &StyleScanner{doc: doc}
}

// FindFirst walks pages in range order and runs in document order within
// each page, short-circuiting on the first run whose text contains
// literal and whose style satisfies pred. It returns nil when there is
// no match.
func (s *StyleScanner) FindFirst(rng section.Range, literal string, pred StylePredicate) (*StyleMatch, error) {
	matches, err := s.scan(rng, literal, pred, true)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// FindAll collects every match in page and run order, for rules that
// need all occurrences.
func (s *StyleScanner) FindAll(rng section.Range, literal string, pred StylePredicate) ([]StyleMatch, error) {
	return s.scan(rng, literal, pred, false)
}

func (s *StyleScanner) scan(rng section.Range, literal string, pred StylePredicate, first bool) ([]StyleMatch, error) {
	var matches []StyleMatch

	for page := rng.Start; page < rng.End && page <= s.doc.PageCount(); page++ {
		runs, err := s.doc.StyledRuns(page)
		if err != nil {
			return nil, fmt.Errorf("failed to scan styled runs of page %d: %w", page, err)
		}
		for _, run := range runs {
			if !strings.Contains(run.Text, literal) || !pred(run) {
				continue
			}
			matches = append(matches, StyleMatch{Page: page, Run: run})
			if first {
				return matches, nil
			}
		}
	}

	return matches, nil
}
