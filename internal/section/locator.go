// Package section resolves outline titles into page ranges. Titles are
// compared case-insensitively on substring containment because grant-form
// outlines vary in casing and decoration across submission systems.
package section

import (
	"strings"

	"github.com/grantlint/grantlint/internal/document"
)

// Range is a resolved section span. Start is the 1-based first page of
// the section; End is the exclusive 1-based bound: the start page of the
// following outline entry, or pageCount+1 when the section is last in
// the document. Invariant: Start <= End.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Pages returns the 1-based page numbers covered by the range, in order.
func (r Range) Pages() []int {
	var pages []int
	for p := r.Start; p < r.End; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Contains reports whether the 1-based page lies inside the range.
func (r Range) Contains(page int) bool {
	return page >= r.Start && page < r.End
}

// Resolution is the outcome of resolving a section title against an
// outline. Found distinguishes the non-fatal "section absent" outcome
// from a resolved range. Matches counts how many outline entries matched
// the title so callers can surface ambiguity; the first match always
// wins.
type Resolution struct {
	Range   Range
	Found   bool
	Matches int
}

// Ambiguous reports whether more than one outline entry matched.
func (res Resolution) Ambiguous() bool {
	return res.Matches > 1
}

func titleMatches(entryTitle, title string) bool {
	return strings.Contains(strings.ToLower(entryTitle), strings.ToLower(title))
}

// FindStart returns the target page of the first outline entry whose
// title contains the given title, scanning in outline order. Earliest
// entry wins on ties. The second return is false when no entry matches.
func FindStart(outline []document.OutlineEntry, title string) (int, bool) {
	for _, entry := range outline {
		if titleMatches(entry.Title, title) {
			return entry.Page, true
		}
	}
	return 0, false
}

// FindNext returns the target page of the entry immediately following
// the first match for title, regardless of its level. The second return
// is false when the matching entry is last or no entry matches.
func FindNext(outline []document.OutlineEntry, title string) (int, bool) {
	for i, entry := range outline {
		if titleMatches(entry.Title, title) {
			if i+1 < len(outline) {
				return outline[i+1].Page, true
			}
			return 0, false
		}
	}
	return 0, false
}

// CountMatches returns the number of outline entries whose titles contain
// the given title.
func CountMatches(outline []document.OutlineEntry, title string) int {
	count := 0
	for _, entry := range outline {
		if titleMatches(entry.Title, title) {
			count++
		}
	}
	return count
}

// Resolve combines FindStart and FindNext into a page range for the
// titled section. A title with no matching entry yields Found == false,
// which callers must treat as a distinct, non-fatal outcome.
func Resolve(outline []document.OutlineEntry, title string, pageCount int) Resolution {
	start, ok := FindStart(outline, title)
	if !ok {
		return Resolution{}
	}

	end, ok := FindNext(outline, title)
	if !ok {
		end = pageCount + 1
	}
	if end < start {
		// Malformed outlines can point backwards; clamp to an empty range
		// rather than producing a negative span.
		end = start
	}

	return Resolution{
		Range:   Range{Start: start, End: end},
		Found:   true,
		Matches: CountMatches(outline, title),
	}
}
