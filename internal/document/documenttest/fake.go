// Package documenttest provides an in-memory Document implementation for
// tests that need page text, styled runs and an outline without a real
// PDF on disk.
package documenttest

import (
	"fmt"

	"github.com/grantlint/grantlint/internal/document"
)

// Page holds the content of one fake page.
type Page struct {
	Text string
	Runs []document.StyledRun
}

// Fake is an in-memory document.Document. Pages are addressed 1-based,
// matching the real adapter.
type Fake struct {
	DocPages   []Page
	DocOutline []document.OutlineEntry
}

// New builds a Fake from plain page texts.
func New(pageTexts ...string) *Fake {
	f := &Fake{}
	for _, text := range pageTexts {
		f.DocPages = append(f.DocPages, Page{Text: text})
	}
	return f
}

// WithOutline sets the document outline and returns the Fake for chaining.
func (f *Fake) WithOutline(entries ...document.OutlineEntry) *Fake {
	f.DocOutline = entries
	return f
}

// WithRuns sets the styled runs of the given 1-based page.
func (f *Fake) WithRuns(page int, runs ...document.StyledRun) *Fake {
	f.DocPages[page-1].Runs = runs
	return f
}

func (f *Fake) PageCount() int {
	return len(f.DocPages)
}

func (f *Fake) Text(page int) (string, error) {
	if page < 1 || page > len(f.DocPages) {
		return "", fmt.Errorf("invalid page number %d", page)
	}
	return f.DocPages[page-1].Text, nil
}

func (f *Fake) StyledRuns(page int) ([]document.StyledRun, error) {
	if page < 1 || page > len(f.DocPages) {
		return nil, fmt.Errorf("invalid page number %d", page)
	}
	return f.DocPages[page-1].Runs, nil
}

func (f *Fake) Outline() []document.OutlineEntry {
	return f.DocOutline
}
