// Package extract pulls plain text, marker-delimited fields and styled
// text matches out of a document for rule evaluation.
package extract

import (
	"fmt"
	"strings"

	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/section"
)

// PageText pairs a 1-based page number with its plain text.
type PageText struct {
	Page int
	Text string
}

// SectionContent is the material rules evaluate against: the concatenated
// text of a page range plus its per-page breakdown for page citations.
type SectionContent struct {
	Text  string
	Pages []PageText
}

// Lines splits the concatenated section text into lines.
func (c SectionContent) Lines() []string {
	return strings.Split(c.Text, "\n")
}

// Section extracts plain text for every page in the range, in page order.
// Extraction errors are I/O level and therefore fatal to the run.
func Section(doc document.Document, rng section.Range) (SectionContent, error) {
	var builder strings.Builder
	var pages []PageText

	for page := rng.Start; page < rng.End && page <= doc.PageCount(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return SectionContent{}, fmt.Errorf("failed to extract page %d: %w", page, err)
		}
		builder.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			builder.WriteString("\n")
		}
		pages = append(pages, PageText{Page: page, Text: text})
	}

	return SectionContent{Text: builder.String(), Pages: pages}, nil
}

// WholeDocument extracts every page, for rules that scan the full
// document rather than a single outlined section.
func WholeDocument(doc document.Document) (SectionContent, error) {
	return Section(doc, section.Range{Start: 1, End: doc.PageCount() + 1})
}
