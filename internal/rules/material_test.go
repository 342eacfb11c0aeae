package rules

import (
	"strings"

	"github.com/grantlint/grantlint/internal/extract"
	"github.com/grantlint/grantlint/internal/section"
)

// material builds evaluation input from per-page texts, numbering pages
// from 1 the way the extractor does.
func material(pages ...string) Material {
	var content extract.SectionContent
	for i, text := range pages {
		content.Pages = append(content.Pages, extract.PageText{Page: i + 1, Text: text})
		content.Text += text
		if !strings.HasSuffix(text, "\n") {
			content.Text += "\n"
		}
	}
	return Material{
		Section: "Test Section",
		Range:   section.Range{Start: 1, End: len(pages) + 1},
		Content: content,
	}
}

func mustRule(factory Factory, p Params) Rule {
	rule, err := factory(p)
	if err != nil {
		panic(err)
	}
	return rule
}

func failureCount(findings []Finding) int {
	count := 0
	for _, f := range findings {
		if f.Severity == SeverityFail {
			count++
		}
	}
	return count
}
