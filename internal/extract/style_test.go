package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/document/documenttest"
	"github.com/grantlint/grantlint/internal/section"
)

func styledDoc() *documenttest.Fake {
	doc := documenttest.New("page 1", "page 2", "page 3")
	doc.WithRuns(1,
		document.StyledRun{Text: "Facilities overview", Font: "Helvetica", Size: 11},
	)
	doc.WithRuns(2,
		document.StyledRun{Text: "Biohazard handling and disposal", Font: "Helvetica", Size: 11},
		document.StyledRun{Text: "Biohazard containment", Font: "Helvetica-Bold", Size: 11},
	)
	doc.WithRuns(3,
		document.StyledRun{Text: "Biohazard waste", Font: "Arial-BoldMT", Size: 10},
	)
	return doc
}

func TestStyleScannerFindFirst(t *testing.T) {
	scanner := NewStyleScanner(styledDoc())
	rng := section.Range{Start: 1, End: 4}

	match, err := scanner.FindFirst(rng, "Biohazard", BoldFace)
	require.NoError(t, err)
	require.NotNil(t, match)

	// The non-bold run on page 2 is skipped; the bold one matches first.
	assert.Equal(t, 2, match.Page)
	assert.Equal(t, "Helvetica-Bold", match.Run.Font)
}

func TestStyleScannerFindFirstNoMatch(t *testing.T) {
	scanner := NewStyleScanner(styledDoc())

	match, err := scanner.FindFirst(section.Range{Start: 1, End: 4}, "Radiation", BoldFace)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestStyleScannerRespectsRange(t *testing.T) {
	scanner := NewStyleScanner(styledDoc())

	match, err := scanner.FindFirst(section.Range{Start: 1, End: 2}, "Biohazard", BoldFace)
	require.NoError(t, err)
	assert.Nil(t, match, "page 2 lies outside the range")
}

func TestStyleScannerFindAll(t *testing.T) {
	scanner := NewStyleScanner(styledDoc())

	matches, err := scanner.FindAll(section.Range{Start: 1, End: 4}, "Biohazard", BoldFace)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].Page)
	assert.Equal(t, 3, matches[1].Page)
}

func TestPredicateFor(t *testing.T) {
	bold := document.StyledRun{Text: "x", Font: "Times-Bold"}
	italic := document.StyledRun{Text: "x", Font: "Times-Italic"}
	plain := document.StyledRun{Text: "x", Font: "Times-Roman"}

	assert.True(t, PredicateFor("bold")(bold))
	assert.False(t, PredicateFor("bold")(plain))
	assert.True(t, PredicateFor("italic")(italic))
	assert.True(t, PredicateFor("")(plain), "unknown style matches any face")
}
