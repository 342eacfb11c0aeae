package extract

import (
	"strings"
	"testing"

	"github.com/grantlint/grantlint/internal/document/documenttest"
	"github.com/grantlint/grantlint/internal/section"
)

func TestSection(t *testing.T) {
	doc := documenttest.New("page one\n", "page two\n", "page three\n", "page four\n")

	content, err := Section(doc, section.Range{Start: 2, End: 4})
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}

	if content.Text != "page two\npage three\n" {
		t.Errorf("Text = %q, want pages two and three", content.Text)
	}
	if len(content.Pages) != 2 {
		t.Fatalf("Pages count = %d, want 2", len(content.Pages))
	}
	if content.Pages[0].Page != 2 || content.Pages[1].Page != 3 {
		t.Errorf("page numbers = %d, %d; want 2, 3", content.Pages[0].Page, content.Pages[1].Page)
	}
}

func TestSectionClampsToDocumentEnd(t *testing.T) {
	doc := documenttest.New("one\n", "two\n")

	content, err := Section(doc, section.Range{Start: 2, End: 9})
	if err != nil {
		t.Fatalf("Section() error = %v", err)
	}
	if len(content.Pages) != 1 || content.Pages[0].Page != 2 {
		t.Errorf("Pages = %+v, want only page 2", content.Pages)
	}
}

func TestSectionInsertsLineBreaks(t *testing.T) {
	// Page text without a trailing newline must not merge with the first
	// line of the following page.
	doc := documenttest.New("ends without newline", "next page")

	content, err := WholeDocument(doc)
	if err != nil {
		t.Fatalf("WholeDocument() error = %v", err)
	}
	if strings.Contains(content.Text, "newlinenext") {
		t.Errorf("page texts merged: %q", content.Text)
	}
}

func TestWholeDocument(t *testing.T) {
	doc := documenttest.New("a\n", "b\n", "c\n")

	content, err := WholeDocument(doc)
	if err != nil {
		t.Fatalf("WholeDocument() error = %v", err)
	}
	if len(content.Pages) != 3 {
		t.Errorf("Pages count = %d, want 3", len(content.Pages))
	}
	if content.Text != "a\nb\nc\n" {
		t.Errorf("Text = %q", content.Text)
	}
}
