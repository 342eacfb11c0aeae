package document

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

func TestFlattenBookmarks(t *testing.T) {
	bookmarks := []pdfcpu.Bookmark{
		{Title: "Project Summary/Abstract", PageFrom: 2},
		{
			Title:    "R&R Other Project Information",
			PageFrom: 4,
			Kids: []pdfcpu.Bookmark{
				{Title: "Facilities & Other Resources", PageFrom: 6},
				{
					Title:    "Equipment",
					PageFrom: 9,
					Kids: []pdfcpu.Bookmark{
						{Title: "Major Instrumentation", PageFrom: 9},
					},
				},
			},
		},
		{Title: "Research Strategy", PageFrom: 12},
	}

	entries := flattenBookmarks(bookmarks, 1)

	want := []OutlineEntry{
		{Level: 1, Title: "Project Summary/Abstract", Page: 2},
		{Level: 1, Title: "R&R Other Project Information", Page: 4},
		{Level: 2, Title: "Facilities & Other Resources", Page: 6},
		{Level: 2, Title: "Equipment", Page: 9},
		{Level: 3, Title: "Major Instrumentation", Page: 9},
		{Level: 1, Title: "Research Strategy", Page: 12},
	}

	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestFlattenBookmarksEmpty(t *testing.T) {
	if entries := flattenBookmarks(nil, 1); len(entries) != 0 {
		t.Errorf("flattenBookmarks(nil) = %+v, want none", entries)
	}
}
