package document

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// OutlineEntry is one navigable table-of-contents entry: nesting level
// (1-based), title, and the 1-based page it points at.
type OutlineEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// readOutline loads the document outline via pdfcpu and flattens it into
// document order.
func readOutline(rs io.ReadSeeker) ([]OutlineEntry, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	bookmarks, err := api.Bookmarks(rs, conf)
	if err != nil {
		// Outline-less documents are legal; every section lookup against
		// them resolves as not found.
		return nil, nil
	}

	return flattenBookmarks(bookmarks, 1), nil
}

// flattenBookmarks converts the nested bookmark tree into an ordered flat
// list, depth-first, matching the reading order of the outline panel.
func flattenBookmarks(bookmarks []pdfcpu.Bookmark, level int) []OutlineEntry {
	var entries []OutlineEntry
	for _, bm := range bookmarks {
		entries = append(entries, OutlineEntry{
			Level: level,
			Title: bm.Title,
			Page:  bm.PageFrom,
		})
		if len(bm.Kids) > 0 {
			entries = append(entries, flattenBookmarks(bm.Kids, level+1)...)
		}
	}
	return entries
}
