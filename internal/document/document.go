package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// StyledRun is a contiguous text fragment sharing one font face and size,
// scoped to a single page and never shared across pages.
type StyledRun struct {
	Text string  `json:"text"`
	Font string  `json:"font"`
	Size float64 `json:"size"`
}

// Bold reports whether the run is rendered in a bold font face. Grant
// application PDFs encode emphasis in the face name rather than in
// separate style flags.
func (r StyledRun) Bold() bool {
	return strings.Contains(r.Font, "Bold")
}

// Italic reports whether the run is rendered in an italic or oblique face.
func (r StyledRun) Italic() bool {
	return strings.Contains(r.Font, "Italic") || strings.Contains(r.Font, "Oblique")
}

// Document is the read-only view of an application PDF consumed by section
// resolution, content extraction and rule evaluation. Page numbers are
// 1-based on this interface; conversion to the underlying page store
// happens inside the implementation and nowhere else.
type Document interface {
	PageCount() int
	Text(page int) (string, error)
	StyledRuns(page int) ([]StyledRun, error)
	Outline() []OutlineEntry
}

// OpenError reports a document that could not be opened or parsed. It is
// fatal to the validation run that requested the document.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// File is a Document backed by a PDF on disk. The opening validation run
// owns it exclusively and must Close it on every exit path.
type File struct {
	path      string
	file      *os.File
	reader    *pdf.Reader
	outline   []OutlineEntry
	textCache map[int]string
}

// Open opens and parses the PDF at path. A maxFileSize of 0 disables the
// size limit.
func Open(path string, maxFileSize int64) (*File, error) {
	if path == "" {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("path cannot be empty")}
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file does not exist")}
	}
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("path is a directory, not a file")}
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file is not a PDF")}
	}
	if info.Size() == 0 {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file is empty")}
	}
	if maxFileSize > 0 && info.Size() > maxFileSize {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			info.Size(), maxFileSize)}
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("invalid PDF file: %w", err)}
	}

	outline, err := readOutline(f)
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: fmt.Errorf("failed to read outline: %w", err)}
	}

	return &File{
		path:      path,
		file:      f,
		reader:    reader,
		outline:   outline,
		textCache: make(map[int]string),
	}, nil
}

// Close releases the underlying file handle.
func (d *File) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// Path returns the file path the document was opened from.
func (d *File) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *File) PageCount() int {
	return d.reader.NumPage()
}

// Outline returns the document's table of contents in document order. A
// document without an outline yields an empty slice.
func (d *File) Outline() []OutlineEntry {
	return d.outline
}

// Text returns the plain text of the given 1-based page. Results are
// cached; repeated rule evaluation over the same page does not re-extract.
func (d *File) Text(page int) (string, error) {
	if err := d.checkPage(page); err != nil {
		return "", err
	}
	if text, ok := d.textCache[page]; ok {
		return text, nil
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		d.textCache[page] = ""
		return "", nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", page, err)
	}

	d.textCache[page] = text
	return text, nil
}

// StyledRuns returns the styled text fragments of the given 1-based page
// in document order.
func (d *File) StyledRuns(page int) (runs []StyledRun, err error) {
	if err := d.checkPage(page); err != nil {
		return nil, err
	}

	// Content parsing panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read styled content of page %d: %v", page, r)
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}

	for _, t := range p.Content().Text {
		runs = append(runs, StyledRun{
			Text: t.S,
			Font: t.Font,
			Size: t.FontSize,
		})
	}
	return runs, nil
}

func (d *File) checkPage(page int) error {
	if d.file == nil {
		return fmt.Errorf("document is closed")
	}
	if page < 1 || page > d.reader.NumPage() {
		return fmt.Errorf("invalid page number %d (document has %d pages)", page, d.reader.NumPage())
	}
	return nil
}
