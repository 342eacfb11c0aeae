package report

import (
	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/profile"
)

// Validate is the single synchronous call exposed to external
// collaborators: it opens the referenced document, runs the referenced
// profile against it, and releases the document handle on every exit
// path. It knows nothing about users, tokens, or queues.
func Validate(documentRef, profileRef string, maxFileSize int64) (*Report, error) {
	prof, err := profile.Resolve(profileRef)
	if err != nil {
		return nil, err
	}

	doc, err := document.Open(documentRef, maxFileSize)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return NewRunner(false).RunProfileNamed(doc, prof, documentRef)
}
