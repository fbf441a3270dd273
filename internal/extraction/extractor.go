// Package extraction normalizes uploaded documents (PDF, Word, plain text,
// images via OCR) into a single text representation.
package extraction

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// SourceDocument is one uploaded document: raw bytes plus a declared kind.
// The kind is the lower-cased file extension without the dot. A document is
// consumed by a single Extract call; the internal read cursor is reset before
// dispatch so repeated Extract calls are safe.
type SourceDocument struct {
	Name string
	Kind string
	data []byte
	r    *bytes.Reader
}

// NewSourceDocument builds a SourceDocument, deriving the kind from the
// file name's extension.
func NewSourceDocument(name string, data []byte) *SourceDocument {
	kind := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return NewSourceDocumentWithKind(name, kind, data)
}

// NewSourceDocumentWithKind builds a SourceDocument with an explicit kind tag.
// The tag is normalized to lower case.
func NewSourceDocumentWithKind(name, kind string, data []byte) *SourceDocument {
	return &SourceDocument{
		Name: name,
		Kind: strings.ToLower(strings.TrimSpace(kind)),
		data: data,
		r:    bytes.NewReader(data),
	}
}

// Bytes returns the raw document content.
func (d *SourceDocument) Bytes() []byte { return d.data }

// Size returns the raw content length in bytes.
func (d *SourceDocument) Size() int64 { return int64(len(d.data)) }

// imageKinds are the raster formats routed to OCR.
var imageKinds = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"bmp":  true,
	"tiff": true,
	"gif":  true,
}

// SupportedKinds returns the kinds with a dedicated extractor. Any other kind
// falls through to a best-effort UTF-8 decode.
func SupportedKinds() []string {
	return []string{"pdf", "docx", "doc", "txt", "png", "jpg", "jpeg", "bmp", "tiff", "gif"}
}

// Extract converts a document into normalized text, dispatching on its kind:
//
//  1. pdf: page texts joined in page order, each followed by a newline;
//     pages yielding no text are silently skipped.
//  2. docx/doc: paragraph texts in document order joined with newlines;
//     non-text elements are ignored.
//  3. txt: UTF-8 decode; invalid bytes degrade to empty text.
//  4. image kinds: OCR with the fixed chi_sim+eng model, returned verbatim.
//  5. anything else: best-effort UTF-8 decode, empty on failure.
//
// Every failure is returned as an *ExtractionError; Extract never panics past
// its boundary.
func Extract(doc *SourceDocument) (text string, err error) {
	// ledongthuc/pdf panics on some malformed cross-reference tables.
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = &ExtractionError{
				Name:    doc.Name,
				Message: fmt.Sprintf("parser panic: %v", p),
			}
		}
	}()

	// Rewind so a document handed out for preview can be extracted again.
	if _, serr := doc.r.Seek(0, io.SeekStart); serr != nil {
		return "", &ExtractionError{Name: doc.Name, Message: "failed to rewind document", Cause: serr}
	}

	switch {
	case doc.Kind == "pdf":
		return extractPDF(doc)
	case doc.Kind == "docx" || doc.Kind == "doc":
		return extractDocx(doc)
	case doc.Kind == "txt":
		return decodePlainText(doc.data), nil
	case imageKinds[doc.Kind]:
		return extractImage(doc)
	default:
		return decodePlainText(doc.data), nil
	}
}

// decodePlainText interprets raw bytes as UTF-8. Invalid input degrades to
// empty text rather than failing the caller.
func decodePlainText(data []byte) string {
	if !utf8.Valid(data) {
		return ""
	}
	return string(data)
}
