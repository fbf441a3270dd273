package extraction

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the page sequence and concatenates non-empty page texts in
// page order, each followed by a newline. A page with no extractable text is
// skipped, not an error.
func extractPDF(doc *SourceDocument) (string, error) {
	reader, err := pdf.NewReader(doc.r, doc.Size())
	if err != nil {
		return "", &ExtractionError{Name: doc.Name, Message: "failed to read pdf", Cause: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil || content == "" {
			// Treat an undecodable page the same as an empty one.
			continue
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}

	return b.String(), nil
}
