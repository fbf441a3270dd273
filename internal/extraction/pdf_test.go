package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a minimal uncompressed PDF with one page per text,
// tracking byte offsets so the cross-reference table is valid.
func buildPDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()

	var b strings.Builder
	offsets := make([]int, 0, 3+2*len(pageTexts))

	writeObj := func(body string) {
		offsets = append(offsets, b.Len())
		b.WriteString(body)
	}

	b.WriteString("%PDF-1.4\n")

	// Object numbering: 1 catalog, 2 pages, 3 font, then page/content pairs.
	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n")

	for i, text := range pageTexts {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)

		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageNum, contentNum))
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentNum, len(stream), stream))
	}

	xrefOffset := b.Len()
	b.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)+1))
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		b.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	b.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset))

	return []byte(b.String())
}

func TestExtract_PDFJoinsPagesInOrder(t *testing.T) {
	doc := NewSourceDocument("resume.pdf", buildPDF(t, []string{"Page one", "Page two", "Page three"}))

	text, err := Extract(doc)
	require.NoError(t, err)

	first := strings.Index(text, "Page one")
	second := strings.Index(text, "Page two")
	third := strings.Index(text, "Page three")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	require.Greater(t, third, second)

	// Each non-empty page contributes one newline-terminated segment.
	assert.Equal(t, 3, strings.Count(text, "\n"))
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestExtract_PDFSinglePage(t *testing.T) {
	doc := NewSourceDocument("one.pdf", buildPDF(t, []string{"Hello resume"}))

	text, err := Extract(doc)
	require.NoError(t, err)
	assert.Contains(t, text, "Hello resume")
}
