package extraction

import (
	"encoding/xml"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// extractDocx reads the paragraph sequence of a Word document in document
// order and joins paragraph texts with newlines. Tables, images, and other
// non-text elements are ignored.
func extractDocx(doc *SourceDocument) (string, error) {
	rd, err := docx.ReadDocxFromMemory(doc.r, doc.Size())
	if err != nil {
		return "", &ExtractionError{Name: doc.Name, Message: "failed to parse word document", Cause: err}
	}
	defer func() { _ = rd.Close() }()

	paragraphs := paragraphTexts(rd.Editable().GetContent())
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphTexts walks the WordprocessingML body and collects the character
// data of each w:p element, including empty paragraphs, in document order.
// Text inside table cells is nested under w:tbl rather than directly in the
// body paragraphs we care about, but since tables wrap their own w:p elements
// the walk skips any paragraph opened while inside a w:tbl.
func paragraphTexts(documentXML string) []string {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		tableDepth int
	)

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inPara = true
					current.Reset()
				}
			}
		case xml.CharData:
			if inPara && tableDepth == 0 {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "p":
				if inPara && tableDepth == 0 {
					inPara = false
					paragraphs = append(paragraphs, current.String())
				}
			}
		}
	}

	return paragraphs
}
