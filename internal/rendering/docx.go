package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Styling for the generated résumé document. Sizes are OOXML half-points.
const (
	docFont          = "微软雅黑"
	docFontSize      = 22 // 11pt body text
	heading1FontSize = 32
	heading2FontSize = 28
	heading3FontSize = 24
)

// bulletNumID is the numbering instance bullets reference in numbering.xml.
const bulletNumID = 1

// CompileToDocx classifies md and writes the resulting document in one step.
func CompileToDocx(md string) ([]byte, error) {
	return WriteDocx(CompileMarkdown(md))
}

// WriteDocx assembles the classified blocks into a complete .docx archive.
// The returned bytes are position-independent and can be written to a file or
// served for download as-is.
func WriteDocx(blocks []Block) ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML()},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", documentXML(blocks)},
	}
	for _, part := range parts {
		w, err := archive.Create(part.name)
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("create archive entry %s", part.name), Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("write archive entry %s", part.name), Cause: err}
		}
	}

	if err := archive.Close(); err != nil {
		return nil, &RenderError{Message: "finalize archive", Cause: err}
	}
	return buf.Bytes(), nil
}

// documentXML renders the main document part. Each block becomes exactly one
// w:p, in input order.
func documentXML(blocks []Block) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, block := range blocks {
		sb.WriteString("<w:p><w:pPr>")
		switch block.Type {
		case BlockHeading1:
			sb.WriteString(`<w:pStyle w:val="Heading1"/><w:jc w:val="center"/>`)
		case BlockHeading2:
			sb.WriteString(`<w:pStyle w:val="Heading2"/>`)
		case BlockHeading3:
			sb.WriteString(`<w:pStyle w:val="Heading3"/>`)
		case BlockBullet:
			fmt.Fprintf(&sb, `<w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, bulletNumID)
		}
		sb.WriteString("</w:pPr><w:r>")
		fmt.Fprintf(&sb, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(block.Text))
		sb.WriteString("</w:r></w:p>")
	}

	sb.WriteString(`<w:sectPr/></w:body></w:document>`)
	return sb.String()
}

func stylesXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	fmt.Fprintf(&sb, `<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%[1]s" w:eastAsia="%[1]s" w:hAnsi="%[1]s"/><w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/></w:rPr></w:rPrDefault></w:docDefaults>`,
		docFont, docFontSize)

	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)
	for level, size := range []int{heading1FontSize, heading2FontSize, heading3FontSize} {
		fmt.Fprintf(&sb, `<w:style w:type="paragraph" w:styleId="Heading%[1]d"><w:name w:val="heading %[1]d"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="%[2]d"/></w:pPr><w:rPr><w:b/><w:sz w:val="%[3]d"/><w:szCs w:val="%[3]d"/></w:rPr></w:style>`,
			level+1, level, size)
	}
	sb.WriteString(`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720"/></w:pPr></w:style>`)

	sb.WriteString(`</w:styles>`)
	return sb.String()
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/><Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/></Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/></Relationships>`

const numberingXML = xml.Header + `<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum><w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num></w:numbering>`

func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
