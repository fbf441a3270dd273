package extraction

import (
	"github.com/otiai10/gosseract/v2"
)

// ocrLanguages is the fixed two-language OCR model: simplified Chinese plus
// English. Multi-language tuning beyond this pair is out of scope.
var ocrLanguages = []string{"chi_sim", "eng"}

// extractImage runs optical character recognition over a raster image and
// returns the recognized text verbatim, with no post-cleanup.
func extractImage(doc *SourceDocument) (string, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(ocrLanguages...); err != nil {
		return "", &ExtractionError{Name: doc.Name, Message: "failed to configure OCR languages", Cause: err}
	}
	if err := client.SetImageFromBytes(doc.Bytes()); err != nil {
		return "", &ExtractionError{Name: doc.Name, Message: "failed to decode image", Cause: err}
	}

	text, err := client.Text()
	if err != nil {
		return "", &ExtractionError{Name: doc.Name, Message: "OCR recognition failed", Cause: err}
	}
	return text, nil
}
