package extraction

import "fmt"

// ExtractionError represents a failure to read or parse one source document.
// It is non-fatal to the overall run: the caller reports it per document and
// continues with the remaining documents.
type ExtractionError struct {
	Name    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Name, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
