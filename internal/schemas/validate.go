// Package schemas provides JSON Schema validation for the matching-service
// response before it is decoded into typed records.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed match_report.schema.json
var matchReportSchema string

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every schema violation found in one pass, so a
// malformed response can be diagnosed completely instead of one field at a
// time. It is fatal to the analysis run that produced it.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("report validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Add appends a violation.
func (ve *ValidationError) Add(field, message string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Message: message})
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load match report schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load match report schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateMatchReportJSON validates raw response bytes against the embedded
// match report schema. On violation it returns a *ValidationError carrying
// every failure found.
func ValidateMatchReportJSON(raw []byte) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(matchReportSchema))
	if err != nil {
		return &SchemaLoadError{Message: "invalid embedded schema", Cause: err}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// Malformed document JSON also surfaces here; report it as a
		// single root-level violation rather than a schema problem.
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: fmt.Sprintf("response is not a valid JSON object: %v", err),
		}}}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Add(field, desc.Description())
	}
	return validationErr
}
