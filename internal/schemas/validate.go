// Package schemas provides JSON Schema validation for the generative-service
// response contract. Any deviation from the fixed schema is a validation
// failure, never a partial success.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed tailored_content.json
var tailoredContentSchema string

//go:embed interview_prep.json
var interviewPrepSchema string

// embeddedSchema compiles its source once; the compiled schema is immutable
// afterwards and safe for concurrent use.
type embeddedSchema struct {
	name   string
	source string

	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

var (
	tailoredContent = &embeddedSchema{name: "tailored content", source: tailoredContentSchema}
	interviewPrep   = &embeddedSchema{name: "interview prep", source: interviewPrepSchema}
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateTailoredContent checks a generative-service response against the
// fixed content schema. It returns nil only for strictly well-formed JSON
// matching the schema exactly.
func ValidateTailoredContent(jsonText string) error {
	return validate(tailoredContent, jsonText)
}

// ValidateInterviewPrep checks a generative-service response against the
// fixed interview prep schema.
func ValidateInterviewPrep(jsonText string) error {
	return validate(interviewPrep, jsonText)
}

func validate(es *embeddedSchema, jsonText string) error {
	schema, err := es.load()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		// Not valid JSON at all
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: err.Error(),
		}}}
	}

	if result.Valid() {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return &ValidationError{Errors: fieldErrors}
}

func (es *embeddedSchema) load() (*gojsonschema.Schema, error) {
	es.once.Do(func() {
		es.schema, es.err = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(es.source))
		if es.err != nil {
			es.err = &SchemaLoadError{
				Message: fmt.Sprintf("invalid embedded %s schema", es.name),
				Cause:   es.err,
			}
		}
	})
	return es.schema, es.err
}
