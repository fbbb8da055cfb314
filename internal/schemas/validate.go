// Package schemas provides JSON Schema validation for generative model output.
// Model responses are validated against a schema before decoding so that a
// malformed response is a single well-defined failure, not a scattering of
// zero values.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// scoreResultSchema describes the expected scoring response:
// {"score": number, "reasons": [string, ...]}.
const scoreResultSchema = `{
  "type": "object",
  "required": ["score"],
  "properties": {
    "score": {"type": "number"},
    "reasons": {"type": "array", "items": {"type": "string"}}
  }
}`

// candidateFactsSchema describes the expected resume extraction response.
// Only the name is required; every other field degrades to its zero value.
const candidateFactsSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": ["string", "null"]},
    "skills": {"type": "array", "items": {"type": "string"}},
    "experience_years": {"type": "number"},
    "education": {"type": "string"},
    "summary": {"type": "string"}
  }
}`

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateScoreResult validates a scoring response body.
func ValidateScoreResult(jsonContent string) error {
	return validateAgainst(scoreResultSchema, jsonContent)
}

// ValidateCandidateFacts validates a resume extraction response body.
func ValidateCandidateFacts(jsonContent string) error {
	return validateAgainst(candidateFactsSchema, jsonContent)
}

func validateAgainst(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
