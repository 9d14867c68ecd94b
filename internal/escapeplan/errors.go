// Package escapeplan implements the escape-plan generation pipeline:
// input validation, prompt compilation, AI response validation, the
// deterministic fallback generator, and the orchestrator tying them
// together.
package escapeplan

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected input payload. It is the only error
// the pipeline ever surfaces to callers; everything downstream of a valid
// input degrades to the fallback plan instead of failing.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid escape-plan input: %s", strings.Join(e.Issues, "; "))
}

// GenerationError indicates the AI gateway call itself failed: network
// error, non-2xx response, or a response with no usable text.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("ai generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the model's text was not parseable JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("ai response is not valid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaValidationError indicates parseable JSON that does not conform to
// the escape-plan output schema.
type SchemaValidationError struct {
	Err error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("ai response failed schema validation: %v", e.Err)
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// failureKind names the error class for server-side logging. The caller
// never sees these; the orchestrator converts all of them into a fallback.
func failureKind(err error) string {
	switch err.(type) {
	case *GenerationError:
		return "generation"
	case *MalformedResponseError:
		return "malformed_response"
	case *SchemaValidationError:
		return "schema_validation"
	default:
		return "unknown"
	}
}
