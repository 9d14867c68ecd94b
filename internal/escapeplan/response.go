package escapeplan

import (
	_ "embed"
	"encoding/json"
	"time"

	"github.com/charlie2bored/shftrr/internal/schemas"
	"github.com/charlie2bored/shftrr/internal/types"
)

//go:embed escape_plan.schema.json
var outputSchemaJSON string

// OutputSchemaJSON returns the JSON Schema document every generated plan
// must satisfy. The same document is embedded verbatim into the prompt so
// the model and the validator agree on the contract.
func OutputSchemaJSON() string {
	return outputSchemaJSON
}

// ParseResponse turns a raw model response into a validated plan. It fails
// with MalformedResponseError when the text is not JSON at all and with
// SchemaValidationError when the JSON does not satisfy the plan schema.
// The generatedAt timestamp is stamped here, after validation, so the
// model does not control it.
func ParseResponse(raw string, now time.Time) (*types.EscapePlanOutput, error) {
	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	if err := schemas.ValidateJSONString(outputSchemaJSON, raw); err != nil {
		return nil, &SchemaValidationError{Err: err}
	}

	var out types.EscapePlanOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// Schema-valid JSON that still cannot decode means the schema and
		// the Go types have drifted apart.
		return nil, &SchemaValidationError{Err: err}
	}

	out.GeneratedAt = now.UTC().Format(time.RFC3339)
	return &out, nil
}
