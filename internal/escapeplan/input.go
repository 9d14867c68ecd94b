package escapeplan

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/charlie2bored/shftrr/internal/types"
)

var inputValidator = validator.New()

// ValidateInput checks the payload against the input-model contract and
// normalizes it in place. An empty employment status defaults to
// "employed"; any other violation rejects the request with a
// *ValidationError before the pipeline runs. Savings stays nil when the
// caller never provided it.
func ValidateInput(in *types.EscapePlanInput) error {
	if in == nil {
		return &ValidationError{Issues: []string{"input is required"}}
	}

	if in.UserProfile.EmploymentStatus == "" {
		in.UserProfile.EmploymentStatus = types.EmploymentStatusEmployed
	}

	if err := inputValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			issues := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				issues = append(issues, describeFieldError(fe))
			}
			return &ValidationError{Issues: issues}
		}
		return &ValidationError{Issues: []string{err.Error()}}
	}

	return nil
}

// describeFieldError turns a validator field error into a caller-facing
// message. The namespace is trimmed of the root struct name so messages
// read like "FinancialData.MonthlyExpenses is required".
func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := len("EscapePlanInput."); len(field) > idx && field[:idx] == "EscapePlanInput." {
		field = field[idx:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be non-negative", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
