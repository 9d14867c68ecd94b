package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents an account holder
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Onboarding holds a user's intake questionnaire answers. One row per
// user; completing the flow again overwrites the previous answers.
type Onboarding struct {
	UserID             uuid.UUID `json:"userId"`
	YearsExperience    *float64  `json:"yearsExperience,omitempty"`
	Industry           *string   `json:"industry,omitempty"`
	CurrentRole        *string   `json:"currentRole,omitempty"`
	BiggestStressor    *string   `json:"biggestStressor,omitempty"`
	TopConstraint      *string   `json:"topConstraint,omitempty"`
	CareerGoals        *string   `json:"careerGoals,omitempty"`
	PreferredWorkStyle *string   `json:"preferredWorkStyle,omitempty"`
	SkillLevel         *string   `json:"skillLevel,omitempty"`
	LearningStyle      *string   `json:"learningStyle,omitempty"`
	Completed          bool      `json:"completed"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Job application pipeline statuses, in funnel order.
const (
	ApplicationStatusWishlist     = "wishlist"
	ApplicationStatusApplied      = "applied"
	ApplicationStatusInterviewing = "interviewing"
	ApplicationStatusOffer        = "offer"
	ApplicationStatusRejected     = "rejected"
	ApplicationStatusAccepted     = "accepted"
)

// JobApplication is one tracked posting in the user's search pipeline.
type JobApplication struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	Company        string     `json:"company"`
	Role           string     `json:"role"`
	JobURL         *string    `json:"jobUrl,omitempty"`
	JobBoard       *string    `json:"jobBoard,omitempty"`
	Status         string     `json:"status"`
	AppliedDate    *time.Time `json:"appliedDate,omitempty"`
	NextActionDate *time.Time `json:"nextActionDate,omitempty"`
	NextAction     *string    `json:"nextAction,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// EscapePlanRecord is a persisted generation result: the input the user
// submitted and the plan that came back, with its provenance. Source holds
// the escapeplan package's source values.
type EscapePlanRecord struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Source    string          `json:"source"`
	Input     json.RawMessage `json:"input"`
	Plan      json.RawMessage `json:"plan"`
	CreatedAt time.Time       `json:"createdAt"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return fmt.Errorf("unsupported StringArray source type %T", src)
	}
	return json.Unmarshal(source, (*[]string)(a))
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(a))
}
