// Package assessment holds the diagnostic assessment record that, when
// present for a user, is appended to the escape-plan prompt as extra
// context. The pipeline only ever reads these records.
package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is a previously persisted diagnostic questionnaire result.
// Every field is optional; absent answers render as "Not assessed".
type Record struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	CareerSatisfaction *int            `json:"career_satisfaction,omitempty"`
	BurnoutLevel       *int            `json:"burnout_level,omitempty"`
	RiskTolerance      string          `json:"risk_tolerance,omitempty"`
	FinancialReadiness string          `json:"financial_readiness,omitempty"`
	TimelinePreference string          `json:"timeline_preference,omitempty"`
	FamilySituation    json.RawMessage `json:"family_situation,omitempty"`
	SkillsGaps         []string        `json:"skills_gaps,omitempty"`
	IndustryInterests  []string        `json:"industry_interests,omitempty"`
	MotivationFactors  []string        `json:"motivation_factors,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PromptSection renders the record as the prompt block the model reads.
// Output is deterministic for a fixed record.
func (r *Record) PromptSection() string {
	var sb strings.Builder
	sb.WriteString("\n\nDIAGNOSTIC ASSESSMENT RESULTS:\n")
	sb.WriteString("- Career Satisfaction: " + scoreOrNotAssessed(r.CareerSatisfaction) + "\n")
	sb.WriteString("- Burnout Level: " + scoreOrNotAssessed(r.BurnoutLevel) + "\n")
	sb.WriteString("- Risk Tolerance: " + textOrNotAssessed(r.RiskTolerance) + "\n")
	sb.WriteString("- Financial Readiness: " + textOrNotAssessed(r.FinancialReadiness) + "\n")
	sb.WriteString("- Timeline Preference: " + textOrNotAssessed(r.TimelinePreference) + "\n")
	sb.WriteString("- Family Situation: " + familyOrNotProvided(r.FamilySituation) + "\n")
	sb.WriteString("- Skills Gaps: " + listOrNotAssessed(r.SkillsGaps) + "\n")
	sb.WriteString("- Industry Interests: " + listOrNotAssessed(r.IndustryInterests) + "\n")
	sb.WriteString("- Motivation Factors: " + listOrNotAssessed(r.MotivationFactors))
	return sb.String()
}

func scoreOrNotAssessed(v *int) string {
	if v == nil {
		return "Not assessed/10"
	}
	return fmt.Sprintf("%d/10", *v)
}

func textOrNotAssessed(s string) string {
	if s == "" {
		return "Not assessed"
	}
	return s
}

func listOrNotAssessed(items []string) string {
	if len(items) == 0 {
		return "Not assessed"
	}
	return strings.Join(items, ", ")
}

func familyOrNotProvided(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "Not provided"
	}
	return string(raw)
}
