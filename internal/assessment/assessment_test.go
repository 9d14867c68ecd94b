package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPromptSection_FullRecord(t *testing.T) {
	rec := &Record{
		CareerSatisfaction: intPtr(3),
		BurnoutLevel:       intPtr(8),
		RiskTolerance:      "moderate",
		FinancialReadiness: "building",
		TimelinePreference: "12 months",
		FamilySituation:    json.RawMessage(`{"dependents":2}`),
		SkillsGaps:         []string{"SQL", "public speaking"},
		IndustryInterests:  []string{"healthcare"},
		MotivationFactors:  []string{"autonomy", "impact"},
	}

	section := rec.PromptSection()
	assert.Contains(t, section, "DIAGNOSTIC ASSESSMENT RESULTS:")
	assert.Contains(t, section, "Career Satisfaction: 3/10")
	assert.Contains(t, section, "Burnout Level: 8/10")
	assert.Contains(t, section, "Risk Tolerance: moderate")
	assert.Contains(t, section, `Family Situation: {"dependents":2}`)
	assert.Contains(t, section, "Skills Gaps: SQL, public speaking")
	assert.Contains(t, section, "Motivation Factors: autonomy, impact")
}

func TestPromptSection_EmptyRecord(t *testing.T) {
	rec := &Record{}

	section := rec.PromptSection()
	assert.Contains(t, section, "Career Satisfaction: Not assessed/10")
	assert.Contains(t, section, "Risk Tolerance: Not assessed")
	assert.Contains(t, section, "Family Situation: Not provided")
	assert.Contains(t, section, "Skills Gaps: Not assessed")
}

func TestPromptSection_Deterministic(t *testing.T) {
	rec := &Record{RiskTolerance: "high", SkillsGaps: []string{"Go"}}
	assert.Equal(t, rec.PromptSection(), rec.PromptSection())
}
