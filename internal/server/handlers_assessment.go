package server

import (
	"encoding/json"
	"net/http"

	"github.com/charlie2bored/shftrr/internal/assessment"
	"github.com/charlie2bored/shftrr/internal/sanitize"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
)

// AssessmentRequest carries the diagnostic questionnaire answers. Every
// field is optional; scores are on a 1-10 scale.
type AssessmentRequest struct {
	CareerSatisfaction *int            `json:"careerSatisfaction,omitempty"`
	BurnoutLevel       *int            `json:"burnoutLevel,omitempty"`
	RiskTolerance      string          `json:"riskTolerance,omitempty"`
	FinancialReadiness string          `json:"financialReadiness,omitempty"`
	TimelinePreference string          `json:"timelinePreference,omitempty"`
	FamilySituation    json.RawMessage `json:"familySituation,omitempty"`
	SkillsGaps         []string        `json:"skillsGaps,omitempty"`
	IndustryInterests  []string        `json:"industryInterests,omitempty"`
	MotivationFactors  []string        `json:"motivationFactors,omitempty"`
}

func validScore(v *int) bool {
	return v == nil || (*v >= 1 && *v <= 10)
}

// handleGetAssessment returns the user's latest diagnostic assessment,
// or a null assessment when none was ever recorded.
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	rec, err := s.db.GetLatestAssessment(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to get assessment", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"assessment": rec,
		"completed":  rec != nil,
	})
}

// handleSaveAssessment records a new diagnostic assessment result.
func (s *Server) handleSaveAssessment(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !validScore(req.CareerSatisfaction) || !validScore(req.BurnoutLevel) {
		s.errorResponse(w, http.StatusBadRequest, "Scores must be between 1 and 10")
		return
	}

	rec := &assessment.Record{
		UserID:             userID,
		CareerSatisfaction: req.CareerSatisfaction,
		BurnoutLevel:       req.BurnoutLevel,
		RiskTolerance:      sanitize.Text(req.RiskTolerance),
		FinancialReadiness: sanitize.Text(req.FinancialReadiness),
		TimelinePreference: sanitize.Text(req.TimelinePreference),
		FamilySituation:    req.FamilySituation,
		SkillsGaps:         sanitize.Texts(req.SkillsGaps),
		IndustryInterests:  sanitize.Texts(req.IndustryInterests),
		MotivationFactors:  sanitize.Texts(req.MotivationFactors),
	}

	saved, err := s.db.SaveAssessment(r.Context(), rec)
	if err != nil {
		s.logger.Error("failed to save assessment", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"assessment": saved,
		"message":    "Assessment saved successfully",
	})
}
