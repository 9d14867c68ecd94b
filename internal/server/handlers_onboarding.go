package server

import (
	"encoding/json"
	"net/http"

	"github.com/charlie2bored/shftrr/internal/db"
	"github.com/charlie2bored/shftrr/internal/sanitize"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
)

// OnboardingRequest is the intake questionnaire payload. Every answer is
// optional so users can skip questions.
type OnboardingRequest struct {
	YearsExperience    *float64 `json:"yearsExperience,omitempty"`
	Industry           string   `json:"industry,omitempty"`
	CurrentRole        string   `json:"currentRole,omitempty"`
	BiggestStressor    string   `json:"biggestStressor,omitempty"`
	TopConstraint      string   `json:"topConstraint,omitempty"`
	CareerGoals        string   `json:"careerGoals,omitempty"`
	PreferredWorkStyle string   `json:"preferredWorkStyle,omitempty"`
	SkillLevel         string   `json:"skillLevel,omitempty"`
	LearningStyle      string   `json:"learningStyle,omitempty"`
}

// OnboardingResponse wraps the stored record with its completion flag.
type OnboardingResponse struct {
	Onboarding *db.Onboarding `json:"onboarding"`
	Completed  bool           `json:"completed"`
}

// handleSaveOnboarding stores the intake answers, marking the flow complete.
func (s *Server) handleSaveOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.YearsExperience != nil && *req.YearsExperience < 0 {
		s.errorResponse(w, http.StatusBadRequest, "yearsExperience must be non-negative")
		return
	}

	record := &db.Onboarding{
		UserID:             userID,
		YearsExperience:    req.YearsExperience,
		Industry:           optionalText(req.Industry),
		CurrentRole:        optionalText(req.CurrentRole),
		BiggestStressor:    optionalText(req.BiggestStressor),
		TopConstraint:      optionalText(req.TopConstraint),
		CareerGoals:        optionalText(req.CareerGoals),
		PreferredWorkStyle: optionalText(req.PreferredWorkStyle),
		SkillLevel:         optionalText(req.SkillLevel),
		LearningStyle:      optionalText(req.LearningStyle),
	}

	saved, err := s.db.UpsertOnboarding(r.Context(), record)
	if err != nil {
		s.logger.Error("failed to save onboarding", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":    "Onboarding completed successfully",
		"onboarding": saved,
	})
}

// handleGetOnboarding returns the user's stored answers, if any.
func (s *Server) handleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	record, err := s.db.GetOnboarding(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to get onboarding", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, OnboardingResponse{
		Onboarding: record,
		Completed:  record != nil && record.Completed,
	})
}

// optionalText sanitizes free text and returns nil for empty answers.
func optionalText(v string) *string {
	cleaned := sanitize.Text(v)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
