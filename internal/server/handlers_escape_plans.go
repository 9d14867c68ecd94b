package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/charlie2bored/shftrr/internal/escapeplan"
	"github.com/charlie2bored/shftrr/internal/sanitize"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
	"github.com/charlie2bored/shftrr/internal/types"
)

// sanitizeEscapePlanInput scrubs every free-text field before the input
// reaches the prompt compiler. Numeric and enum fields pass through.
func sanitizeEscapePlanInput(in *types.EscapePlanInput) {
	if in == nil {
		return
	}
	if in.UserProfile.CurrentJobTitle != nil {
		cleaned := sanitize.Text(*in.UserProfile.CurrentJobTitle)
		in.UserProfile.CurrentJobTitle = &cleaned
	}
	in.UserProfile.DailyVents = sanitize.Texts(in.UserProfile.DailyVents)
	if in.UserProfile.Education != nil {
		in.UserProfile.Education.Degrees = sanitize.Texts(in.UserProfile.Education.Degrees)
		in.UserProfile.Education.Certifications = sanitize.Texts(in.UserProfile.Education.Certifications)
		in.UserProfile.Education.HighestEducation = sanitize.Text(in.UserProfile.Education.HighestEducation)
	}
	in.Skills.TechnicalSkills = sanitize.Texts(in.Skills.TechnicalSkills)
	in.Skills.SoftSkills = sanitize.Texts(in.Skills.SoftSkills)
	in.Skills.Certifications = sanitize.Texts(in.Skills.Certifications)
	if in.CareerGoals != nil {
		in.CareerGoals.DesiredField = sanitize.Text(in.CareerGoals.DesiredField)
		in.CareerGoals.DesiredJobTitle = sanitize.Text(in.CareerGoals.DesiredJobTitle)
		in.CareerGoals.CareerInterests = sanitize.Texts(in.CareerGoals.CareerInterests)
	}
}

// handleGeneratePlan runs the full generation pipeline and persists the
// result. The user's latest diagnostic assessment, when one exists, is
// folded into the prompt.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var in types.EscapePlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	sanitizeEscapePlanInput(&in)

	rec, err := s.db.GetLatestAssessment(r.Context(), userID)
	if err != nil {
		// The assessment only enriches the prompt; generation proceeds without it.
		s.logger.Warn("failed to load assessment for plan generation", "error", err)
		rec = nil
	}

	plan, source, err := s.generator.Generate(r.Context(), &in, rec)
	if err != nil {
		var verr *escapeplan.ValidationError
		if errors.As(err, &verr) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "Invalid escape plan input",
				"issues": verr.Issues,
			})
			return
		}
		s.logger.Error("failed to generate escape plan", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	saved, err := s.db.SaveEscapePlan(r.Context(), userID, source, &in, plan)
	if err != nil {
		// The plan is already generated; losing the record is not worth a 500.
		s.logger.Error("failed to persist escape plan", "error", err)
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"plan":   plan,
			"source": source,
		})
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":        saved.ID,
		"plan":      plan,
		"source":    source,
		"createdAt": saved.CreatedAt,
	})
}

// handleListPlans returns the user's stored plans, newest first.
func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	plans, err := s.db.ListEscapePlans(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list escape plans", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"plans": plans,
		"total": len(plans),
	})
}

// handleGetPlan returns one stored plan by ID.
func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	plan, err := s.db.GetEscapePlan(r.Context(), id, userID)
	if err != nil {
		s.logger.Error("failed to get escape plan", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if plan == nil {
		s.notFoundResponse(w, "Plan")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"plan": plan})
}
