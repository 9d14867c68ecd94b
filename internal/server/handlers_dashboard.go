package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/charlie2bored/shftrr/internal/assessment"
	"github.com/charlie2bored/shftrr/internal/db"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
)

// DashboardResponse aggregates the user's state across the app in one call.
type DashboardResponse struct {
	LatestPlan          *db.EscapePlanRecord `json:"latestPlan"`
	ApplicationCounts   map[string]int       `json:"applicationCounts"`
	OnboardingCompleted bool                 `json:"onboardingCompleted"`
	AssessmentCompleted bool                 `json:"assessmentCompleted"`
	LatestAssessment    *assessment.Record   `json:"latestAssessment"`
}

// handleDashboard fans out the four lookups concurrently; any single
// failure fails the whole request.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var resp DashboardResponse
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		plan, err := s.db.GetLatestEscapePlan(ctx, userID)
		if err != nil {
			return err
		}
		resp.LatestPlan = plan
		return nil
	})
	g.Go(func() error {
		counts, err := s.db.CountJobApplicationsByStatus(ctx, userID)
		if err != nil {
			return err
		}
		resp.ApplicationCounts = counts
		return nil
	})
	g.Go(func() error {
		onboarding, err := s.db.GetOnboarding(ctx, userID)
		if err != nil {
			return err
		}
		resp.OnboardingCompleted = onboarding != nil && onboarding.Completed
		return nil
	})
	g.Go(func() error {
		rec, err := s.db.GetLatestAssessment(ctx, userID)
		if err != nil {
			return err
		}
		resp.LatestAssessment = rec
		resp.AssessmentCompleted = rec != nil
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to assemble dashboard", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
