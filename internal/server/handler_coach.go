package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charlie2bored/shftrr/internal/coach"
	"github.com/charlie2bored/shftrr/internal/sanitize"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
)

// handleCoachChat runs one turn of the conversational career coach. Unlike
// plan generation there is no deterministic fallback; without a configured
// model the endpoint reports unavailable.
func (s *Server) handleCoachChat(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req coach.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.ResumeText = sanitize.Text(req.ResumeText)
	req.VentText = sanitize.Text(req.VentText)
	for i := range req.Messages {
		req.Messages[i].Content = sanitize.Text(req.Messages[i].Content)
	}

	reply, err := s.coach.Respond(r.Context(), &req)
	if err != nil {
		var verr *coach.ValidationError
		if errors.As(err, &verr) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "Invalid chat request",
				"issues": verr.Issues,
			})
			return
		}
		var notConfigured *coach.ErrNotConfigured
		if errors.As(err, &notConfigured) {
			s.errorResponse(w, http.StatusServiceUnavailable, "Career coach is not available")
			return
		}
		s.logger.Error("failed to generate coach reply", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"response": reply})
}
