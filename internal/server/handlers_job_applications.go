package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/charlie2bored/shftrr/internal/db"
	"github.com/charlie2bored/shftrr/internal/sanitize"
	"github.com/charlie2bored/shftrr/internal/server/middleware"
)

// JobApplicationRequest is the create/update payload for the tracker.
type JobApplicationRequest struct {
	Company        string     `json:"company"`
	Role           string     `json:"role"`
	JobURL         string     `json:"jobUrl,omitempty"`
	JobBoard       string     `json:"jobBoard,omitempty"`
	Status         string     `json:"status,omitempty"`
	AppliedDate    *time.Time `json:"appliedDate,omitempty"`
	NextActionDate *time.Time `json:"nextActionDate,omitempty"`
	NextAction     string     `json:"nextAction,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

var validApplicationStatuses = map[string]bool{
	db.ApplicationStatusWishlist:     true,
	db.ApplicationStatusApplied:      true,
	db.ApplicationStatusInterviewing: true,
	db.ApplicationStatusOffer:        true,
	db.ApplicationStatusRejected:     true,
	db.ApplicationStatusAccepted:     true,
}

// toRecord validates the request and builds a db row for the user.
// Returns a message describing the first problem, or empty when valid.
func (req *JobApplicationRequest) toRecord(userID uuid.UUID) (*db.JobApplication, string) {
	company := sanitize.Text(req.Company)
	role := sanitize.Text(req.Role)
	if company == "" || role == "" {
		return nil, "Company and role are required"
	}

	status := req.Status
	if status == "" {
		status = db.ApplicationStatusWishlist
	}
	if !validApplicationStatuses[status] {
		return nil, "Invalid status: " + status
	}

	return &db.JobApplication{
		UserID:         userID,
		Company:        company,
		Role:           role,
		JobURL:         optionalText(req.JobURL),
		JobBoard:       optionalText(req.JobBoard),
		Status:         status,
		AppliedDate:    req.AppliedDate,
		NextActionDate: req.NextActionDate,
		NextAction:     optionalText(req.NextAction),
		Notes:          optionalText(req.Notes),
	}, ""
}

// handleListJobApplications returns the user's tracked applications.
func (s *Server) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	applications, err := s.db.ListJobApplications(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list job applications", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": applications,
		"total":        len(applications),
	})
}

// handleCreateJobApplication adds a posting to the user's tracker.
func (s *Server) handleCreateJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req JobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, problem := req.toRecord(userID)
	if problem != "" {
		s.errorResponse(w, http.StatusBadRequest, problem)
		return
	}

	saved, err := s.db.CreateJobApplication(r.Context(), record)
	if err != nil {
		s.logger.Error("failed to create job application", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"application": saved,
		"message":     "Job application created successfully",
	})
}

// handleGetJobApplication returns one application owned by the user.
func (s *Server) handleGetJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	application, err := s.db.GetJobApplication(r.Context(), id, userID)
	if err != nil {
		s.logger.Error("failed to get job application", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if application == nil {
		s.notFoundResponse(w, "Application")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"application": application})
}

// handleUpdateJobApplication replaces an application owned by the user.
func (s *Server) handleUpdateJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req JobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, problem := req.toRecord(userID)
	if problem != "" {
		s.errorResponse(w, http.StatusBadRequest, problem)
		return
	}
	record.ID = id

	saved, err := s.db.UpdateJobApplication(r.Context(), record)
	if err != nil {
		s.logger.Error("failed to update job application", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if saved == nil {
		s.notFoundResponse(w, "Application")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application": saved,
		"message":     "Job application updated successfully",
	})
}

// handleDeleteJobApplication removes an application owned by the user.
func (s *Server) handleDeleteJobApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	deleted, err := s.db.DeleteJobApplication(r.Context(), id, userID)
	if err != nil {
		s.logger.Error("failed to delete job application", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		s.notFoundResponse(w, "Application")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Job application deleted successfully",
	})
}
