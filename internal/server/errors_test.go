package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email conflict", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"bad credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"resource not found", &ErrNotFound{Resource: "Plan"}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "name", Message: "empty"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestNotFoundResponseMessage(t *testing.T) {
	s := &Server{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	w := httptest.NewRecorder()
	s.notFoundResponse(w, "Application")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Application not found")
}
