package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{userID: v.userID}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()
	var gotUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	AuthMiddleware(validator)(next).ServeHTTP(w, req)
	return w, gotUserID
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	w, gotUserID := runAuth(t, &stubValidator{userID: userID}, "Bearer some-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddlewareBearerIsCaseInsensitive(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{userID: uuid.New()}, "bearer some-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{userID: uuid.New()}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongScheme(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{userID: uuid.New()}, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{userID: uuid.New()}, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	w, _ := runAuth(t, &stubValidator{err: errors.New("expired")}, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserIDFailsOutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}
