package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitsphere/backend/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)
	s.achievement.list = func(primitive.ObjectID) ([]domain.Achievement, error) { return nil, nil }

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwtClaims{
		UserID: primitive.NewObjectID().Hex(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{name: "missing header", header: "", wantMsg: "Authorization header is missing"},
		{name: "wrong scheme", header: "Basic abc", wantMsg: "Authorization header format must be Bearer {token}"},
		{name: "garbage token", header: "Bearer not-a-jwt", wantMsg: "Invalid token"},
		{name: "wrong secret", header: "Bearer " + otherSecret, wantMsg: "Invalid token"},
		{name: "expired", header: "Bearer " + signToken(t, primitive.NewObjectID().Hex(), -time.Minute), wantMsg: "Token has expired"},
		{name: "uid not an object id", header: "Bearer " + signToken(t, "42", time.Hour), wantMsg: "Invalid token or missing claims"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestAuthMiddleware_ValidTokenPassesUserID(t *testing.T) {
	s := newTestServer(t)
	userID := primitive.NewObjectID()
	var got primitive.ObjectID
	s.achievement.list = func(id primitive.ObjectID) ([]domain.Achievement, error) {
		got = id
		return nil, nil
	}

	rec := s.do(t, http.MethodGet, "/api/v1/achievements", &userID, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, got)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/workouts/generate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORS_ForeignOriginGetsNoHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
