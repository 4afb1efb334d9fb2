package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testJWTSecret = "api-test-secret"

type testServer struct {
	router      *gin.Engine
	auth        *stubAuthService
	profile     *stubProfileService
	workout     *stubWorkoutService
	progress    *stubProgressService
	achievement *stubAchievementService
	form        *stubFormService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := &testServer{
		auth:        &stubAuthService{},
		profile:     &stubProfileService{},
		workout:     &stubWorkoutService{},
		progress:    &stubProgressService{},
		achievement: &stubAchievementService{},
		form:        &stubFormService{},
	}
	s.router = NewRouter(Services{
		Auth:        s.auth,
		Profile:     s.profile,
		Workout:     s.workout,
		Progress:    s.progress,
		Achievement: s.achievement,
		Form:        s.form,
	}, "http://localhost:5173", zap.NewNop())
	return s
}

func signToken(t *testing.T, uid string, ttl time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// do sends body as JSON. A non-nil userID adds a valid bearer token.
func (s *testServer) do(t *testing.T, method, path string, userID *primitive.ObjectID, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID.Hex(), time.Hour))
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

