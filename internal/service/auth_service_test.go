package service

import (
	"context"
	"testing"
	"time"

	"fitsphere/backend/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestAuthService(t *testing.T) (AuthService, *fakeUserRepo, *fakeProfileRepo) {
	t.Helper()
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	return NewAuthService(users, profiles, testSecret, time.Hour, zap.NewNop()), users, profiles
}

func parseTestToken(t *testing.T, token string) *jwtClaims {
	t.Helper()
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	return claims
}

func TestRegister(t *testing.T) {
	svc, users, profiles := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterInput{
		Username:  "jane",
		Email:     "  Jane@Example.com ",
		Password:  "secret123",
		FirstName: "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, user.ID.IsZero())

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	claims := parseTestToken(t, token)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	profile, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Jane", *profile.FirstName)
	assert.Nil(t, profile.LastName)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Username: "a", Email: "a@b.co", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Username: "b", Email: "A@B.co", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	cases := map[string]RegisterInput{
		"missing username": {Email: "a@b.co", Password: "secret123"},
		"missing email":    {Username: "a", Password: "secret123"},
		"bad email":        {Username: "a", Email: "not-an-email", Password: "secret123"},
		"short password":   {Username: "a", Email: "a@b.co", Password: "abc"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegisterSurvivesProfileFailure(t *testing.T) {
	svc, _, profiles := newTestAuthService(t)
	profiles.err = errStore

	user, token, err := svc.Register(context.Background(), RegisterInput{Username: "a", Email: "a@b.co", Password: "secret123"})
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEmpty(t, token)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, RegisterInput{Username: "a", Email: "a@b.co", Password: "secret123", LastName: "Smith"})
	require.NoError(t, err)

	token, user, profile, err := svc.Login(ctx, "A@b.co", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
	require.NotNil(t, profile)
	assert.Equal(t, "Smith", *profile.LastName)
	assert.Equal(t, registered.ID.Hex(), parseTestToken(t, token).UserID)

	_, _, _, err = svc.Login(ctx, "a@b.co", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, _, err = svc.Login(ctx, "nobody@b.co", "secret123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginWithoutProfile(t *testing.T) {
	svc, _, profiles := newTestAuthService(t)
	ctx := context.Background()

	profiles.err = errStore
	_, _, err := svc.Register(ctx, RegisterInput{Username: "a", Email: "a@b.co", Password: "secret123"})
	require.NoError(t, err)
	profiles.err = nil

	_, _, profile, err := svc.Login(ctx, "a@b.co", "secret123")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestLoginPropagatesStoreErrors(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	users.err = errStore

	_, _, _, err := svc.Login(context.Background(), "a@b.co", "secret123")
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestNewAuthServiceDefaults(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(newFakeUserRepo(), newFakeProfileRepo(), "", time.Hour, zap.NewNop())
	})

	svc := NewAuthService(newFakeUserRepo(), newFakeProfileRepo(), testSecret, 0, zap.NewNop()).(*authService)
	assert.Equal(t, DefaultTokenExpiration, svc.jwtExpiration)
	assert.Equal(t, testSecret, svc.GetJWTSecret())
}
