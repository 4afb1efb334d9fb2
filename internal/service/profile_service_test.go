package service

import (
	"context"
	"testing"

	"fitsphere/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](v T) *T { return &v }

func TestGetProfile(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	svc := NewProfileService(users, profiles)
	ctx := context.Background()

	_, _, err := svc.GetProfile(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)

	id, err := users.Create(ctx, &domain.User{Username: "a", Email: "a@b.co", PasswordHash: "hash"})
	require.NoError(t, err)

	user, profile, err := svc.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a", user.Username)
	assert.Empty(t, user.PasswordHash)
	assert.Nil(t, profile)
}

func TestUpdateProfileReplacesFields(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	svc := NewProfileService(users, profiles)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	level := domain.FitnessLevel("intermediate")
	first, err := svc.UpdateProfile(ctx, userID, ProfileInput{
		FirstName:           ptr("Jane"),
		Age:                 ptr(31),
		WeightKg:            ptr(62.5),
		FitnessLevel:        &level,
		TrainingDaysPerWeek: ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", *first.FirstName)
	assert.Equal(t, 62.5, *first.WeightKg)

	second, err := svc.UpdateProfile(ctx, userID, ProfileInput{Goal: ptr("run a 10k")})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.FirstName)
	assert.Nil(t, second.WeightKg)
	assert.Equal(t, "run a 10k", *second.Goal)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), newFakeProfileRepo())

	cases := map[string]ProfileInput{
		"negative age":    {Age: ptr(-1)},
		"huge age":        {Age: ptr(200)},
		"negative height": {HeightCm: ptr(-170.0)},
		"negative weight": {WeightKg: ptr(-1.0)},
		"zero days":       {TrainingDaysPerWeek: ptr(0)},
		"eight days":      {TrainingDaysPerWeek: ptr(8)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), primitive.NewObjectID(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
