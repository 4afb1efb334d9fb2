package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestAchievementAdd(t *testing.T) {
	repo := &fakeAchievementRepo{}
	svc := NewAchievementService(repo, zap.NewNop()).(*achievementService)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	userID := primitive.NewObjectID()

	a, err := svc.Add(ctx, userID, " Early Bird ", "Trained before 7am")
	require.NoError(t, err)
	assert.Equal(t, "Early Bird", a.Name)
	assert.Equal(t, "2024-03-09", a.EarnedDate)
	assert.False(t, a.ID.IsZero())

	_, err = svc.Add(ctx, userID, "Early Bird", "again")
	assert.ErrorIs(t, err, ErrAchievementExists)

	// another user can earn the same achievement
	_, err = svc.Add(ctx, primitive.NewObjectID(), "Early Bird", "Trained before 7am")
	assert.NoError(t, err)

	_, err = svc.Add(ctx, userID, "", "desc")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Add(ctx, userID, "name", "  ")
	assert.ErrorIs(t, err, ErrValidation)

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAwardIfMissingIsIdempotent(t *testing.T) {
	repo := &fakeAchievementRepo{}
	svc := NewAchievementService(repo, zap.NewNop())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	a, err := svc.AwardIfMissing(ctx, userID, MilestoneFirstWorkout)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, MilestoneFirstWorkout.Name, a.Name)
	assert.Equal(t, MilestoneFirstWorkout.Description, a.Description)

	a, err = svc.AwardIfMissing(ctx, userID, MilestoneFirstWorkout)
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Equal(t, []string{MilestoneFirstWorkout.Name}, repo.names())
}

func TestAwardIfMissingPropagatesErrors(t *testing.T) {
	repo := &fakeAchievementRepo{err: errStore}
	svc := NewAchievementService(repo, zap.NewNop())

	_, err := svc.AwardIfMissing(context.Background(), primitive.NewObjectID(), MilestoneFirstPlan)
	assert.ErrorIs(t, err, errStore)
}
