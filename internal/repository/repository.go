package repository

import (
	"context"

	"fitsphere/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	// Create returns ErrDuplicate when the email is already registered.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ProfileRepository stores one profile document per user.
type ProfileRepository interface {
	// Upsert writes every field of profile, so nil fields are cleared.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
}

// WorkoutPlanRepository stores generated plans. The newest plan of a user
// is their current plan.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetLatestByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error)
	SetCompletion(ctx context.Context, planID primitive.ObjectID, key string, completed bool) error
}

// ProgressMetricRepository stores at most one metric per user and day.
type ProgressMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.ProgressMetric) (*domain.ProgressMetric, error)
	// ListRecentByUserID returns metrics newest date first.
	ListRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressMetric, error)
}

// WorkoutSessionRepository stores completed sessions.
type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	ListRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutSession, error)
	CountByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// AchievementRepository stores earned achievements, unique per user and name.
type AchievementRepository interface {
	// Create returns ErrDuplicate when the user already earned an achievement
	// with the same name.
	Create(ctx context.Context, achievement *domain.Achievement) (primitive.ObjectID, error)
	ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error)
	ExistsByName(ctx context.Context, userID primitive.ObjectID, name string) (bool, error)
}

// FormAnalysisRepository stores form check results.
type FormAnalysisRepository interface {
	Create(ctx context.Context, analysis *domain.FormAnalysis) (primitive.ObjectID, error)
	ListRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.FormAnalysis, error)
}
