package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// recentProgressLimit caps the metrics and sessions returned by GetProgress.
const recentProgressLimit = 10

type ProgressSummary struct {
	TotalWorkouts int64    `json:"totalWorkouts"`
	RecentWeight  *float64 `json:"recentWeight"`
	LastUpdated   *string  `json:"lastUpdated"`
}

type ProgressOverview struct {
	Metrics  []domain.ProgressMetric `json:"progressMetrics"`
	Sessions []domain.WorkoutSession `json:"workoutSessions"`
	Summary  ProgressSummary         `json:"summary"`
}

type MetricInput struct {
	DateRecorded      string
	WeightKg          *float64
	BodyFatPercentage *float64
	MuscleMassKg      *float64
	Notes             string
}

type SessionInput struct {
	Name               string
	PlanID             *primitive.ObjectID
	DayIndex           *int
	DurationMinutes    int
	ExercisesCompleted int
	Notes              string
	DateCompleted      *time.Time
}

type ProgressService interface {
	GetProgress(ctx context.Context, userID primitive.ObjectID) (*ProgressOverview, error)
	// AddMetric records the metric for its day, replacing an earlier one.
	AddMetric(ctx context.Context, userID primitive.ObjectID, in MetricInput) (*domain.ProgressMetric, error)
	// LogSession records a completed session and returns any milestone
	// achievements it earned.
	LogSession(ctx context.Context, userID primitive.ObjectID, in SessionInput) (*domain.WorkoutSession, []domain.Achievement, error)
}

type progressService struct {
	metricRepo   repository.ProgressMetricRepository
	sessionRepo  repository.WorkoutSessionRepository
	achievements AchievementService
	logger       *zap.Logger
}

func NewProgressService(
	metricRepo repository.ProgressMetricRepository,
	sessionRepo repository.WorkoutSessionRepository,
	achievements AchievementService,
	logger *zap.Logger,
) ProgressService {
	return &progressService{
		metricRepo:   metricRepo,
		sessionRepo:  sessionRepo,
		achievements: achievements,
		logger:       logger,
	}
}

func (s *progressService) GetProgress(ctx context.Context, userID primitive.ObjectID) (*ProgressOverview, error) {
	var (
		metrics  []domain.ProgressMetric
		sessions []domain.WorkoutSession
		total    int64
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		if metrics, err = s.metricRepo.ListRecentByUserID(egCtx, userID, recentProgressLimit); err != nil {
			return fmt.Errorf("list metrics: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if sessions, err = s.sessionRepo.ListRecentByUserID(egCtx, userID, recentProgressLimit); err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if total, err = s.sessionRepo.CountByUserID(egCtx, userID); err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	overview := &ProgressOverview{
		Metrics:  metrics,
		Sessions: sessions,
		Summary:  ProgressSummary{TotalWorkouts: total},
	}
	if len(metrics) > 0 {
		latest := metrics[0]
		overview.Summary.RecentWeight = latest.WeightKg
		overview.Summary.LastUpdated = &latest.DateRecorded
	}
	return overview, nil
}

func (s *progressService) AddMetric(ctx context.Context, userID primitive.ObjectID, in MetricInput) (*domain.ProgressMetric, error) {
	date := strings.TrimSpace(in.DateRecorded)
	if date == "" {
		return nil, validationError("dateRecorded is required")
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, validationError("dateRecorded must be formatted as YYYY-MM-DD")
	}
	for name, v := range map[string]*float64{
		"weightKg":          in.WeightKg,
		"bodyFatPercentage": in.BodyFatPercentage,
		"muscleMassKg":      in.MuscleMassKg,
	} {
		if v != nil && *v < 0 {
			return nil, validationError(name + " must not be negative")
		}
	}
	if in.BodyFatPercentage != nil && *in.BodyFatPercentage > 100 {
		return nil, validationError("bodyFatPercentage must not exceed 100")
	}

	metric, err := s.metricRepo.Upsert(ctx, &domain.ProgressMetric{
		UserID:            userID,
		DateRecorded:      date,
		WeightKg:          in.WeightKg,
		BodyFatPercentage: in.BodyFatPercentage,
		MuscleMassKg:      in.MuscleMassKg,
		Notes:             strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert metric: %w", err)
	}
	return metric, nil
}

func (s *progressService) LogSession(ctx context.Context, userID primitive.ObjectID, in SessionInput) (*domain.WorkoutSession, []domain.Achievement, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, nil, validationError("name is required")
	}
	if in.DurationMinutes < 0 || in.ExercisesCompleted < 0 {
		return nil, nil, validationError("durationMinutes and exercisesCompleted must not be negative")
	}
	if in.DayIndex != nil && (*in.DayIndex < 0 || *in.DayIndex > 6) {
		return nil, nil, validationError("dayIndex must be between 0 and 6")
	}

	session := &domain.WorkoutSession{
		UserID:             userID,
		PlanID:             in.PlanID,
		DayIndex:           in.DayIndex,
		Name:               name,
		DurationMinutes:    in.DurationMinutes,
		ExercisesCompleted: in.ExercisesCompleted,
		Notes:              strings.TrimSpace(in.Notes),
	}
	if in.DateCompleted != nil {
		session.DateCompleted = in.DateCompleted.UTC()
	}
	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	session.ID = id

	return session, s.awardSessionMilestones(ctx, userID), nil
}

// awardSessionMilestones never fails the session that triggered it.
func (s *progressService) awardSessionMilestones(ctx context.Context, userID primitive.ObjectID) []domain.Achievement {
	count, err := s.sessionRepo.CountByUserID(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to count sessions for achievements", zap.Error(err))
		return nil
	}

	var due []Milestone
	if count >= 1 {
		due = append(due, MilestoneFirstWorkout)
	}
	if count >= 10 {
		due = append(due, MilestoneTenWorkouts)
	}

	awarded := []domain.Achievement{}
	for _, m := range due {
		a, err := s.achievements.AwardIfMissing(ctx, userID, m)
		if err != nil {
			s.logger.Warn("failed to award achievement", zap.String("name", m.Name), zap.Error(err))
			continue
		}
		if a != nil {
			awarded = append(awarded, *a)
		}
	}
	return awarded
}
