package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrAchievementExists = errors.New("achievement already earned")

// Milestone is an achievement awarded automatically.
type Milestone struct {
	Name        string
	Description string
}

var (
	MilestoneFirstPlan    = Milestone{"First Plan", "Generated your first workout plan"}
	MilestoneFirstWorkout = Milestone{"First Workout", "Completed your first workout session"}
	MilestoneTenWorkouts  = Milestone{"10 Workouts", "Completed 10 workout sessions"}
)

type AchievementService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error)
	// Add awards a user-named achievement; ErrAchievementExists on a repeat.
	Add(ctx context.Context, userID primitive.ObjectID, name, description string) (*domain.Achievement, error)
	// AwardIfMissing awards m unless the user already has it. The returned
	// achievement is nil when nothing was awarded.
	AwardIfMissing(ctx context.Context, userID primitive.ObjectID, m Milestone) (*domain.Achievement, error)
}

type achievementService struct {
	repo   repository.AchievementRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewAchievementService(repo repository.AchievementRepository, logger *zap.Logger) AchievementService {
	return &achievementService{repo: repo, logger: logger, now: time.Now}
}

func (s *achievementService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error) {
	achievements, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return achievements, nil
}

func (s *achievementService) Add(ctx context.Context, userID primitive.ObjectID, name, description string) (*domain.Achievement, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, validationError("name and description are required")
	}

	exists, err := s.repo.ExistsByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("check achievement: %w", err)
	}
	if exists {
		return nil, ErrAchievementExists
	}
	return s.create(ctx, userID, name, description)
}

func (s *achievementService) AwardIfMissing(ctx context.Context, userID primitive.ObjectID, m Milestone) (*domain.Achievement, error) {
	exists, err := s.repo.ExistsByName(ctx, userID, m.Name)
	if err != nil {
		return nil, fmt.Errorf("check achievement: %w", err)
	}
	if exists {
		return nil, nil
	}

	a, err := s.create(ctx, userID, m.Name, m.Description)
	if errors.Is(err, ErrAchievementExists) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("achievement awarded", zap.String("userId", userID.Hex()), zap.String("name", m.Name))
	return a, nil
}

func (s *achievementService) create(ctx context.Context, userID primitive.ObjectID, name, description string) (*domain.Achievement, error) {
	a := &domain.Achievement{
		UserID:      userID,
		Name:        name,
		Description: description,
		EarnedDate:  s.now().UTC().Format(domain.DateLayout),
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAchievementExists
		}
		return nil, fmt.Errorf("create achievement: %w", err)
	}
	a.ID = id
	return a, nil
}
