package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/planner"
	"fitsphere/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrPlanNotFound      = errors.New("no workout plan found")
	ErrInvalidPlanParams = errors.New("daysPerWeek must be between 1 and 7")
	ErrExerciseNotFound  = errors.New("exercise not found in current plan")
	ErrRestDay           = errors.New("rest days have no exercises")
)

// PlanGenerator produces plans, reporting whether the fallback was used.
// *planner.Chain implements it.
type PlanGenerator interface {
	Generate(ctx context.Context, p planner.Params) (planner.Result, error)
}

type GeneratePlanInput struct {
	Intensity          domain.Intensity
	DaysPerWeek        int
	FocusArea          domain.FocusArea
	UserGoals          string
	ExperienceLevel    string
	EquipmentAvailable string
}

// PlanProgress summarises completions against every exercise of the
// workout days of a plan.
type PlanProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

type WorkoutService interface {
	GeneratePlan(ctx context.Context, userID primitive.ObjectID, in GeneratePlanInput) (*domain.WorkoutPlan, error)
	GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error)
	// ToggleExerciseCompletion flips the completion state of one exercise of
	// the current plan and returns the new state.
	ToggleExerciseCompletion(ctx context.Context, userID primitive.ObjectID, dayIndex, exerciseIndex int) (bool, PlanProgress, error)
	GetPlanProgress(ctx context.Context, userID primitive.ObjectID) (PlanProgress, error)
}

type workoutService struct {
	generator    PlanGenerator
	planRepo     repository.WorkoutPlanRepository
	profileRepo  repository.ProfileRepository
	achievements AchievementService
	logger       *zap.Logger
}

func NewWorkoutService(
	generator PlanGenerator,
	planRepo repository.WorkoutPlanRepository,
	profileRepo repository.ProfileRepository,
	achievements AchievementService,
	logger *zap.Logger,
) WorkoutService {
	return &workoutService{
		generator:    generator,
		planRepo:     planRepo,
		profileRepo:  profileRepo,
		achievements: achievements,
		logger:       logger,
	}
}

// GeneratePlan generates and stores a new current plan. Experience level and
// goals default to the user's profile when the request leaves them empty.
func (s *workoutService) GeneratePlan(ctx context.Context, userID primitive.ObjectID, in GeneratePlanInput) (*domain.WorkoutPlan, error) {
	if in.DaysPerWeek < 1 || in.DaysPerWeek > 7 {
		return nil, ErrInvalidPlanParams
	}

	params := planner.Params{
		Intensity:          domain.Intensity(strings.ToLower(strings.TrimSpace(string(in.Intensity)))),
		DaysPerWeek:        in.DaysPerWeek,
		FocusArea:          domain.FocusArea(strings.ToLower(strings.TrimSpace(string(in.FocusArea)))),
		UserGoals:          strings.TrimSpace(in.UserGoals),
		ExperienceLevel:    strings.TrimSpace(in.ExperienceLevel),
		EquipmentAvailable: strings.TrimSpace(in.EquipmentAvailable),
	}
	s.fillFromProfile(ctx, userID, &params)

	result, err := s.generator.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	plan := &domain.WorkoutPlan{
		UserID:       userID,
		Intensity:    params.Intensity,
		DaysPerWeek:  params.DaysPerWeek,
		FocusArea:    params.FocusArea,
		Plan:         *result.Plan,
		UsedFallback: result.UsedFallback,
	}
	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}
	plan.ID = id

	s.logger.Info("workout plan generated",
		zap.String("userId", userID.Hex()),
		zap.String("planId", id.Hex()),
		zap.Bool("usedFallback", result.UsedFallback),
	)

	if _, err := s.achievements.AwardIfMissing(ctx, userID, MilestoneFirstPlan); err != nil {
		s.logger.Warn("failed to award achievement", zap.String("name", MilestoneFirstPlan.Name), zap.Error(err))
	}
	return plan, nil
}

func (s *workoutService) fillFromProfile(ctx context.Context, userID primitive.ObjectID, p *planner.Params) {
	if p.ExperienceLevel != "" && p.UserGoals != "" {
		return
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load profile for plan defaults", zap.Error(err))
		}
		return
	}
	if p.ExperienceLevel == "" && profile.FitnessLevel != nil {
		p.ExperienceLevel = string(*profile.FitnessLevel)
	}
	if p.UserGoals == "" && profile.Goal != nil {
		p.UserGoals = *profile.Goal
	}
}

func (s *workoutService) GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("load current plan: %w", err)
	}
	return plan, nil
}

func (s *workoutService) ToggleExerciseCompletion(ctx context.Context, userID primitive.ObjectID, dayIndex, exerciseIndex int) (bool, PlanProgress, error) {
	plan, err := s.GetCurrentPlan(ctx, userID)
	if err != nil {
		return false, PlanProgress{}, err
	}

	schedule := plan.Plan.Schedule
	if dayIndex < 0 || dayIndex >= len(schedule) {
		return false, PlanProgress{}, ErrExerciseNotFound
	}
	day := schedule[dayIndex]
	if day.Type == domain.DayTypeRest {
		return false, PlanProgress{}, ErrRestDay
	}
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return false, PlanProgress{}, ErrExerciseNotFound
	}

	key := CompletionKey(dayIndex, exerciseIndex)
	completed := !plan.Completions[key]
	if err := s.planRepo.SetCompletion(ctx, plan.ID, key, completed); err != nil {
		return false, PlanProgress{}, fmt.Errorf("update completion: %w", err)
	}

	if plan.Completions == nil {
		plan.Completions = map[string]bool{}
	}
	if completed {
		plan.Completions[key] = true
	} else {
		delete(plan.Completions, key)
	}
	return completed, ComputeProgress(plan), nil
}

func (s *workoutService) GetPlanProgress(ctx context.Context, userID primitive.ObjectID) (PlanProgress, error) {
	plan, err := s.GetCurrentPlan(ctx, userID)
	if err != nil {
		return PlanProgress{}, err
	}
	return ComputeProgress(plan), nil
}

// CompletionKey is the "dayIndex-exerciseIndex" key of the completions map.
func CompletionKey(dayIndex, exerciseIndex int) string {
	return fmt.Sprintf("%d-%d", dayIndex, exerciseIndex)
}

// ComputeProgress counts completions that still address an exercise of a
// workout day. The percentage is rounded to the nearest integer.
func ComputeProgress(plan *domain.WorkoutPlan) PlanProgress {
	var p PlanProgress
	for d, day := range plan.Plan.Schedule {
		if day.Type == domain.DayTypeRest {
			continue
		}
		for e := range day.Exercises {
			p.Total++
			if plan.Completions[CompletionKey(d, e)] {
				p.Completed++
			}
		}
	}
	p.Remaining = p.Total - p.Completed
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) * 100 / float64(p.Total)))
	}
	return p
}
