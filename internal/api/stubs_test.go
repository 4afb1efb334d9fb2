package api

import (
	"context"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stub services: each method delegates to an optional func field so tests
// only set what they exercise.

type stubAuthService struct {
	register func(service.RegisterInput) (*domain.User, string, error)
	login    func(email, password string) (string, *domain.User, *domain.Profile, error)
}

func (s *stubAuthService) Register(_ context.Context, in service.RegisterInput) (*domain.User, string, error) {
	return s.register(in)
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, *domain.Profile, error) {
	return s.login(email, password)
}

func (s *stubAuthService) GetJWTSecret() string { return testJWTSecret }

type stubProfileService struct {
	get    func(primitive.ObjectID) (*domain.User, *domain.Profile, error)
	update func(primitive.ObjectID, service.ProfileInput) (*domain.Profile, error)
}

func (s *stubProfileService) GetProfile(_ context.Context, id primitive.ObjectID) (*domain.User, *domain.Profile, error) {
	return s.get(id)
}

func (s *stubProfileService) UpdateProfile(_ context.Context, id primitive.ObjectID, in service.ProfileInput) (*domain.Profile, error) {
	return s.update(id, in)
}

type stubWorkoutService struct {
	generate func(primitive.ObjectID, service.GeneratePlanInput) (*domain.WorkoutPlan, error)
	current  func(primitive.ObjectID) (*domain.WorkoutPlan, error)
	toggle   func(primitive.ObjectID, int, int) (bool, service.PlanProgress, error)
	progress func(primitive.ObjectID) (service.PlanProgress, error)
}

func (s *stubWorkoutService) GeneratePlan(_ context.Context, id primitive.ObjectID, in service.GeneratePlanInput) (*domain.WorkoutPlan, error) {
	return s.generate(id, in)
}

func (s *stubWorkoutService) GetCurrentPlan(_ context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	return s.current(id)
}

func (s *stubWorkoutService) ToggleExerciseCompletion(_ context.Context, id primitive.ObjectID, day, exercise int) (bool, service.PlanProgress, error) {
	return s.toggle(id, day, exercise)
}

func (s *stubWorkoutService) GetPlanProgress(_ context.Context, id primitive.ObjectID) (service.PlanProgress, error) {
	return s.progress(id)
}

type stubProgressService struct {
	get        func(primitive.ObjectID) (*service.ProgressOverview, error)
	addMetric  func(primitive.ObjectID, service.MetricInput) (*domain.ProgressMetric, error)
	logSession func(primitive.ObjectID, service.SessionInput) (*domain.WorkoutSession, []domain.Achievement, error)
}

func (s *stubProgressService) GetProgress(_ context.Context, id primitive.ObjectID) (*service.ProgressOverview, error) {
	return s.get(id)
}

func (s *stubProgressService) AddMetric(_ context.Context, id primitive.ObjectID, in service.MetricInput) (*domain.ProgressMetric, error) {
	return s.addMetric(id, in)
}

func (s *stubProgressService) LogSession(_ context.Context, id primitive.ObjectID, in service.SessionInput) (*domain.WorkoutSession, []domain.Achievement, error) {
	return s.logSession(id, in)
}

type stubAchievementService struct {
	list func(primitive.ObjectID) ([]domain.Achievement, error)
	add  func(primitive.ObjectID, string, string) (*domain.Achievement, error)
}

func (s *stubAchievementService) List(_ context.Context, id primitive.ObjectID) ([]domain.Achievement, error) {
	return s.list(id)
}

func (s *stubAchievementService) Add(_ context.Context, id primitive.ObjectID, name, description string) (*domain.Achievement, error) {
	return s.add(id, name, description)
}

func (s *stubAchievementService) AwardIfMissing(context.Context, primitive.ObjectID, service.Milestone) (*domain.Achievement, error) {
	return nil, nil
}

type stubFormService struct {
	analyze func(primitive.ObjectID, string, string) (*service.FormResult, error)
	history func(primitive.ObjectID) ([]domain.FormAnalysis, error)
}

func (s *stubFormService) Analyze(_ context.Context, id primitive.ObjectID, exercise, image string) (*service.FormResult, error) {
	return s.analyze(id, exercise, image)
}

func (s *stubFormService) History(_ context.Context, id primitive.ObjectID) ([]domain.FormAnalysis, error) {
	return s.history(id)
}
