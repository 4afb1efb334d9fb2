package service

import (
	"context"
	"errors"
	"fmt"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileInput is a full replacement of the editable profile fields.
// Nil fields are cleared.
type ProfileInput struct {
	FirstName           *string
	LastName            *string
	Age                 *int
	HeightCm            *float64
	WeightKg            *float64
	FitnessLevel        *domain.FitnessLevel
	Goal                *string
	TrainingDaysPerWeek *int
}

type ProfileService interface {
	// GetProfile returns the user and their profile. The profile is nil
	// when none has been stored yet.
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, *domain.Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*domain.Profile, error)
}

type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, *domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("load user: %w", err)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("load profile: %w", err)
		}
		profile = nil
	}
	user.PasswordHash = ""
	return user, profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*domain.Profile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:              userID,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Age:                 in.Age,
		HeightCm:            in.HeightCm,
		WeightKg:            in.WeightKg,
		FitnessLevel:        in.FitnessLevel,
		Goal:                in.Goal,
		TrainingDaysPerWeek: in.TrainingDaysPerWeek,
	}
	stored, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return stored, nil
}

func (in ProfileInput) validate() error {
	if in.Age != nil && (*in.Age < 0 || *in.Age > 150) {
		return validationError("age must be between 0 and 150")
	}
	if in.HeightCm != nil && *in.HeightCm < 0 {
		return validationError("heightCm must not be negative")
	}
	if in.WeightKg != nil && *in.WeightKg < 0 {
		return validationError("weightKg must not be negative")
	}
	if in.TrainingDaysPerWeek != nil && (*in.TrainingDaysPerWeek < 1 || *in.TrainingDaysPerWeek > 7) {
		return validationError("trainingDaysPerWeek must be between 1 and 7")
	}
	return nil
}
