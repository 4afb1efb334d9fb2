package mongo

import (
	"context"
	"errors"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "profiles"

type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a Profile repository backed by MongoDB.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Upsert replaces the editable fields of the user's profile, creating the
// document on first write. Nil pointers are stored as null.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile.UserID == primitive.NilObjectID {
		return nil, errors.New("profile requires userId")
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"firstName":           profile.FirstName,
			"lastName":            profile.LastName,
			"age":                 profile.Age,
			"heightCm":            profile.HeightCm,
			"weightKg":            profile.WeightKg,
			"fitnessLevel":        profile.FitnessLevel,
			"goal":                profile.Goal,
			"trainingDaysPerWeek": profile.TrainingDaysPerWeek,
			"updatedAt":           now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored domain.Profile
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByUserID retrieves the profile owned by userID.
func (r *mongoProfileRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// EnsureProfileIndexes makes userId unique so upserts cannot race into
// two profiles for one user.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
