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

const achievementCollectionName = "achievements"

type mongoAchievementRepository struct {
	collection *mongo.Collection
}

// NewMongoAchievementRepository creates an Achievement repository backed by MongoDB.
func NewMongoAchievementRepository(db *mongo.Database) repository.AchievementRepository {
	return &mongoAchievementRepository{
		collection: db.Collection(achievementCollectionName),
	}
}

// Create inserts an achievement. The unique (userId, name) index turns a
// second award of the same achievement into repository.ErrDuplicate.
func (r *mongoAchievementRepository) Create(ctx context.Context, achievement *domain.Achievement) (primitive.ObjectID, error) {
	if achievement.UserID == primitive.NilObjectID || achievement.Name == "" {
		return primitive.NilObjectID, errors.New("achievement requires userId and name")
	}
	achievement.ID = primitive.NewObjectID()
	achievement.CreatedAt = time.Now().UTC()
	if achievement.EarnedDate == "" {
		achievement.EarnedDate = achievement.CreatedAt.Format(domain.DateLayout)
	}

	result, err := r.collection.InsertOne(ctx, achievement)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted achievement ID")
	}
	return insertedID, nil
}

// ListByUserID returns every achievement of the user, latest earned first.
func (r *mongoAchievementRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "earnedDate", Value: -1}, {Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	achievements := []domain.Achievement{}
	if err = cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// ExistsByName reports whether the user already earned the named achievement.
func (r *mongoAchievementRepository) ExistsByName(ctx context.Context, userID primitive.ObjectID, name string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func EnsureAchievementIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "earnedDate", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
