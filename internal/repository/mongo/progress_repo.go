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

const progressMetricCollectionName = "progress_metrics"

type mongoProgressMetricRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressMetricRepository creates a ProgressMetric repository backed by MongoDB.
func NewMongoProgressMetricRepository(db *mongo.Database) repository.ProgressMetricRepository {
	return &mongoProgressMetricRepository{
		collection: db.Collection(progressMetricCollectionName),
	}
}

// Upsert records the metric for its day, overwriting an earlier entry for
// the same user and date.
func (r *mongoProgressMetricRepository) Upsert(ctx context.Context, metric *domain.ProgressMetric) (*domain.ProgressMetric, error) {
	if metric.UserID == primitive.NilObjectID || metric.DateRecorded == "" {
		return nil, errors.New("progress metric requires userId and dateRecorded")
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": metric.UserID, "dateRecorded": metric.DateRecorded}
	update := bson.M{
		"$set": bson.M{
			"weightKg":          metric.WeightKg,
			"bodyFatPercentage": metric.BodyFatPercentage,
			"muscleMassKg":      metric.MuscleMassKg,
			"notes":             metric.Notes,
			"updatedAt":         now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored domain.ProgressMetric
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListRecentByUserID returns up to limit metrics, newest date first.
func (r *mongoProgressMetricRepository) ListRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressMetric, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "dateRecorded", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	metrics := []domain.ProgressMetric{}
	if err = cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// EnsureProgressMetricIndexes enforces one metric per user and day.
func EnsureProgressMetricIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "dateRecorded", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
