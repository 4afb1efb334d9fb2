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

const formAnalysisCollectionName = "form_analyses"

// mongoFormAnalysisRepository implements repository.FormAnalysisRepository
type mongoFormAnalysisRepository struct {
	collection *mongo.Collection
}

// NewMongoFormAnalysisRepository creates a FormAnalysis repository backed by MongoDB.
func NewMongoFormAnalysisRepository(db *mongo.Database) repository.FormAnalysisRepository {
	return &mongoFormAnalysisRepository{
		collection: db.Collection(formAnalysisCollectionName),
	}
}

// Create inserts a form check result. The snapshot key may be empty.
func (r *mongoFormAnalysisRepository) Create(ctx context.Context, analysis *domain.FormAnalysis) (primitive.ObjectID, error) {
	if analysis.UserID == primitive.NilObjectID || analysis.Exercise == "" {
		return primitive.NilObjectID, errors.New("form analysis requires userId and exercise")
	}
	analysis.ID = primitive.NewObjectID()
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, analysis)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// ListRecentByUserID returns up to limit analyses, newest first.
func (r *mongoFormAnalysisRepository) ListRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.FormAnalysis, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	analyses := []domain.FormAnalysis{}
	if err = cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func EnsureFormAnalysisIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
