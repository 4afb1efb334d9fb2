package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormStatus grades a single aspect or a whole form check.
type FormStatus string

const (
	FormExcellent       FormStatus = "excellent"
	FormGood            FormStatus = "good"
	FormNeedsAdjustment FormStatus = "needs_adjustment"
	FormNeedsWork       FormStatus = "needs_work"
)

// FormCheckItem is one graded aspect of an exercise's form.
type FormCheckItem struct {
	Aspect string     `bson:"aspect" json:"aspect"`
	Status FormStatus `bson:"status" json:"status"`
}

// FormAnalysis is the result of a form check. SnapshotKey points to the
// submitted image in object storage and is empty when the upload failed.
type FormAnalysis struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Exercise    string             `bson:"exercise" json:"exercise"`
	Items       []FormCheckItem    `bson:"items" json:"analysis"`
	Score       float64            `bson:"score" json:"score"`
	Status      FormStatus         `bson:"status" json:"status"`
	SnapshotKey string             `bson:"snapshotKey,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"timestamp"`
}
