package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-day format used for metric dates.
const DateLayout = "2006-01-02"

// ProgressMetric is a body measurement recorded for a calendar day. There is
// at most one metric per user and day.
type ProgressMetric struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	DateRecorded      string             `bson:"dateRecorded" json:"dateRecorded"` // YYYY-MM-DD
	WeightKg          *float64           `bson:"weightKg,omitempty" json:"weightKg"`
	BodyFatPercentage *float64           `bson:"bodyFatPercentage,omitempty" json:"bodyFatPercentage"`
	MuscleMassKg      *float64           `bson:"muscleMassKg,omitempty" json:"muscleMassKg"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutSession records a completed training session, optionally linked
// to a day of a stored plan.
type WorkoutSession struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID  `bson:"userId" json:"userId"`
	PlanID             *primitive.ObjectID `bson:"planId,omitempty" json:"planId,omitempty"`
	DayIndex           *int                `bson:"dayIndex,omitempty" json:"dayIndex,omitempty"`
	Name               string              `bson:"name" json:"name"`
	DurationMinutes    int                 `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	ExercisesCompleted int                 `bson:"exercisesCompleted" json:"exercisesCompleted"`
	Notes              string              `bson:"notes,omitempty" json:"notes,omitempty"`
	DateCompleted      time.Time           `bson:"dateCompleted" json:"dateCompleted"`
}
