package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Intensity is the training level a plan is generated for.
type Intensity string

const (
	IntensityBeginner     Intensity = "beginner"
	IntensityIntermediate Intensity = "intermediate"
	IntensityAdvanced     Intensity = "advanced"
)

// Valid reports whether i is one of the known intensity levels.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityBeginner, IntensityIntermediate, IntensityAdvanced:
		return true
	}
	return false
}

// FocusArea is the training goal that selects an exercise catalog.
type FocusArea string

const (
	FocusStrength    FocusArea = "strength"
	FocusHypertrophy FocusArea = "hypertrophy"
	FocusEndurance   FocusArea = "endurance"
	FocusWeightLoss  FocusArea = "weight_loss"
)

// Valid reports whether f is one of the known focus areas.
func (f FocusArea) Valid() bool {
	switch f {
	case FocusStrength, FocusHypertrophy, FocusEndurance, FocusWeightLoss:
		return true
	}
	return false
}

// DayType distinguishes training days from rest days.
type DayType string

const (
	DayTypeWorkout DayType = "workout"
	DayTypeRest    DayType = "rest"
)

// PlanExercise is one exercise of a scheduled day. Details is the
// human readable "N sets of R reps" string.
type PlanExercise struct {
	Name         string `bson:"name" json:"name"`
	Details      string `bson:"details" json:"details"`
	Sets         int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps         string `bson:"reps,omitempty" json:"reps,omitempty"`
	Rest         string `bson:"rest,omitempty" json:"rest,omitempty"`
	Instructions string `bson:"instructions" json:"instructions"`
	Difficulty   string `bson:"difficulty" json:"difficulty"`
}

// ScheduleDay is a single day of a weekly plan. Rest days carry no
// exercises and no muscle groups.
type ScheduleDay struct {
	Day          string         `bson:"day" json:"day"`
	Focus        string         `bson:"focus" json:"focus"`
	Type         DayType        `bson:"type" json:"type"`
	Duration     string         `bson:"duration" json:"duration"`
	MuscleGroups []string       `bson:"muscleGroups" json:"muscleGroups"`
	WarmUp       string         `bson:"warmUp" json:"warmUp"`
	CoolDown     string         `bson:"coolDown" json:"coolDown"`
	Exercises    []PlanExercise `bson:"exercises" json:"exercises"`
}

// WeeklyPlan is the output of both plan generators. The echoed parameters
// are stored as given, even when the generator substituted defaults.
type WeeklyPlan struct {
	Name          string        `bson:"name,omitempty" json:"name,omitempty"`
	DurationWeeks int           `bson:"durationWeeks,omitempty" json:"durationWeeks,omitempty"`
	Schedule      []ScheduleDay `bson:"schedule" json:"schedule"`
	FocusArea     FocusArea     `bson:"focusArea" json:"focusArea"`
	Intensity     Intensity     `bson:"intensity" json:"intensity"`
	DaysPerWeek   int           `bson:"daysPerWeek" json:"daysPerWeek"`
}

// WorkoutPlan is the stored record of a generated plan. Completions is keyed
// by "dayIndex-exerciseIndex".
type WorkoutPlan struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Intensity    Intensity          `bson:"intensity" json:"intensity"`
	DaysPerWeek  int                `bson:"daysPerWeek" json:"daysPerWeek"`
	FocusArea    FocusArea          `bson:"focusArea" json:"focusArea"`
	Plan         WeeklyPlan         `bson:"plan" json:"plan"`
	UsedFallback bool               `bson:"usedFallback" json:"usedFallback"`
	Completions  map[string]bool    `bson:"completions,omitempty" json:"completions,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
