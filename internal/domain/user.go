package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. Profile data lives in a separate document
// keyed by the user's ID.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`    // unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // never exposed
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FitnessLevel mirrors Intensity for profile purposes but is free to hold
// values the planner does not know about.
type FitnessLevel string

// Profile holds the optional body metrics and training preferences of a user.
// Pointer fields are nil when the user has not provided a value.
type Profile struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	FirstName           *string            `bson:"firstName,omitempty" json:"firstName"`
	LastName            *string            `bson:"lastName,omitempty" json:"lastName"`
	Age                 *int               `bson:"age,omitempty" json:"age"`
	HeightCm            *float64           `bson:"heightCm,omitempty" json:"heightCm"`
	WeightKg            *float64           `bson:"weightKg,omitempty" json:"weightKg"`
	FitnessLevel        *FitnessLevel      `bson:"fitnessLevel,omitempty" json:"fitnessLevel"`
	Goal                *string            `bson:"goal,omitempty" json:"goal"`
	TrainingDaysPerWeek *int               `bson:"trainingDaysPerWeek,omitempty" json:"trainingDaysPerWeek"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
