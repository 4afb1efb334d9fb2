package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement is a named milestone earned once per user.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	EarnedDate  string             `bson:"earnedDate" json:"earnedDate"` // YYYY-MM-DD
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
