package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bookmark joins an attendee to a session they saved.  The pair
// (UserID, SessionID) is unique.
type Bookmark struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	SessionID primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
