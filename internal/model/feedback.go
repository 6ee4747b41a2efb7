package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// Feedback is a free-text note submitted by an attendee.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (f *Feedback) Validate() error {
	if f.UserID.IsZero() {
		return apperr.Validation("userId is required")
	}
	if strings.TrimSpace(f.Message) == "" {
		return apperr.Validation("feedback message is required")
	}
	return nil
}
