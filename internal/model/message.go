package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// Message is a directed note from one user to another.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender      primitive.ObjectID `bson:"sender" json:"sender"`
	Receiver    primitive.ObjectID `bson:"receiver" json:"receiver"`
	Message     string             `bson:"message" json:"message"`
	SenderName  string             `bson:"senderName" json:"senderName"`
	SenderEmail string             `bson:"senderEmail" json:"senderEmail"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (m *Message) Validate() error {
	switch {
	case m.Sender.IsZero():
		return apperr.Validation("sender is required")
	case m.Receiver.IsZero():
		return apperr.Validation("receiverId is required")
	case strings.TrimSpace(m.Message) == "":
		return apperr.Validation("message is required")
	case strings.TrimSpace(m.SenderName) == "":
		return apperr.Validation("senderName is required")
	case strings.TrimSpace(m.SenderEmail) == "":
		return apperr.Validation("senderEmail is required")
	case m.Sender == m.Receiver:
		return apperr.Conflict("you cannot message yourself")
	}
	return nil
}
