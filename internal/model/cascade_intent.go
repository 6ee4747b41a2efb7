package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CascadeKind names the aggregate whose removal an intent describes.
type CascadeKind string

const (
	CascadeUser      CascadeKind = "user"
	CascadeExhibitor CascadeKind = "exhibitor"
	CascadeSession   CascadeKind = "session"
)

// CascadeIntent is a write-ahead record of a multi-document removal.  It is
// written before the first dependent write and deleted after the last, so
// an interrupted cascade can be resumed from Completed.
//
// The registration lists are captured up front because the user document
// they come from is itself removed by the cascade.
type CascadeIntent struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Kind               CascadeKind          `bson:"kind" json:"kind"`
	TargetID           primitive.ObjectID   `bson:"targetId" json:"targetId"`
	PurgeProfile       bool                 `bson:"purgeProfile" json:"purgeProfile"`
	RegisteredExpos    []primitive.ObjectID `bson:"registeredExpos" json:"registeredExpos"`
	RegisteredSessions []primitive.ObjectID `bson:"registeredSessions" json:"registeredSessions"`
	Completed          []string             `bson:"completed" json:"completed"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
}
