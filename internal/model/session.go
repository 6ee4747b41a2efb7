package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// SessionStatus tracks where a session is in its schedule.
type SessionStatus string

const (
	SessionUpcoming  SessionStatus = "upcoming"
	SessionLive      SessionStatus = "live"
	SessionCompleted SessionStatus = "completed"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionUpcoming, SessionLive, SessionCompleted:
		return true
	}
	return false
}

// SessionTime is the scheduled window of a session.
type SessionTime struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Session is a talk or workshop held during an expo.
//
// The tuple (ExpoID, Topic, Speaker, Location, Time.Start) is unique; the
// store backs this with a unique index.  Attendees is a denormalized copy
// of the users that registered, kept for roster views.
type Session struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ExpoID      primitive.ObjectID   `bson:"expoId" json:"expoId"`
	Topic       string               `bson:"topic" json:"topic"`
	Speaker     string               `bson:"speaker" json:"speaker"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Time        SessionTime          `bson:"time" json:"time"`
	Location    string               `bson:"location" json:"location"`
	Category    string               `bson:"category,omitempty" json:"category,omitempty"`
	Capacity    int                  `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Status      SessionStatus        `bson:"status" json:"status"`
	Attendees   []primitive.ObjectID `bson:"attendees" json:"attendees"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

func (s *Session) Validate() error {
	switch {
	case s.ExpoID.IsZero():
		return apperr.Validation("expoId is required")
	case strings.TrimSpace(s.Topic) == "":
		return apperr.Validation("topic is required")
	case strings.TrimSpace(s.Speaker) == "":
		return apperr.Validation("speaker is required")
	case s.Time.Start.IsZero() || s.Time.End.IsZero():
		return apperr.Validation("time.start and time.end are required")
	case s.Time.End.Before(s.Time.Start):
		return apperr.Validation("time.end must not be before time.start")
	case strings.TrimSpace(s.Location) == "":
		return apperr.Validation("location is required")
	case s.Capacity < 0:
		return apperr.Validation("capacity must not be negative")
	case !s.Status.Valid():
		return apperr.Validation("status must be upcoming, live or completed")
	}
	return nil
}

// SameSlot reports whether o occupies the same unique tuple as s.
func (s *Session) SameSlot(o *Session) bool {
	return s.ExpoID == o.ExpoID &&
		s.Topic == o.Topic &&
		s.Speaker == o.Speaker &&
		s.Location == o.Location &&
		s.Time.Start.Equal(o.Time.Start)
}

// SessionPatch enumerates the mutable fields of a session.  The owning
// expo cannot be changed.
type SessionPatch struct {
	Topic       *string        `json:"topic"`
	Speaker     *string        `json:"speaker"`
	Description *string        `json:"description"`
	Time        *SessionTime   `json:"time"`
	Location    *string        `json:"location"`
	Category    *string        `json:"category"`
	Capacity    *int           `json:"capacity"`
	Status      *SessionStatus `json:"status"`
}

// TouchesSlot reports whether applying p may change the unique tuple.
func (p SessionPatch) TouchesSlot() bool {
	return p.Topic != nil || p.Speaker != nil || p.Location != nil || p.Time != nil
}

func (p SessionPatch) Apply(s *Session) error {
	if p.Topic != nil {
		s.Topic = strings.TrimSpace(*p.Topic)
	}
	if p.Speaker != nil {
		s.Speaker = strings.TrimSpace(*p.Speaker)
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Time != nil {
		s.Time = SessionTime{Start: p.Time.Start.UTC(), End: p.Time.End.UTC()}
	}
	if p.Location != nil {
		s.Location = strings.TrimSpace(*p.Location)
	}
	if p.Category != nil {
		s.Category = strings.TrimSpace(*p.Category)
	}
	if p.Capacity != nil {
		s.Capacity = *p.Capacity
	}
	if p.Status != nil {
		s.Status = SessionStatus(strings.ToLower(string(*p.Status)))
	}
	return s.Validate()
}
