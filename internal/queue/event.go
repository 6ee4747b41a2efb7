// Package queue carries domain events over RabbitMQ: a publisher used by
// the service and an audit consumer that appends every event to a log file.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQueue is the durable queue domain events are routed to.
const DefaultQueue = "expo.events"

// Event types.
const (
	EventUserCreated      = "user.created"
	EventUserRemoved      = "user.removed"
	EventExhibitorRemoved = "exhibitor.removed"
	EventExhibitorReview  = "exhibitor.reviewed"
	EventSessionRemoved   = "session.removed"
	EventCascadePartial   = "cascade.partial"
)

// DomainEvent is published after a state change other services may care
// about.  It carries ids only, never credentials.
type DomainEvent struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	SubjectID  string            `json:"subject_id"`
	ActorID    string            `json:"actor_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewEvent stamps a fresh id and timestamp.
func NewEvent(typ, subjectID, actorID string, attrs map[string]string) DomainEvent {
	return DomainEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		SubjectID:  subjectID,
		ActorID:    actorID,
		Attributes: attrs,
		OccurredAt: time.Now().UTC(),
	}
}
