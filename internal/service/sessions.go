package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// SessionInput is the payload of session creation.
type SessionInput struct {
	ExpoID      primitive.ObjectID  `json:"expoId"`
	Topic       string              `json:"topic"`
	Speaker     string              `json:"speaker"`
	Description string              `json:"description"`
	Time        model.SessionTime   `json:"time"`
	Location    string              `json:"location"`
	Category    string              `json:"category"`
	Capacity    int                 `json:"capacity"`
	Status      model.SessionStatus `json:"status"`
}

// ListSessions returns every session, or only those of expoID when set.
func (s *Service) ListSessions(ctx context.Context, actor policy.Actor, expoID *primitive.ObjectID) ([]*model.Session, error) {
	if err := policy.Check(actor, policy.ReadSession); err != nil {
		return nil, err
	}
	return query(ctx, s, "session", func(ctx context.Context) ([]*model.Session, error) {
		return s.store.Sessions.List(ctx, expoID)
	})
}

func (s *Service) GetSession(ctx context.Context, actor policy.Actor, id primitive.ObjectID) (*model.Session, error) {
	if err := policy.Check(actor, policy.ReadSession); err != nil {
		return nil, err
	}
	return s.findSession(ctx, id)
}

func (s *Service) findSession(ctx context.Context, id primitive.ObjectID) (*model.Session, error) {
	return query(ctx, s, "session", func(ctx context.Context) (*model.Session, error) {
		return s.store.Sessions.FindByID(ctx, id)
	})
}

var errSlotTaken = apperr.Conflict("a session with the same expo, topic, speaker, location and start time already exists")

// slotFree reports a conflict when another session occupies the unique
// tuple of sess.
func (s *Service) slotFree(ctx context.Context, sess *model.Session) error {
	other, err := query(ctx, s, "session", func(ctx context.Context) (*model.Session, error) {
		return s.store.Sessions.FindBySlot(ctx, sess)
	})
	switch {
	case isNotFound(err):
		return nil
	case err != nil:
		return err
	case other.ID != sess.ID:
		return errSlotTaken
	}
	return nil
}

func (s *Service) CreateSession(ctx context.Context, actor policy.Actor, in SessionInput) (*model.Session, error) {
	if err := policy.Check(actor, policy.WriteSession); err != nil {
		return nil, err
	}
	sess := &model.Session{
		ExpoID:      in.ExpoID,
		Topic:       strings.TrimSpace(in.Topic),
		Speaker:     strings.TrimSpace(in.Speaker),
		Description: in.Description,
		Time:        model.SessionTime{Start: in.Time.Start.UTC(), End: in.Time.End.UTC()},
		Location:    strings.TrimSpace(in.Location),
		Category:    strings.TrimSpace(in.Category),
		Capacity:    in.Capacity,
		Status:      model.SessionStatus(strings.ToLower(string(in.Status))),
		Attendees:   []primitive.ObjectID{},
	}
	if sess.Status == "" {
		sess.Status = model.SessionUpcoming
	}
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.findExpo(ctx, sess.ExpoID); err != nil {
		return nil, err
	}
	if err := s.slotFree(ctx, sess); err != nil {
		return nil, err
	}
	err := s.exec(ctx, "session", func(ctx context.Context) error { return s.store.Sessions.Insert(ctx, sess) })
	if isConflict(err) {
		return nil, errSlotTaken
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) UpdateSession(ctx context.Context, actor policy.Actor, id primitive.ObjectID, patch model.SessionPatch) (*model.Session, error) {
	if err := policy.Check(actor, policy.WriteSession); err != nil {
		return nil, err
	}
	sess, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(sess); err != nil {
		return nil, err
	}
	if patch.TouchesSlot() {
		if err := s.slotFree(ctx, sess); err != nil {
			return nil, err
		}
	}
	err = s.exec(ctx, "session", func(ctx context.Context) error { return s.store.Sessions.Update(ctx, sess) })
	if isConflict(err) {
		return nil, errSlotTaken
	}
	if err != nil {
		return nil, err
	}
	return s.findSession(ctx, id)
}

// DeleteSession removes the session with its bookmarks and drops it from
// every attendee's registrations.
func (s *Service) DeleteSession(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.WriteSession); err != nil {
		return err
	}
	sess, err := s.findSession(ctx, id)
	if err != nil {
		return err
	}
	return s.removeSession(ctx, actor, sess)
}
