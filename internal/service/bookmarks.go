package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// BookmarkView is a bookmark with its session attached.  Session is nil
// when the session no longer exists.
type BookmarkView struct {
	*model.Bookmark
	Session *model.Session `json:"session"`
}

// Bookmark saves a session for the calling attendee.
func (s *Service) Bookmark(ctx context.Context, actor policy.Actor, sessionID primitive.ObjectID) (*model.Bookmark, error) {
	if err := policy.Check(actor, policy.ManageBookmarks); err != nil {
		return nil, err
	}
	if sessionID.IsZero() {
		return nil, apperr.Validation("sessionId is required")
	}
	if _, err := s.findSession(ctx, sessionID); err != nil {
		return nil, err
	}
	b := &model.Bookmark{UserID: actor.ID, SessionID: sessionID}
	err := s.exec(ctx, "bookmark", func(ctx context.Context) error { return s.store.Bookmarks.Insert(ctx, b) })
	if isConflict(err) {
		return nil, apperr.Conflict("session already bookmarked")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookmarks(ctx context.Context, actor policy.Actor) ([]BookmarkView, error) {
	if err := policy.Check(actor, policy.ManageBookmarks); err != nil {
		return nil, err
	}
	marks, err := query(ctx, s, "bookmark", func(ctx context.Context) ([]*model.Bookmark, error) {
		return s.store.Bookmarks.ListByUser(ctx, actor.ID)
	})
	if err != nil {
		return nil, err
	}
	out := make([]BookmarkView, 0, len(marks))
	for _, b := range marks {
		sess, err := s.findSession(ctx, b.SessionID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
		out = append(out, BookmarkView{Bookmark: b, Session: sess})
	}
	return out, nil
}

func (s *Service) RemoveBookmark(ctx context.Context, actor policy.Actor, sessionID primitive.ObjectID) error {
	if err := policy.Check(actor, policy.ManageBookmarks); err != nil {
		return err
	}
	return s.exec(ctx, "bookmark", func(ctx context.Context) error {
		return s.store.Bookmarks.DeletePair(ctx, actor.ID, sessionID)
	})
}
