package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// FeedbackView is a feedback entry with its author.  Author is nil for
// feedback whose author no longer exists.
type FeedbackView struct {
	*model.Feedback
	Author *model.Summary `json:"user,omitempty"`
}

func (s *Service) SubmitFeedback(ctx context.Context, actor policy.Actor, message string) (*model.Feedback, error) {
	if err := policy.Check(actor, policy.SubmitFeedback); err != nil {
		return nil, err
	}
	f := &model.Feedback{UserID: actor.ID, Message: strings.TrimSpace(message)}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "feedback", func(ctx context.Context) error { return s.store.Feedback.Insert(ctx, f) }); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) ListFeedback(ctx context.Context, actor policy.Actor) ([]FeedbackView, error) {
	if err := policy.Check(actor, policy.ListFeedback); err != nil {
		return nil, err
	}
	all, err := query(ctx, s, "feedback", s.store.Feedback.List)
	if err != nil {
		return nil, err
	}
	authors := map[primitive.ObjectID]*model.Summary{}
	out := make([]FeedbackView, 0, len(all))
	for _, f := range all {
		a, ok := authors[f.UserID]
		if !ok {
			a, err = s.summaryOf(ctx, f.UserID)
			if err != nil {
				return nil, err
			}
			authors[f.UserID] = a
		}
		out = append(out, FeedbackView{Feedback: f, Author: a})
	}
	return out, nil
}

// summaryOf returns nil without error for unknown users.
func (s *Service) summaryOf(ctx context.Context, id primitive.ObjectID) (*model.Summary, error) {
	u, err := s.findUser(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sum := u.Summary()
	return &sum, nil
}

func (s *Service) DeleteFeedback(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.DeleteFeedback); err != nil {
		return err
	}
	return s.exec(ctx, "feedback", func(ctx context.Context) error { return s.store.Feedback.Delete(ctx, id) })
}
