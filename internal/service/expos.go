package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// ExpoInput is the payload of expo creation.
type ExpoInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

func (s *Service) ListExpos(ctx context.Context, actor policy.Actor) ([]*model.Expo, error) {
	if err := policy.Check(actor, policy.ReadExpo); err != nil {
		return nil, err
	}
	return query(ctx, s, "expo", s.store.Expos.List)
}

func (s *Service) GetExpo(ctx context.Context, actor policy.Actor, id primitive.ObjectID) (*model.Expo, error) {
	if err := policy.Check(actor, policy.ReadExpo); err != nil {
		return nil, err
	}
	return s.findExpo(ctx, id)
}

func (s *Service) findExpo(ctx context.Context, id primitive.ObjectID) (*model.Expo, error) {
	return query(ctx, s, "expo", func(ctx context.Context) (*model.Expo, error) {
		return s.store.Expos.FindByID(ctx, id)
	})
}

func (s *Service) CreateExpo(ctx context.Context, actor policy.Actor, in ExpoInput) (*model.Expo, error) {
	if err := policy.Check(actor, policy.WriteExpo); err != nil {
		return nil, err
	}
	e := &model.Expo{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Theme:       strings.TrimSpace(in.Theme),
		Date:        in.Date.UTC(),
		Location:    strings.TrimSpace(in.Location),
		Exhibitors:  []primitive.ObjectID{},
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "expo", func(ctx context.Context) error { return s.store.Expos.Insert(ctx, e) }); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateExpo(ctx context.Context, actor policy.Actor, id primitive.ObjectID, patch model.ExpoPatch) (*model.Expo, error) {
	if err := policy.Check(actor, policy.WriteExpo); err != nil {
		return nil, err
	}
	e, err := s.findExpo(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(e); err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "expo", func(ctx context.Context) error { return s.store.Expos.Update(ctx, e) }); err != nil {
		return nil, err
	}
	return s.findExpo(ctx, id)
}

// DeleteExpo removes an expo that no session or booth refers to.
func (s *Service) DeleteExpo(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.WriteExpo); err != nil {
		return err
	}
	if _, err := s.findExpo(ctx, id); err != nil {
		return err
	}
	sessions, err := query(ctx, s, "session", func(ctx context.Context) (int64, error) {
		return s.store.Sessions.CountByExpo(ctx, id)
	})
	if err != nil {
		return err
	}
	booths, err := query(ctx, s, "booth", func(ctx context.Context) (int64, error) {
		return s.store.Booths.CountByExpo(ctx, id)
	})
	if err != nil {
		return err
	}
	if sessions > 0 || booths > 0 {
		return apperr.Conflict("expo still has %d sessions and %d booths", sessions, booths)
	}
	if err := s.exec(ctx, "user", func(ctx context.Context) error {
		_, err := s.store.Users.PullRegistration(ctx, model.RegisteredExpos, id)
		return err
	}); err != nil {
		return err
	}
	return s.exec(ctx, "expo", func(ctx context.Context) error { return s.store.Expos.Delete(ctx, id) })
}
