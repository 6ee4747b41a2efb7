package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// GetProfile returns the caller's own account.
func (s *Service) GetProfile(ctx context.Context, actor policy.Actor) (*model.User, error) {
	if err := policy.Check(actor, policy.GetOwnProfile); err != nil {
		return nil, err
	}
	return s.findUser(ctx, actor.ID)
}

// UpdateProfile applies the caller's patch to their own account.
func (s *Service) UpdateProfile(ctx context.Context, actor policy.Actor, patch model.ProfilePatch) (*model.User, error) {
	if err := policy.Check(actor, policy.UpdateOwnProfile); err != nil {
		return nil, err
	}
	u, err := s.findUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(u); err != nil {
		return nil, err
	}
	if err := s.exec(ctx, "user", func(ctx context.Context) error { return s.store.Users.UpdateProfile(ctx, u) }); err != nil {
		return nil, err
	}
	return s.findUser(ctx, u.ID)
}

func (s *Service) findUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return query(ctx, s, "user", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindByID(ctx, id)
	})
}

// RegisterForExpo appends the expo to the exhibitor's registrations and
// adds the exhibitor to the expo roster.
func (s *Service) RegisterForExpo(ctx context.Context, actor policy.Actor, expoID primitive.ObjectID) (*model.User, error) {
	if err := policy.Check(actor, policy.RegisterForExpo); err != nil {
		return nil, err
	}
	if _, err := s.findExpo(ctx, expoID); err != nil {
		return nil, err
	}
	added, err := query(ctx, s, "user", func(ctx context.Context) (bool, error) {
		return s.store.Users.AddRegistration(ctx, actor.ID, model.RegisteredExpos, expoID)
	})
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, apperr.Conflict("already registered for this expo")
	}
	if err := s.exec(ctx, "expo", func(ctx context.Context) error {
		return s.store.Expos.AddExhibitor(ctx, expoID, actor.ID)
	}); err != nil {
		s.log.Warn().Err(err).Str("expo", expoID.Hex()).Str("user", actor.ID.Hex()).Msg("update expo roster failed")
	}
	return s.findUser(ctx, actor.ID)
}

// RegisterForSession appends the session to the attendee's registrations.
// Sessions with a capacity refuse registrations once full.
func (s *Service) RegisterForSession(ctx context.Context, actor policy.Actor, sessionID primitive.ObjectID) (*model.User, error) {
	if err := policy.Check(actor, policy.RegisterForSession); err != nil {
		return nil, err
	}
	sess, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Capacity > 0 {
		n, err := query(ctx, s, "user", func(ctx context.Context) (int64, error) {
			return s.store.Users.CountRegistered(ctx, model.RegisteredSessions, sessionID)
		})
		if err != nil {
			return nil, err
		}
		if n >= int64(sess.Capacity) {
			u, err := s.findUser(ctx, actor.ID)
			if err == nil && u.Registered(model.RegisteredSessions, sessionID) {
				return nil, apperr.Conflict("already registered for this session")
			}
			return nil, apperr.Conflict("session is full")
		}
	}
	added, err := query(ctx, s, "user", func(ctx context.Context) (bool, error) {
		return s.store.Users.AddRegistration(ctx, actor.ID, model.RegisteredSessions, sessionID)
	})
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, apperr.Conflict("already registered for this session")
	}
	if err := s.exec(ctx, "session", func(ctx context.Context) error {
		return s.store.Sessions.AddAttendee(ctx, sessionID, actor.ID)
	}); err != nil {
		s.log.Warn().Err(err).Str("session", sessionID.Hex()).Str("user", actor.ID.Hex()).Msg("update session roster failed")
	}
	return s.findUser(ctx, actor.ID)
}

// ListUsers returns attendee accounts, newest first.
func (s *Service) ListUsers(ctx context.Context, actor policy.Actor) ([]*model.User, error) {
	if err := policy.Check(actor, policy.ListUsers); err != nil {
		return nil, err
	}
	return s.listByRole(ctx, model.RoleAttendee)
}

// ListExhibitorUsers returns exhibitor accounts, newest first.
func (s *Service) ListExhibitorUsers(ctx context.Context, actor policy.Actor) ([]*model.User, error) {
	if err := policy.Check(actor, policy.ListExhibitorUsers); err != nil {
		return nil, err
	}
	return s.listByRole(ctx, model.RoleExhibitor)
}

func (s *Service) listByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	return query(ctx, s, "user", func(ctx context.Context) ([]*model.User, error) {
		return s.store.Users.ListByRole(ctx, role)
	})
}

// GetAdminContact returns the public summary of the first administrator,
// the usual receiver of support messages.
func (s *Service) GetAdminContact(ctx context.Context, actor policy.Actor) (model.Summary, error) {
	if err := policy.Check(actor, policy.GetAdminContact); err != nil {
		return model.Summary{}, err
	}
	u, err := query(ctx, s, "admin", func(ctx context.Context) (*model.User, error) {
		return s.store.Users.FindFirstByRole(ctx, model.RoleAdmin)
	})
	if err != nil {
		return model.Summary{}, err
	}
	return u.Summary(), nil
}

// DeleteOwnAccount removes the calling attendee and everything they
// authored.
func (s *Service) DeleteOwnAccount(ctx context.Context, actor policy.Actor) error {
	if err := policy.Check(actor, policy.DeleteOwnAccount); err != nil {
		return err
	}
	u, err := s.findUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	return s.removeUser(ctx, actor, u, false)
}

// DeleteUser removes any account.  For exhibitors the company profile is
// removed too and its booths are released.
func (s *Service) DeleteUser(ctx context.Context, actor policy.Actor, id primitive.ObjectID) error {
	if err := policy.Check(actor, policy.DeleteUser); err != nil {
		return err
	}
	if id == actor.ID {
		return apperr.Forbidden("administrators cannot delete their own account")
	}
	u, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	return s.removeUser(ctx, actor, u, true)
}

func isNotFound(err error) bool { return errors.Is(err, apperr.ErrNotFound) }

func isConflict(err error) bool { return errors.Is(err, apperr.ErrConflict) }
