package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

// ExpoEngagement is one row of the expo engagement report.
type ExpoEngagement struct {
	ExpoID        primitive.ObjectID `json:"expoId"`
	Title         string             `json:"title"`
	AttendeeCount int64              `json:"attendeeCount"`
}

// SessionPopularity is one row of the session popularity report.
type SessionPopularity struct {
	SessionID     primitive.ObjectID `json:"sessionId"`
	Topic         string             `json:"topic"`
	AttendeeCount int64              `json:"attendeeCount"`
}

// DashboardStats are the scalar totals of the admin dashboard.
// TotalMessages is the sum of the attendee and exhibitor message counts.
type DashboardStats struct {
	TotalExpos             int64 `json:"totalExpos"`
	TotalExhibitors        int64 `json:"totalExhibitors"`
	TotalAttendees         int64 `json:"totalAttendees"`
	TotalSessions          int64 `json:"totalSessions"`
	TotalBooths            int64 `json:"totalBooths"`
	TotalFeedbacks         int64 `json:"totalFeedbacks"`
	TotalAttendeeMessages  int64 `json:"totalAttendeeMessages"`
	TotalExhibitorMessages int64 `json:"totalExhibitorMessages"`
	TotalMessages          int64 `json:"totalMessages"`
}

// ExpoEngagement counts, for every expo, the users whose registeredExpos
// contain it.  Nothing is cached.
func (s *Service) ExpoEngagement(ctx context.Context, actor policy.Actor) ([]ExpoEngagement, error) {
	if err := policy.Check(actor, policy.ViewAnalytics); err != nil {
		return nil, err
	}
	expos, err := query(ctx, s, "expo", s.store.Expos.List)
	if err != nil {
		return nil, err
	}
	out := make([]ExpoEngagement, 0, len(expos))
	for _, e := range expos {
		n, err := s.countRegistered(ctx, model.RegisteredExpos, e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ExpoEngagement{ExpoID: e.ID, Title: e.Title, AttendeeCount: n})
	}
	return out, nil
}

// SessionPopularity counts, for every session, the users whose
// registeredSessions contain it.
func (s *Service) SessionPopularity(ctx context.Context, actor policy.Actor) ([]SessionPopularity, error) {
	if err := policy.Check(actor, policy.ViewAnalytics); err != nil {
		return nil, err
	}
	sessions, err := query(ctx, s, "session", func(ctx context.Context) ([]*model.Session, error) {
		return s.store.Sessions.List(ctx, nil)
	})
	if err != nil {
		return nil, err
	}
	out := make([]SessionPopularity, 0, len(sessions))
	for _, sess := range sessions {
		n, err := s.countRegistered(ctx, model.RegisteredSessions, sess.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, SessionPopularity{SessionID: sess.ID, Topic: sess.Topic, AttendeeCount: n})
	}
	return out, nil
}

func (s *Service) countRegistered(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error) {
	return query(ctx, s, "user", func(ctx context.Context) (int64, error) {
		return s.store.Users.CountRegistered(ctx, list, id)
	})
}

func (s *Service) DashboardStats(ctx context.Context, actor policy.Actor) (*DashboardStats, error) {
	if err := policy.Check(actor, policy.ViewAnalytics); err != nil {
		return nil, err
	}
	var st DashboardStats
	counts := []struct {
		what string
		dst  *int64
		fn   func(context.Context) (int64, error)
	}{
		{"expo", &st.TotalExpos, s.store.Expos.Count},
		{"user", &st.TotalExhibitors, func(ctx context.Context) (int64, error) {
			return s.store.Users.CountByRole(ctx, model.RoleExhibitor)
		}},
		{"user", &st.TotalAttendees, func(ctx context.Context) (int64, error) {
			return s.store.Users.CountByRole(ctx, model.RoleAttendee)
		}},
		{"session", &st.TotalSessions, s.store.Sessions.Count},
		{"booth", &st.TotalBooths, s.store.Booths.Count},
		{"feedback", &st.TotalFeedbacks, s.store.Feedback.Count},
		{"message", &st.TotalAttendeeMessages, s.messagesFrom(model.RoleAttendee)},
		{"message", &st.TotalExhibitorMessages, s.messagesFrom(model.RoleExhibitor)},
	}
	for _, c := range counts {
		n, err := query(ctx, s, c.what, c.fn)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	st.TotalMessages = st.TotalAttendeeMessages + st.TotalExhibitorMessages
	return &st, nil
}

// messagesFrom counts messages sent by users of role.
func (s *Service) messagesFrom(role model.Role) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		ids, err := s.store.Users.ListIDsByRole(ctx, role)
		if err != nil {
			return 0, err
		}
		if len(ids) == 0 {
			return 0, nil
		}
		return s.store.Messages.CountBySenders(ctx, ids)
	}
}
