package service

import (
	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
)

func (s *ServiceSuite) TestExpoEngagementCountsZero() {
	expo := s.newExpo("Empty")

	rows, err := s.svc.ExpoEngagement(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(ExpoEngagement{ExpoID: expo.ID, Title: "Empty", AttendeeCount: 0}, rows[0])

	actor, _ := s.newExhibitor("Counted")
	_, err = s.svc.RegisterForExpo(s.ctx, actor, expo.ID)
	s.Require().NoError(err)
	rows, err = s.svc.ExpoEngagement(s.ctx, s.admin)
	s.Require().NoError(err)
	s.EqualValues(1, rows[0].AttendeeCount)
}

func (s *ServiceSuite) TestSessionPopularityHasNoStaleCounts() {
	e1 := s.newExpo("E1")
	s1 := s.newSession(e1, "S1")
	a1 := s.newActor(model.RoleAttendee, "a1@example.com")
	_, err := s.svc.RegisterForSession(s.ctx, a1, s1.ID)
	s.Require().NoError(err)

	rows, err := s.svc.SessionPopularity(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Contains(rows, SessionPopularity{SessionID: s1.ID, Topic: "S1", AttendeeCount: 1})

	s.Require().NoError(s.svc.DeleteUser(s.ctx, s.admin, a1.ID))

	rows, err = s.svc.SessionPopularity(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Contains(rows, SessionPopularity{SessionID: s1.ID, Topic: "S1", AttendeeCount: 0})
}

func (s *ServiceSuite) TestDashboardStats() {
	expo := s.newExpo("Stats")
	s.newSession(expo, "Numbers")
	attendee := s.newActor(model.RoleAttendee, "stat@example.com")
	exhibitor, x := s.newExhibitor("Metrics")
	_, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: "S-1", ExhibitorID: &x.ID, Location: model.FloorFirst})
	s.Require().NoError(err)
	_, err = s.svc.SubmitFeedback(s.ctx, attendee, "ok")
	s.Require().NoError(err)
	s.send(attendee, s.admin.ID, "a")
	s.send(attendee, exhibitor.ID, "b")
	s.send(exhibitor, s.admin.ID, "c")
	s.send(s.admin, attendee.ID, "not counted")

	st, err := s.svc.DashboardStats(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Equal(DashboardStats{
		TotalExpos:             1,
		TotalExhibitors:        1,
		TotalAttendees:         1,
		TotalSessions:          1,
		TotalBooths:            1,
		TotalFeedbacks:         1,
		TotalAttendeeMessages:  2,
		TotalExhibitorMessages: 1,
		TotalMessages:          3,
	}, *st)

	_, err = s.svc.DashboardStats(s.ctx, attendee)
	s.ErrorIs(err, apperr.ErrForbidden)
}
