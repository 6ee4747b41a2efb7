package service

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository/mocks"
)

// Each case lets a registration land between the read and the write of an
// update and checks that the update does not undo it.
func (s *ServiceSuite) TestUpdatesKeepInterleavedRegistrations() {
	s.Run("profile keeps a session registration", func() {
		s.SetupTest()
		sess := s.newSession(s.newExpo("Design"), "Type")
		actor := s.newActor(model.RoleAttendee, "rename@example.com")

		ctrl := gomock.NewController(s.T())
		orig := s.store.Users
		m := mocks.NewMockUserRepo(ctrl)
		m.EXPECT().FindByID(gomock.Any(), actor.ID).DoAndReturn(orig.FindByID).Times(2)
		m.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *model.User) error {
			added, err := orig.AddRegistration(ctx, actor.ID, model.RegisteredSessions, sess.ID)
			s.Require().NoError(err)
			s.Require().True(added)
			s.Require().NoError(s.store.Sessions.AddAttendee(ctx, sess.ID, actor.ID))
			return orig.UpdateProfile(ctx, u)
		})
		s.store.Users = m

		name := "renamed"
		got, err := s.svc.UpdateProfile(s.ctx, actor, model.ProfilePatch{Username: &name})
		s.store.Users = orig
		s.Require().NoError(err)
		s.Equal(name, got.Username)
		s.Contains(got.RegisteredSessions, sess.ID)

		stored, err := orig.FindByID(s.ctx, actor.ID)
		s.Require().NoError(err)
		s.Contains(stored.RegisteredSessions, sess.ID)
		s.Equal(name, stored.Username)
		n, err := orig.CountRegistered(s.ctx, model.RegisteredSessions, sess.ID)
		s.Require().NoError(err)
		s.EqualValues(1, n)
	})

	s.Run("expo keeps an exhibitor joining the roster", func() {
		s.SetupTest()
		expo := s.newExpo("Garden")
		actor, _ := s.newExhibitor("Roses")

		ctrl := gomock.NewController(s.T())
		orig := s.store.Expos
		m := mocks.NewMockExpoRepo(ctrl)
		m.EXPECT().FindByID(gomock.Any(), expo.ID).DoAndReturn(orig.FindByID).Times(2)
		m.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *model.Expo) error {
			s.Require().NoError(orig.AddExhibitor(ctx, expo.ID, actor.ID))
			return orig.Update(ctx, e)
		})
		s.store.Expos = m

		title := "Spring Garden"
		got, err := s.svc.UpdateExpo(s.ctx, s.admin, expo.ID, model.ExpoPatch{Title: &title})
		s.store.Expos = orig
		s.Require().NoError(err)
		s.Equal(title, got.Title)
		s.Contains(got.Exhibitors, actor.ID)

		stored, err := orig.FindByID(s.ctx, expo.ID)
		s.Require().NoError(err)
		s.Contains(stored.Exhibitors, actor.ID)
	})

	s.Run("session keeps an attendee registering", func() {
		s.SetupTest()
		sess := s.newSession(s.newExpo("Chess"), "Openings")
		actor := s.newActor(model.RoleAttendee, "pawn@example.com")

		ctrl := gomock.NewController(s.T())
		orig := s.store.Sessions
		m := mocks.NewMockSessionRepo(ctrl)
		m.EXPECT().FindByID(gomock.Any(), sess.ID).DoAndReturn(orig.FindByID).Times(2)
		m.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *model.Session) error {
			s.Require().NoError(orig.AddAttendee(ctx, sess.ID, actor.ID))
			return orig.Update(ctx, u)
		})
		s.store.Sessions = m

		capacity := 40
		got, err := s.svc.UpdateSession(s.ctx, s.admin, sess.ID, model.SessionPatch{Capacity: &capacity})
		s.store.Sessions = orig
		s.Require().NoError(err)
		s.Equal(capacity, got.Capacity)
		s.Contains(got.Attendees, actor.ID)

		stored, err := orig.FindByID(s.ctx, sess.ID)
		s.Require().NoError(err)
		s.Contains(stored.Attendees, actor.ID)
	})
}
