package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/queue"
	"github.com/iliyamo/expo-management/internal/repository"
	"github.com/iliyamo/expo-management/internal/repository/mocks"
)

func (s *ServiceSuite) send(from policy.Actor, to primitive.ObjectID, text string) *model.Message {
	m, err := s.svc.SendMessage(s.ctx, from, MessageInput{
		ReceiverID: to, Message: text, SenderName: "n", SenderEmail: "n@example.com",
	})
	s.Require().NoError(err)
	return m
}

func (s *ServiceSuite) TestDeleteAttendeeRemovesOnlyTheirContent() {
	expo := s.newExpo("Health")
	sess := s.newSession(expo, "Sleep")
	gone := s.newActor(model.RoleAttendee, "gone@example.com")
	stays := s.newActor(model.RoleAttendee, "stays@example.com")

	_, err := s.svc.RegisterForSession(s.ctx, gone, sess.ID)
	s.Require().NoError(err)
	_, err = s.svc.Bookmark(s.ctx, gone, sess.ID)
	s.Require().NoError(err)
	_, err = s.svc.SubmitFeedback(s.ctx, gone, "great")
	s.Require().NoError(err)
	kept, err := s.svc.SubmitFeedback(s.ctx, stays, "fine")
	s.Require().NoError(err)
	s.send(gone, s.admin.ID, "from gone")
	s.send(s.admin, gone.ID, "to gone")
	other := s.send(stays, s.admin.ID, "from stays")

	s.Require().NoError(s.svc.DeleteOwnAccount(s.ctx, gone))

	_, err = s.store.Users.FindByID(s.ctx, gone.ID)
	s.ErrorIs(err, repository.ErrNotFound)

	feedback, err := s.store.Feedback.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(feedback, 1)
	s.Equal(kept.ID, feedback[0].ID)

	inbox, err := s.store.Messages.ListByReceiver(s.ctx, s.admin.ID)
	s.Require().NoError(err)
	s.Require().Len(inbox, 1)
	s.Equal(other.ID, inbox[0].ID)
	_, err = s.store.Messages.FindByID(s.ctx, other.ID)
	s.NoError(err)

	marks, err := s.store.Bookmarks.ListByUser(s.ctx, gone.ID)
	s.Require().NoError(err)
	s.Empty(marks)

	stored, err := s.store.Sessions.FindByID(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.NotContains(stored.Attendees, gone.ID)

	pending, err := s.store.Intents.ListPending(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)
	s.Contains(s.pub.types(), queue.EventUserRemoved)
}

func (s *ServiceSuite) TestDeleteOwnAccountIsAttendeeOnly() {
	exhibitor, _ := s.newExhibitor("Stubborn")
	s.ErrorIs(s.svc.DeleteOwnAccount(s.ctx, exhibitor), apperr.ErrForbidden)
	s.ErrorIs(s.svc.DeleteOwnAccount(s.ctx, s.admin), apperr.ErrForbidden)
}

func (s *ServiceSuite) TestAdminDeletesExhibitorUser() {
	expo := s.newExpo("Cars")
	actor, x := s.newExhibitor("Motors")
	_, err := s.svc.RegisterForExpo(s.ctx, actor, expo.ID)
	s.Require().NoError(err)
	booth, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{
		ExpoID: expo.ID, BoothNumber: "C-1", ExhibitorID: &x.ID, Location: model.FloorFirst,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteUser(s.ctx, s.admin, actor.ID))

	_, err = s.store.Exhibitors.FindByID(s.ctx, x.ID)
	s.ErrorIs(err, repository.ErrNotFound)
	b, err := s.store.Booths.FindByID(s.ctx, booth.ID)
	s.Require().NoError(err)
	s.Nil(b.ExhibitorID)
	s.Equal(model.BoothAvailable, b.Status)
	e, err := s.store.Expos.FindByID(s.ctx, expo.ID)
	s.Require().NoError(err)
	s.Empty(e.Exhibitors)

	s.ErrorIs(s.svc.DeleteUser(s.ctx, s.admin, s.admin.ID), apperr.ErrForbidden)
	s.ErrorIs(s.svc.DeleteUser(s.ctx, s.admin, primitive.NewObjectID()), apperr.ErrNotFound)
}

func (s *ServiceSuite) TestDeleteSessionCleansReferences() {
	expo := s.newExpo("Games")
	sess := s.newSession(expo, "Speedrun")
	actor := s.newActor(model.RoleAttendee, "gamer@example.com")
	_, err := s.svc.RegisterForSession(s.ctx, actor, sess.ID)
	s.Require().NoError(err)
	_, err = s.svc.Bookmark(s.ctx, actor, sess.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteSession(s.ctx, s.admin, sess.ID))

	u, err := s.svc.GetProfile(s.ctx, actor)
	s.Require().NoError(err)
	s.Empty(u.RegisteredSessions)
	marks, err := s.svc.ListBookmarks(s.ctx, actor)
	s.Require().NoError(err)
	s.Empty(marks)
	_, err = s.svc.GetSession(s.ctx, policy.Anonymous, sess.ID)
	s.ErrorIs(err, apperr.ErrNotFound)
}

// cascadeFailure swaps one repository for a mock whose call at the failing
// step returns an error, and returns a func restoring the original.
type cascadeFailure func(ctrl *gomock.Controller, target primitive.ObjectID) (restore func())

type cascadeCase struct {
	name string
	// completed is nil when the failure hits the first step.
	completed []string
	failed    string
	fail      cascadeFailure
}

// checkCascadeFailure runs remove with tc.fail in place, then checks the
// outcome and that ResumePendingCascades finishes whatever was started.
func (s *ServiceSuite) checkCascadeFailure(tc cascadeCase, target primitive.ObjectID, remove func() error, exists func() error) {
	ctrl := gomock.NewController(s.T())
	restore := tc.fail(ctrl, target)
	before := len(s.pub.events)

	err := remove()
	restore()
	s.Require().Error(err)
	s.NoError(exists(), "the target outlives a cascade interrupted before its own step")

	pending, perr := s.store.Intents.ListPending(s.ctx)
	s.Require().NoError(perr)

	var warn *IntegrityWarning
	if tc.completed == nil {
		s.False(errors.As(err, &warn))
		s.ErrorIs(err, apperr.ErrInternal)
		s.Empty(pending)
		s.Len(s.pub.events, before)
		return
	}

	s.Require().ErrorAs(err, &warn)
	s.Equal(tc.completed, warn.Completed)
	s.Equal(tc.failed, warn.Failed)
	s.ErrorIs(err, apperr.ErrInternal)
	s.Contains(s.pub.types()[before:], queue.EventCascadePartial)
	s.Require().Len(pending, 1)
	s.Equal(tc.completed, pending[0].Completed)

	n, err := s.svc.ResumePendingCascades(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
	s.ErrorIs(exists(), repository.ErrNotFound)
	pending, err = s.store.Intents.ListPending(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *ServiceSuite) TestUserCascadeStepFailures() {
	boom := errors.New("write concern timeout")
	upToBookmarks := []string{StepSessionRosters, StepExpoRosters, StepFeedback, StepMessages, StepBookmarks}

	attendee := func() (primitive.ObjectID, func() error) {
		expo := s.newExpo("Robotics")
		sess := s.newSession(expo, "Grippers")
		actor := s.newActor(model.RoleAttendee, "cascade@example.com")
		_, err := s.svc.RegisterForSession(s.ctx, actor, sess.ID)
		s.Require().NoError(err)
		_, err = s.svc.Bookmark(s.ctx, actor, sess.ID)
		s.Require().NoError(err)
		_, err = s.svc.SubmitFeedback(s.ctx, actor, "solid")
		s.Require().NoError(err)
		s.send(actor, s.admin.ID, "hello")
		return actor.ID, func() error { return s.svc.DeleteOwnAccount(s.ctx, actor) }
	}
	exhibitor := func() (primitive.ObjectID, func() error) {
		expo := s.newExpo("Boats")
		actor, x := s.newExhibitor("Sails")
		_, err := s.svc.RegisterForExpo(s.ctx, actor, expo.ID)
		s.Require().NoError(err)
		_, err = s.svc.CreateBooth(s.ctx, s.admin, BoothInput{
			ExpoID: expo.ID, BoothNumber: "S-1", ExhibitorID: &x.ID, Location: model.FloorFirst,
		})
		s.Require().NoError(err)
		return actor.ID, func() error { return s.svc.DeleteUser(s.ctx, s.admin, actor.ID) }
	}

	cases := []struct {
		cascadeCase
		setup func() (primitive.ObjectID, func() error)
	}{
		{cascadeCase{name: "session rosters", fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
			orig := s.store.Sessions
			m := mocks.NewMockSessionRepo(ctrl)
			m.EXPECT().PullAttendee(gomock.Any(), gomock.Any(), target).Return(boom)
			s.store.Sessions = m
			return func() { s.store.Sessions = orig }
		}}, attendee},
		{cascadeCase{name: "expo rosters", completed: []string{StepSessionRosters}, failed: StepExpoRosters,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Expos
				m := mocks.NewMockExpoRepo(ctrl)
				m.EXPECT().PullExhibitor(gomock.Any(), gomock.Len(1), target).Return(boom)
				s.store.Expos = m
				return func() { s.store.Expos = orig }
			}}, exhibitor},
		{cascadeCase{name: "feedback", completed: upToBookmarks[:2], failed: StepFeedback,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Feedback
				m := mocks.NewMockFeedbackRepo(ctrl)
				m.EXPECT().DeleteByUser(gomock.Any(), target).Return(int64(0), boom)
				s.store.Feedback = m
				return func() { s.store.Feedback = orig }
			}}, attendee},
		{cascadeCase{name: "messages", completed: upToBookmarks[:3], failed: StepMessages,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Messages
				m := mocks.NewMockMessageRepo(ctrl)
				m.EXPECT().DeleteByParticipant(gomock.Any(), target).Return(int64(0), boom)
				s.store.Messages = m
				return func() { s.store.Messages = orig }
			}}, attendee},
		{cascadeCase{name: "bookmarks", completed: upToBookmarks[:4], failed: StepBookmarks,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Bookmarks
				m := mocks.NewMockBookmarkRepo(ctrl)
				m.EXPECT().DeleteByUser(gomock.Any(), target).Return(int64(0), boom)
				s.store.Bookmarks = m
				return func() { s.store.Bookmarks = orig }
			}}, attendee},
		{cascadeCase{name: "exhibitor profile", completed: upToBookmarks, failed: StepExhibitorProfile,
			fail: func(ctrl *gomock.Controller, _ primitive.ObjectID) func() {
				orig := s.store.Booths
				m := mocks.NewMockBoothRepo(ctrl)
				m.EXPECT().ReleaseByExhibitor(gomock.Any(), gomock.Any()).Return(int64(0), boom)
				s.store.Booths = m
				return func() { s.store.Booths = orig }
			}}, exhibitor},
		{cascadeCase{name: "user document", completed: upToBookmarks, failed: StepUser,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Users
				m := mocks.NewMockUserRepo(ctrl)
				m.EXPECT().FindByID(gomock.Any(), target).DoAndReturn(orig.FindByID)
				m.EXPECT().Delete(gomock.Any(), target).Return(boom)
				s.store.Users = m
				return func() { s.store.Users = orig }
			}}, attendee},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			target, remove := tc.setup()
			s.checkCascadeFailure(tc.cascadeCase, target, remove, func() error {
				_, err := s.store.Users.FindByID(s.ctx, target)
				return err
			})
		})
	}
}

func (s *ServiceSuite) TestExhibitorCascadeStepFailures() {
	boom := errors.New("primary stepped down")
	cases := []cascadeCase{
		{name: "booths", fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
			orig := s.store.Booths
			m := mocks.NewMockBoothRepo(ctrl)
			m.EXPECT().ReleaseByExhibitor(gomock.Any(), target).Return(int64(0), boom)
			s.store.Booths = m
			return func() { s.store.Booths = orig }
		}},
		{name: "profile after booths were released", completed: []string{StepBooths}, failed: StepExhibitor,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Exhibitors
				m := mocks.NewMockExhibitorRepo(ctrl)
				m.EXPECT().FindByID(gomock.Any(), target).DoAndReturn(orig.FindByID)
				m.EXPECT().Delete(gomock.Any(), target).Return(boom)
				s.store.Exhibitors = m
				return func() { s.store.Exhibitors = orig }
			}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			expo := s.newExpo("Food")
			_, x := s.newExhibitor("Bakery")
			booth, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{
				ExpoID: expo.ID, BoothNumber: "F-1", ExhibitorID: &x.ID, Location: model.FloorFirst,
			})
			s.Require().NoError(err)

			booths := s.store.Booths
			released := func() bool {
				b, err := booths.FindByID(s.ctx, booth.ID)
				s.Require().NoError(err)
				return b.ExhibitorID == nil && b.Status == model.BoothAvailable
			}
			s.checkCascadeFailure(tc, x.ID, func() error {
				err := s.svc.DeleteExhibitor(s.ctx, s.admin, x.ID)
				s.Equal(tc.completed != nil, released(), "booths are released only once their step ran")
				return err
			}, func() error {
				_, err := s.store.Exhibitors.FindByID(s.ctx, x.ID)
				return err
			})
			if tc.completed != nil {
				s.True(released())
			}
		})
	}
}

func (s *ServiceSuite) TestSessionCascadeStepFailures() {
	boom := errors.New("connection reset")
	cases := []cascadeCase{
		{name: "bookmarks", fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
			orig := s.store.Bookmarks
			m := mocks.NewMockBookmarkRepo(ctrl)
			m.EXPECT().DeleteBySession(gomock.Any(), target).Return(int64(0), boom)
			s.store.Bookmarks = m
			return func() { s.store.Bookmarks = orig }
		}},
		{name: "registrations", completed: []string{StepBookmarks}, failed: StepRegistrations,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Users
				m := mocks.NewMockUserRepo(ctrl)
				m.EXPECT().PullRegistration(gomock.Any(), model.RegisteredSessions, target).Return(int64(0), boom)
				s.store.Users = m
				return func() { s.store.Users = orig }
			}},
		{name: "session document", completed: []string{StepBookmarks, StepRegistrations}, failed: StepSession,
			fail: func(ctrl *gomock.Controller, target primitive.ObjectID) func() {
				orig := s.store.Sessions
				m := mocks.NewMockSessionRepo(ctrl)
				m.EXPECT().FindByID(gomock.Any(), target).DoAndReturn(orig.FindByID)
				m.EXPECT().Delete(gomock.Any(), target).Return(boom)
				s.store.Sessions = m
				return func() { s.store.Sessions = orig }
			}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			expo := s.newExpo("Film")
			sess := s.newSession(expo, "Editing")
			actor := s.newActor(model.RoleAttendee, "viewer@example.com")
			_, err := s.svc.RegisterForSession(s.ctx, actor, sess.ID)
			s.Require().NoError(err)
			_, err = s.svc.Bookmark(s.ctx, actor, sess.ID)
			s.Require().NoError(err)

			s.checkCascadeFailure(tc, sess.ID, func() error {
				return s.svc.DeleteSession(s.ctx, s.admin, sess.ID)
			}, func() error {
				_, err := s.store.Sessions.FindByID(s.ctx, sess.ID)
				return err
			})

			u, err := s.store.Users.FindByID(s.ctx, actor.ID)
			s.Require().NoError(err)
			if tc.completed == nil {
				s.Contains(u.RegisteredSessions, sess.ID)
				return
			}
			s.Empty(u.RegisteredSessions)
			marks, err := s.store.Bookmarks.ListByUser(s.ctx, actor.ID)
			s.Require().NoError(err)
			s.Empty(marks)
		})
	}
}
