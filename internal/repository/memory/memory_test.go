package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *repository.Store
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) newUser(email string, role model.Role) *model.User {
	u := &model.User{Username: "u", Email: email, PasswordHash: "h", Address: "a", Role: role}
	s.Require().NoError(s.store.Users.Insert(s.ctx, u))
	return u
}

func (s *MemoryStoreSuite) TestUserUniqueness() {
	s.Run("rejects duplicate email", func() {
		s.newUser("dup@example.com", model.RoleAttendee)
		err := s.store.Users.Insert(s.ctx, &model.User{Email: "dup@example.com", Role: model.RoleAttendee})
		s.ErrorIs(err, repository.ErrDuplicate)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.Users.FindByID(s.ctx, primitive.NewObjectID())
		s.ErrorIs(err, repository.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestReturnedRecordsAreCopies() {
	u := s.newUser("copy@example.com", model.RoleExhibitor)
	expoID := primitive.NewObjectID()

	found, err := s.store.Users.FindByID(s.ctx, u.ID)
	s.Require().NoError(err)
	found.RegisteredExpos = append(found.RegisteredExpos, expoID)

	again, err := s.store.Users.FindByID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Empty(again.RegisteredExpos)
}

func (s *MemoryStoreSuite) TestRegistrations() {
	u := s.newUser("reg@example.com", model.RoleAttendee)
	v := s.newUser("reg2@example.com", model.RoleAttendee)
	sessionID := primitive.NewObjectID()

	added, err := s.store.Users.AddRegistration(s.ctx, u.ID, model.RegisteredSessions, sessionID)
	s.Require().NoError(err)
	s.True(added)

	added, err = s.store.Users.AddRegistration(s.ctx, u.ID, model.RegisteredSessions, sessionID)
	s.Require().NoError(err)
	s.False(added, "second registration is a no-op")

	_, err = s.store.Users.AddRegistration(s.ctx, v.ID, model.RegisteredSessions, sessionID)
	s.Require().NoError(err)

	n, err := s.store.Users.CountRegistered(s.ctx, model.RegisteredSessions, sessionID)
	s.Require().NoError(err)
	s.EqualValues(2, n)

	pulled, err := s.store.Users.PullRegistration(s.ctx, model.RegisteredSessions, sessionID)
	s.Require().NoError(err)
	s.EqualValues(2, pulled)

	n, err = s.store.Users.CountRegistered(s.ctx, model.RegisteredSessions, sessionID)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *MemoryStoreSuite) TestListByRoleNewestFirst() {
	first := s.newUser("first@example.com", model.RoleAttendee)
	time.Sleep(time.Millisecond)
	second := s.newUser("second@example.com", model.RoleAttendee)
	s.newUser("x@example.com", model.RoleExhibitor)

	users, err := s.store.Users.ListByRole(s.ctx, model.RoleAttendee)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal(second.ID, users[0].ID)
	s.Equal(first.ID, users[1].ID)
}

func (s *MemoryStoreSuite) TestSessionSlotUniqueness() {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	newSession := func() *model.Session {
		return &model.Session{
			ExpoID: primitive.NewObjectID(), Topic: "Go", Speaker: "Rob", Location: "Hall A",
			Time: model.SessionTime{Start: start, End: start.Add(time.Hour)}, Status: model.SessionUpcoming,
		}
	}
	a := newSession()
	s.Require().NoError(s.store.Sessions.Insert(s.ctx, a))

	b := newSession()
	b.ExpoID = a.ExpoID
	s.ErrorIs(s.store.Sessions.Insert(s.ctx, b), repository.ErrDuplicate)

	b.Speaker = "Ken"
	s.Require().NoError(s.store.Sessions.Insert(s.ctx, b))

	b.Speaker = "Rob"
	s.ErrorIs(s.store.Sessions.Update(s.ctx, b), repository.ErrDuplicate)
}

func (s *MemoryStoreSuite) TestBoothNumbersAndRelease() {
	exhibitorID := primitive.NewObjectID()
	expoID := primitive.NewObjectID()

	b1 := &model.Booth{ExpoID: expoID, BoothNumber: "A1", Location: model.FloorFirst}
	b1.Assign(&exhibitorID)
	s.Require().NoError(s.store.Booths.Insert(s.ctx, b1))

	s.ErrorIs(s.store.Booths.Insert(s.ctx, &model.Booth{ExpoID: expoID, BoothNumber: "A1"}), repository.ErrDuplicate)

	b2 := &model.Booth{ExpoID: expoID, BoothNumber: "A2", Location: model.FloorFirst}
	b2.Assign(nil)
	s.Require().NoError(s.store.Booths.Insert(s.ctx, b2))

	reserved, err := s.store.Booths.ListByStatus(s.ctx, true)
	s.Require().NoError(err)
	s.Len(reserved, 1)

	n, err := s.store.Booths.ReleaseByExhibitor(s.ctx, exhibitorID)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	got, err := s.store.Booths.FindByID(s.ctx, b1.ID)
	s.Require().NoError(err)
	s.Nil(got.ExhibitorID)
	s.Equal(model.BoothAvailable, got.Status)
}

func (s *MemoryStoreSuite) TestBookmarkPairUniqueness() {
	userID, sessionID := primitive.NewObjectID(), primitive.NewObjectID()
	s.Require().NoError(s.store.Bookmarks.Insert(s.ctx, &model.Bookmark{UserID: userID, SessionID: sessionID}))
	s.ErrorIs(s.store.Bookmarks.Insert(s.ctx, &model.Bookmark{UserID: userID, SessionID: sessionID}), repository.ErrDuplicate)

	n, err := s.store.Bookmarks.DeleteBySession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.EqualValues(1, n)
	s.ErrorIs(s.store.Bookmarks.DeletePair(s.ctx, userID, sessionID), repository.ErrNotFound)
}

func (s *MemoryStoreSuite) TestMessagesByParticipant() {
	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	for _, m := range []*model.Message{
		{Sender: a, Receiver: b, Message: "hi"},
		{Sender: b, Receiver: a, Message: "hey"},
		{Sender: c, Receiver: b, Message: "yo"},
	} {
		s.Require().NoError(s.store.Messages.Insert(s.ctx, m))
	}

	n, err := s.store.Messages.CountBySenders(s.ctx, []primitive.ObjectID{a, c})
	s.Require().NoError(err)
	s.EqualValues(2, n)

	deleted, err := s.store.Messages.DeleteByParticipant(s.ctx, a)
	s.Require().NoError(err)
	s.EqualValues(2, deleted)

	inbox, err := s.store.Messages.ListByReceiver(s.ctx, b)
	s.Require().NoError(err)
	s.Len(inbox, 1)
}

func (s *MemoryStoreSuite) TestIntentLog() {
	in := &model.CascadeIntent{Kind: model.CascadeUser, TargetID: primitive.NewObjectID()}
	s.Require().NoError(s.store.Intents.Insert(s.ctx, in))
	s.Require().NoError(s.store.Intents.MarkStep(s.ctx, in.ID, "feedback"))
	s.Require().NoError(s.store.Intents.MarkStep(s.ctx, in.ID, "feedback"))

	pending, err := s.store.Intents.ListPending(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal([]string{"feedback"}, pending[0].Completed)

	s.Require().NoError(s.store.Intents.Delete(s.ctx, in.ID))
	pending, err = s.store.Intents.ListPending(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)
}

func (s *MemoryStoreSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.store.Expos.List(ctx)
	s.ErrorIs(err, context.Canceled)
}
