package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
)

func (s *ServiceSuite) TestExpoLifecycle() {
	attendee := s.newActor(model.RoleAttendee, "viewer@example.com")
	_, err := s.svc.CreateExpo(s.ctx, attendee, ExpoInput{Title: "x"})
	s.ErrorIs(err, apperr.ErrForbidden)
	_, err = s.svc.CreateExpo(s.ctx, policy.Anonymous, ExpoInput{Title: "x"})
	s.ErrorIs(err, apperr.ErrUnauthenticated)

	_, err = s.svc.CreateExpo(s.ctx, s.admin, ExpoInput{Title: "no date", Description: "d", Theme: "t", Location: "l"})
	s.ErrorIs(err, apperr.ErrValidation)

	expo := s.newExpo("Design")
	title := "Design Week"
	updated, err := s.svc.UpdateExpo(s.ctx, s.admin, expo.ID, model.ExpoPatch{Title: &title})
	s.Require().NoError(err)
	s.Equal("Design Week", updated.Title)

	list, err := s.svc.ListExpos(s.ctx, policy.Anonymous)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Run("refuses to delete an expo that still has children", func() {
		sess := s.newSession(expo, "Fonts")
		err := s.svc.DeleteExpo(s.ctx, s.admin, expo.ID)
		s.ErrorIs(err, apperr.ErrConflict)
		s.Require().NoError(s.svc.DeleteSession(s.ctx, s.admin, sess.ID))
	})

	s.Require().NoError(s.svc.DeleteExpo(s.ctx, s.admin, expo.ID))
	_, err = s.svc.GetExpo(s.ctx, policy.Anonymous, expo.ID)
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *ServiceSuite) TestDeleteExpoDropsExhibitorRegistrations() {
	gone := s.newExpo("Autumn")
	kept := s.newExpo("Winter")
	actor, _ := s.newExhibitor("Leaves")
	_, err := s.svc.RegisterForExpo(s.ctx, actor, gone.ID)
	s.Require().NoError(err)
	_, err = s.svc.RegisterForExpo(s.ctx, actor, kept.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteExpo(s.ctx, s.admin, gone.ID))

	u, err := s.svc.GetProfile(s.ctx, actor)
	s.Require().NoError(err)
	s.Equal([]primitive.ObjectID{kept.ID}, u.RegisteredExpos)

	_, err = s.svc.RegisterForExpo(s.ctx, actor, gone.ID)
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *ServiceSuite) TestDuplicateSessionSlot() {
	expo := s.newExpo("Science")
	first := s.newSession(expo, "Quarks")

	_, err := s.svc.CreateSession(s.ctx, s.admin, s.sessionInput(expo.ID, "Quarks"))
	s.ErrorIs(err, apperr.ErrConflict)

	other, err := s.svc.CreateSession(s.ctx, s.admin, s.sessionInput(expo.ID, "Leptons"))
	s.Require().NoError(err)
	s.Equal(model.SessionUpcoming, other.Status)

	topic := "Quarks"
	_, err = s.svc.UpdateSession(s.ctx, s.admin, other.ID, model.SessionPatch{Topic: &topic})
	s.ErrorIs(err, apperr.ErrConflict, "an update may not move a session onto a taken slot")

	speaker := "Marie"
	moved, err := s.svc.UpdateSession(s.ctx, s.admin, first.ID, model.SessionPatch{Speaker: &speaker})
	s.Require().NoError(err)
	s.Equal("Marie", moved.Speaker)

	_, err = s.svc.CreateSession(s.ctx, s.admin, s.sessionInput(primitive.NewObjectID(), "Orphan"))
	s.ErrorIs(err, apperr.ErrNotFound)

	byExpo, err := s.svc.ListSessions(s.ctx, policy.Anonymous, &expo.ID)
	s.Require().NoError(err)
	s.Len(byExpo, 2)
}

func (s *ServiceSuite) TestSecondExhibitorProfile() {
	actor, x := s.newExhibitor("Acme")
	s.Equal(model.ApplicationPending, x.ApplicationStatus)
	s.Equal(model.DefaultExhibitorLogo, x.Logo)

	_, err := s.svc.CreateExhibitor(s.ctx, actor, ExhibitorInput{
		CompanyName: "Acme Two", ProductsOrServices: "p", ContactInfo: "c",
	})
	s.ErrorIs(err, apperr.ErrConflict)

	all, err := s.svc.ListExhibitors(s.ctx, policy.Anonymous, "")
	s.Require().NoError(err)
	s.Len(all, 1)

	found, err := s.svc.ListExhibitors(s.ctx, policy.Anonymous, "acm")
	s.Require().NoError(err)
	s.Len(found, 1)
	none, err := s.svc.ListExhibitors(s.ctx, policy.Anonymous, "zebra")
	s.Require().NoError(err)
	s.Empty(none)

	byUser, err := s.svc.GetExhibitorByUser(s.ctx, policy.Anonymous, actor.ID)
	s.Require().NoError(err)
	s.Equal(x.ID, byUser.ID)
}

func (s *ServiceSuite) TestExhibitorUpdatesAndReview() {
	actor, x := s.newExhibitor("Globex")

	approved := model.ApplicationApproved
	_, err := s.svc.UpdateOwnExhibitor(s.ctx, actor, model.ExhibitorPatch{ApplicationStatus: &approved})
	s.ErrorIs(err, apperr.ErrForbidden)

	name := "Globex Corp"
	own, err := s.svc.UpdateOwnExhibitor(s.ctx, actor, model.ExhibitorPatch{CompanyName: &name})
	s.Require().NoError(err)
	s.Equal("Globex Corp", own.CompanyName)

	reviewed, err := s.svc.ReviewExhibitor(s.ctx, s.admin, x.ID, model.ApplicationRejected)
	s.Require().NoError(err)
	s.Equal(model.ApplicationRejected, reviewed.ApplicationStatus)
	reviewed, err = s.svc.ReviewExhibitor(s.ctx, s.admin, x.ID, model.ApplicationApproved)
	s.Require().NoError(err)
	s.Equal(model.ApplicationApproved, reviewed.ApplicationStatus, "any status may follow any other")

	_, err = s.svc.ReviewExhibitor(s.ctx, actor, x.ID, model.ApplicationApproved)
	s.ErrorIs(err, apperr.ErrForbidden)
	_, err = s.svc.ReviewExhibitor(s.ctx, s.admin, primitive.NewObjectID(), model.ApplicationApproved)
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *ServiceSuite) TestBoothStatusFollowsAssignment() {
	expo := s.newExpo("Fashion")
	_, x := s.newExhibitor("Threads")

	b1, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: "F-1", Location: model.FloorSecond})
	s.Require().NoError(err)
	s.Nil(b1.ExhibitorID)
	s.Equal(model.BoothAvailable, b1.Status)

	available := model.BoothAvailable
	b1, err = s.svc.UpdateBooth(s.ctx, s.admin, b1.ID, model.BoothPatch{
		ExhibitorID: model.NullableID{Set: true, Value: &x.ID},
		Status:      &available,
	})
	s.Require().NoError(err)
	s.Equal(model.BoothReserved, b1.Status, "the derived status wins over an explicit one")

	reserved := model.BoothReserved
	b1, err = s.svc.UpdateBooth(s.ctx, s.admin, b1.ID, model.BoothPatch{
		ExhibitorID: model.NullableID{Set: true},
		Status:      &reserved,
	})
	s.Require().NoError(err)
	s.Nil(b1.ExhibitorID)
	s.Equal(model.BoothAvailable, b1.Status)

	_, err = s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: "F-1", Location: model.FloorFirst})
	s.ErrorIs(err, apperr.ErrConflict)

	ghost := primitive.NewObjectID()
	_, err = s.svc.UpdateBooth(s.ctx, s.admin, b1.ID, model.BoothPatch{ExhibitorID: model.NullableID{Set: true, Value: &ghost}})
	s.ErrorIs(err, apperr.ErrNotFound)

	_, err = s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: "F-2", Location: "Roof"})
	s.ErrorIs(err, apperr.ErrValidation)
}

func (s *ServiceSuite) TestExhibitorAssignsOnlyOwnBooths() {
	expo := s.newExpo("Books")
	mine, x := s.newExhibitor("Pages")
	theirs, y := s.newExhibitor("Ink")
	free, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: "B-1", Location: model.FloorBasement})
	s.Require().NoError(err)

	_, err = s.svc.UpdateBooth(s.ctx, mine, free.ID, model.BoothPatch{ExhibitorID: model.NullableID{Set: true, Value: &y.ID}})
	s.ErrorIs(err, apperr.ErrForbidden)

	number := "B-99"
	_, err = s.svc.UpdateBooth(s.ctx, mine, free.ID, model.BoothPatch{BoothNumber: &number, ExhibitorID: model.NullableID{Set: true, Value: &x.ID}})
	s.ErrorIs(err, apperr.ErrForbidden)

	taken, err := s.svc.UpdateBooth(s.ctx, mine, free.ID, model.BoothPatch{ExhibitorID: model.NullableID{Set: true, Value: &x.ID}})
	s.Require().NoError(err)
	s.Equal(model.BoothReserved, taken.Status)

	_, err = s.svc.UpdateBooth(s.ctx, theirs, free.ID, model.BoothPatch{ExhibitorID: model.NullableID{Set: true}})
	s.ErrorIs(err, apperr.ErrConflict)

	my, err := s.svc.ListMyBooths(s.ctx, mine)
	s.Require().NoError(err)
	s.Len(my, 1)
	other, err := s.svc.ListMyBooths(s.ctx, theirs)
	s.Require().NoError(err)
	s.Empty(other)

	reserved, err := s.svc.ListReservedBooths(s.ctx, policy.Anonymous)
	s.Require().NoError(err)
	s.Require().Len(reserved, 1)
	s.Equal("Pages", reserved[0].Exhibitor.CompanyName)

	released, err := s.svc.UpdateBooth(s.ctx, mine, free.ID, model.BoothPatch{ExhibitorID: model.NullableID{Set: true}})
	s.Require().NoError(err)
	s.Equal(model.BoothAvailable, released.Status)
}

func (s *ServiceSuite) TestDeleteExhibitorFreesOnlyItsBooths() {
	expo := s.newExpo("Energy")
	_, x := s.newExhibitor("Solar")
	_, y := s.newExhibitor("Wind")

	var xs []primitive.ObjectID
	for _, n := range []string{"E-1", "E-2"} {
		b, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: n, ExhibitorID: &x.ID, Location: model.FloorThird})
		s.Require().NoError(err)
		xs = append(xs, b.ID)
	}
	yb, err := s.svc.CreateBooth(s.ctx, s.admin, BoothInput{ExpoID: expo.ID, BoothNumber: "E-3", ExhibitorID: &y.ID, Location: model.FloorThird})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteExhibitor(s.ctx, s.admin, x.ID))

	for _, id := range xs {
		b, err := s.svc.GetBooth(s.ctx, policy.Anonymous, id)
		s.Require().NoError(err)
		s.Nil(b.ExhibitorID)
		s.Equal(model.BoothAvailable, b.Status)
	}
	b, err := s.svc.GetBooth(s.ctx, policy.Anonymous, yb.ID)
	s.Require().NoError(err)
	s.True(b.AssignedTo(y.ID))
	s.Equal(model.BoothReserved, b.Status)

	_, err = s.svc.GetExhibitor(s.ctx, policy.Anonymous, x.ID)
	s.ErrorIs(err, apperr.ErrNotFound)

	available, err := s.svc.ListAvailableBooths(s.ctx, policy.Anonymous)
	s.Require().NoError(err)
	s.Len(available, 2)
}

func (s *ServiceSuite) TestBookmarks() {
	expo := s.newExpo("Travel")
	sess := s.newSession(expo, "Maps")
	actor := s.newActor(model.RoleAttendee, "traveller@example.com")

	_, err := s.svc.Bookmark(s.ctx, actor, sess.ID)
	s.Require().NoError(err)
	_, err = s.svc.Bookmark(s.ctx, actor, sess.ID)
	s.ErrorIs(err, apperr.ErrConflict)
	_, err = s.svc.Bookmark(s.ctx, actor, primitive.NewObjectID())
	s.ErrorIs(err, apperr.ErrNotFound)

	marks, err := s.svc.ListBookmarks(s.ctx, actor)
	s.Require().NoError(err)
	s.Require().Len(marks, 1)
	s.Equal("Maps", marks[0].Session.Topic)

	s.Require().NoError(s.svc.RemoveBookmark(s.ctx, actor, sess.ID))
	s.ErrorIs(s.svc.RemoveBookmark(s.ctx, actor, sess.ID), apperr.ErrNotFound)

	_, err = s.svc.Bookmark(s.ctx, s.admin, sess.ID)
	s.ErrorIs(err, apperr.ErrForbidden)
}

func (s *ServiceSuite) TestFeedback() {
	actor := s.newActor(model.RoleAttendee, "critic@example.com")
	_, err := s.svc.SubmitFeedback(s.ctx, actor, "   ")
	s.ErrorIs(err, apperr.ErrValidation)

	f, err := s.svc.SubmitFeedback(s.ctx, actor, "loved it")
	s.Require().NoError(err)

	exhibitor, _ := s.newExhibitor("Quiet")
	_, err = s.svc.SubmitFeedback(s.ctx, exhibitor, "me too")
	s.ErrorIs(err, apperr.ErrForbidden)

	list, err := s.svc.ListFeedback(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(actor.ID, list[0].Author.ID)

	s.Require().NoError(s.svc.DeleteFeedback(s.ctx, s.admin, f.ID))
	s.ErrorIs(s.svc.DeleteFeedback(s.ctx, s.admin, f.ID), apperr.ErrNotFound)
}

func (s *ServiceSuite) TestMessages() {
	attendee := s.newActor(model.RoleAttendee, "asker@example.com")
	exhibitor, _ := s.newExhibitor("Vendor")

	_, err := s.svc.SendMessage(s.ctx, attendee, MessageInput{
		ReceiverID: attendee.ID, Message: "hi", SenderName: "me", SenderEmail: "me@example.com",
	})
	s.ErrorIs(err, apperr.ErrConflict)

	_, err = s.svc.SendMessage(s.ctx, attendee, MessageInput{
		ReceiverID: primitive.NewObjectID(), Message: "hi", SenderName: "me", SenderEmail: "me@example.com",
	})
	s.ErrorIs(err, apperr.ErrNotFound)

	_, err = s.svc.SendMessage(s.ctx, attendee, MessageInput{ReceiverID: s.admin.ID, Message: "hi"})
	s.ErrorIs(err, apperr.ErrValidation)

	fromAttendee := s.send(attendee, s.admin.ID, "question")
	s.send(exhibitor, s.admin.ID, "booth request")

	list, err := s.svc.ListMessagesToAdmin(s.ctx, s.admin, model.RoleAttendee)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(fromAttendee.ID, list[0].ID)
	s.Equal(model.RoleAttendee, list[0].SenderInfo.Role)

	list, err = s.svc.ListMessagesToAdmin(s.ctx, s.admin, model.RoleExhibitor)
	s.Require().NoError(err)
	s.Len(list, 1)

	_, err = s.svc.ListMessagesToAdmin(s.ctx, s.admin, model.RoleAdmin)
	s.ErrorIs(err, apperr.ErrValidation)

	s.Require().NoError(s.svc.DeleteMessage(s.ctx, s.admin, fromAttendee.ID))
}
