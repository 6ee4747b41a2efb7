package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
)

func TestAllow(t *testing.T) {
	cases := []struct {
		role model.Role
		op   Op
		want bool
	}{
		{"", CreateUser, true},
		{"", ReadExpo, true},
		{"", WriteExpo, false},
		{model.RoleAttendee, WriteExpo, false},
		{model.RoleAdmin, WriteExpo, true},
		{model.RoleExhibitor, RegisterForExpo, true},
		{model.RoleAttendee, RegisterForExpo, false},
		{model.RoleAttendee, RegisterForSession, true},
		{model.RoleExhibitor, RegisterForSession, false},
		{model.RoleAttendee, DeleteOwnAccount, true},
		{model.RoleExhibitor, DeleteOwnAccount, false},
		{model.RoleAdmin, DeleteOwnAccount, false},
		{model.RoleExhibitor, UpdateBooth, true},
		{model.RoleAdmin, UpdateBooth, true},
		{model.RoleAttendee, UpdateBooth, false},
		{model.RoleExhibitor, CreateBooth, false},
		{model.RoleAttendee, ManageBookmarks, true},
		{model.RoleAdmin, ManageBookmarks, false},
		{model.RoleAttendee, SubmitFeedback, true},
		{model.RoleAttendee, ListFeedback, false},
		{model.RoleExhibitor, SendMessage, true},
		{"", SendMessage, false},
		{model.RoleAdmin, ViewAnalytics, true},
		{model.RoleExhibitor, ViewAnalytics, false},
		{model.RoleAdmin, Op("unknown"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allow(tc.role, tc.op), "%s %s", tc.role, tc.op)
	}
}

func TestCheck(t *testing.T) {
	attendee := Actor{ID: primitive.NewObjectID(), Role: model.RoleAttendee}

	assert.NoError(t, Check(Anonymous, ReadSession))
	assert.NoError(t, Check(attendee, SubmitFeedback))
	assert.ErrorIs(t, Check(Anonymous, SubmitFeedback), apperr.ErrUnauthenticated)
	assert.ErrorIs(t, Check(attendee, ViewAnalytics), apperr.ErrForbidden)
	assert.ErrorIs(t, Check(Actor{Role: model.RoleAdmin}, ViewAnalytics), apperr.ErrUnauthenticated,
		"a role without an identity is not authenticated")
}

func TestRolesForReturnsCopy(t *testing.T) {
	roles := RolesFor(UpdateBooth)
	roles[0] = model.RoleAttendee

	assert.Equal(t, []model.Role{model.RoleAdmin, model.RoleExhibitor}, RolesFor(UpdateBooth))
	assert.Nil(t, RolesFor(GetOwnProfile))
}
