// Package policy holds the access-control predicates of every engine
// operation.  The checks are pure functions of the caller's role and the
// operation, evaluated before any store access.
package policy

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
)

// Actor identifies the caller of an operation.  The zero value is an
// anonymous caller.
type Actor struct {
	ID   primitive.ObjectID
	Role model.Role
}

// Anonymous is the actor of unauthenticated requests.
var Anonymous = Actor{}

// Authenticated reports whether the actor carries a verified identity.
func (a Actor) Authenticated() bool { return !a.ID.IsZero() && a.Role.Valid() }

// Op names an engine operation.
type Op string

const (
	CreateUser           Op = "user.create"
	Authenticate         Op = "user.authenticate"
	RefreshToken         Op = "user.refresh"
	RequestPasswordReset Op = "user.password_reset.request"
	ApplyPasswordReset   Op = "user.password_reset.apply"
	Logout               Op = "user.logout"
	GetOwnProfile        Op = "user.profile.get"
	UpdateOwnProfile     Op = "user.profile.update"
	DeleteOwnAccount     Op = "user.delete_own"
	RegisterForExpo      Op = "user.register_expo"
	RegisterForSession   Op = "user.register_session"
	ListUsers            Op = "user.list"
	ListExhibitorUsers   Op = "user.list_exhibitors"
	GetAdminContact      Op = "user.admin_contact"
	DeleteUser           Op = "user.delete"

	ReadExpo  Op = "expo.read"
	WriteExpo Op = "expo.write"

	ReadSession  Op = "session.read"
	WriteSession Op = "session.write"

	ReadExhibitor        Op = "exhibitor.read"
	CreateOwnExhibitor   Op = "exhibitor.create_own"
	UpdateOwnExhibitor   Op = "exhibitor.update_own"
	UpdateAnyExhibitor   Op = "exhibitor.update_any"
	ReviewExhibitor      Op = "exhibitor.review"
	DeleteExhibitor      Op = "exhibitor.delete"
	ReadBoothAvailable   Op = "booth.read"
	ListOwnBooths        Op = "booth.list_own"
	CreateBooth          Op = "booth.create"
	UpdateBooth          Op = "booth.update"
	DeleteBooth          Op = "booth.delete"
	ManageBookmarks      Op = "bookmark.manage"
	SubmitFeedback       Op = "feedback.submit"
	ListFeedback         Op = "feedback.list"
	DeleteFeedback       Op = "feedback.delete"
	SendMessage          Op = "message.send"
	ListMessagesToAdmin  Op = "message.list_to_admin"
	DeleteMessage        Op = "message.delete"
	ViewAnalytics        Op = "analytics.view"
)

// rule is a row of the access table.  A public rule admits anonymous
// callers; an empty roles list admits any authenticated caller.
type rule struct {
	public bool
	roles  []model.Role
}

var (
	public        = rule{public: true}
	authenticated = rule{}
	admin         = rule{roles: []model.Role{model.RoleAdmin}}
	exhibitor     = rule{roles: []model.Role{model.RoleExhibitor}}
	attendee      = rule{roles: []model.Role{model.RoleAttendee}}
)

var table = map[Op]rule{
	CreateUser:           public,
	Authenticate:         public,
	RefreshToken:         public,
	RequestPasswordReset: public,
	ApplyPasswordReset:   public,
	Logout:               authenticated,
	GetOwnProfile:        authenticated,
	UpdateOwnProfile:     authenticated,
	DeleteOwnAccount:     attendee,
	RegisterForExpo:      exhibitor,
	RegisterForSession:   attendee,
	ListUsers:            admin,
	ListExhibitorUsers:   admin,
	GetAdminContact:      authenticated,
	DeleteUser:           admin,

	ReadExpo:  public,
	WriteExpo: admin,

	ReadSession:  public,
	WriteSession: admin,

	ReadExhibitor:      public,
	CreateOwnExhibitor: exhibitor,
	UpdateOwnExhibitor: exhibitor,
	UpdateAnyExhibitor: admin,
	ReviewExhibitor:    admin,
	DeleteExhibitor:    admin,

	ReadBoothAvailable: public,
	ListOwnBooths:      exhibitor,
	CreateBooth:        admin,
	UpdateBooth:        {roles: []model.Role{model.RoleAdmin, model.RoleExhibitor}},
	DeleteBooth:        admin,

	ManageBookmarks: attendee,

	SubmitFeedback: attendee,
	ListFeedback:   admin,
	DeleteFeedback: admin,

	SendMessage:         authenticated,
	ListMessagesToAdmin: admin,
	DeleteMessage:       admin,

	ViewAnalytics: admin,
}

// Allow reports whether an actor of role may perform op.  An empty role
// stands for an anonymous caller.  Unknown operations are denied.
func Allow(role model.Role, op Op) bool {
	r, ok := table[op]
	if !ok {
		return false
	}
	if r.public {
		return true
	}
	if !role.Valid() {
		return false
	}
	if len(r.roles) == 0 {
		return true
	}
	for _, allowed := range r.roles {
		if role == allowed {
			return true
		}
	}
	return false
}

// Public reports whether op admits anonymous callers.
func Public(op Op) bool { return table[op].public }

// RolesFor lists the roles admitted by op; nil means any authenticated
// role (or anyone, for public operations).
func RolesFor(op Op) []model.Role {
	return append([]model.Role(nil), table[op].roles...)
}

// Check returns nil when the actor may perform op, Unauthenticated when a
// credential is required but missing, and Forbidden otherwise.
func Check(a Actor, op Op) error {
	if Allow(a.Role, op) && (Public(op) || a.Authenticated()) {
		return nil
	}
	if !Public(op) && !a.Authenticated() {
		return apperr.Unauthenticated("authentication required")
	}
	return apperr.Forbidden("role %q may not perform %s", a.Role, op)
}
