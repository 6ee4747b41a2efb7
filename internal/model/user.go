package model

import (
	"net/mail"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
)

// Role is the account type of a user.  It is fixed at creation time.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleExhibitor Role = "exhibitor"
	RoleAttendee  Role = "attendee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleExhibitor, RoleAttendee:
		return true
	}
	return false
}

// ParseRole normalizes a client supplied role (case and surrounding spaces
// are ignored).
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Gender is the optional self-declared gender of a user.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// ParseGender lower-cases the input before validation.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	return g, g.Valid()
}

// DefaultProfileImg is assigned when a user registers without an avatar.
const DefaultProfileImg = "https://img.freepik.com/premium-vector/male-face-avatar-icon-set-flat-design-social-media-profiles_1281173-3806.jpg?semt=ais_hybrid&w=740"

// RegistrationList names one of the two registration arrays kept on a user
// document.  The value is the stored field name.
type RegistrationList string

const (
	RegisteredExpos    RegistrationList = "registeredExpos"
	RegisteredSessions RegistrationList = "registeredSessions"
)

// User represents an account stored in the `users` collection.
//
// Fields:
//
//	ID                 – document identifier.
//	Email              – unique, normalized to lower case.
//	PasswordHash       – bcrypt hash, never serialized to clients.
//	Role               – admin, exhibitor or attendee.
//	ResetToken(Expiry) – pending password reset, valid until the expiry.
//	RegisteredExpos    – expos an exhibitor registered for.
//	RegisteredSessions – sessions an attendee registered for.
type User struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username           string               `bson:"username" json:"username"`
	Email              string               `bson:"email" json:"email"`
	PasswordHash       string               `bson:"password" json:"-"`
	Address            string               `bson:"address" json:"address"`
	Gender             Gender               `bson:"gender,omitempty" json:"gender,omitempty"`
	ProfileImg         string               `bson:"profileImg" json:"profileImg"`
	Role               Role                 `bson:"role" json:"role"`
	ResetToken         string               `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiry   *time.Time           `bson:"resetTokenExpiry,omitempty" json:"-"`
	RegisteredExpos    []primitive.ObjectID `bson:"registeredExpos" json:"registeredExpos"`
	RegisteredSessions []primitive.ObjectID `bson:"registeredSessions" json:"registeredSessions"`
	CreatedAt          time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeEmail lower-cases and trims an address so lookups and the
// unique index agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks the fields required before a user is inserted.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return apperr.Validation("username is required")
	}
	if u.Email == "" {
		return apperr.Validation("email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperr.Validation("email is malformed")
	}
	if u.PasswordHash == "" {
		return apperr.Validation("password is required")
	}
	if strings.TrimSpace(u.Address) == "" {
		return apperr.Validation("address is required")
	}
	if u.Gender != "" && !u.Gender.Valid() {
		return apperr.Validation("gender must be male or female")
	}
	if !u.Role.Valid() {
		return apperr.Validation("role must be admin, exhibitor or attendee")
	}
	return nil
}

// Registered reports whether id is present in the given registration list.
func (u *User) Registered(list RegistrationList, id primitive.ObjectID) bool {
	ids := u.RegisteredExpos
	if list == RegisteredSessions {
		ids = u.RegisteredSessions
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ResetTokenValid reports whether token matches the pending reset and has
// not expired at now.
func (u *User) ResetTokenValid(token string, now time.Time) bool {
	if u.ResetToken == "" || u.ResetToken != token || u.ResetTokenExpiry == nil {
		return false
	}
	return now.Before(*u.ResetTokenExpiry)
}

// Summary is the public projection of a user attached to feedback,
// messages and the admin contact lookup.
type Summary struct {
	ID         primitive.ObjectID `json:"id"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	Role       Role               `json:"role"`
	ProfileImg string             `json:"profileImg,omitempty"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, ProfileImg: u.ProfileImg}
}

// ProfilePatch lists the only fields a user may change on their own
// profile.  Nil pointers are left untouched.
type ProfilePatch struct {
	Username   *string `json:"username"`
	Address    *string `json:"address"`
	Gender     *string `json:"gender"`
	ProfileImg *string `json:"profileImg"`
}

// Apply validates the patch and copies the set fields onto u.
func (p ProfilePatch) Apply(u *User) error {
	if p.Username != nil {
		v := strings.TrimSpace(*p.Username)
		if v == "" {
			return apperr.Validation("username cannot be empty")
		}
		u.Username = v
	}
	if p.Address != nil {
		v := strings.TrimSpace(*p.Address)
		if v == "" {
			return apperr.Validation("address cannot be empty")
		}
		u.Address = v
	}
	if p.Gender != nil {
		g, ok := ParseGender(*p.Gender)
		if !ok {
			return apperr.Validation("gender must be male or female")
		}
		u.Gender = g
	}
	if p.ProfileImg != nil {
		u.ProfileImg = strings.TrimSpace(*p.ProfileImg)
	}
	return nil
}
