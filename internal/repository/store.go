package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
)

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

// UserRepo persists accounts and their registration lists.
type UserRepo interface {
	Insert(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindByResetToken returns the user whose reset token equals token and
	// expires after now.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error)
	FindFirstByRole(ctx context.Context, role model.Role) (*model.User, error)
	// ListByRole returns users of role, newest first.
	ListByRole(ctx context.Context, role model.Role) ([]*model.User, error)
	ListIDsByRole(ctx context.Context, role model.Role) ([]primitive.ObjectID, error)
	// UpdateProfile writes the self-editable profile fields of u.
	UpdateProfile(ctx context.Context, u *model.User) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, exp time.Time) error
	// SetPassword stores a new hash and clears any pending reset token.
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
	// AddRegistration appends id to the list unless already present and
	// reports whether it was appended.
	AddRegistration(ctx context.Context, userID primitive.ObjectID, list model.RegistrationList, id primitive.ObjectID) (bool, error)
	// PullRegistration removes id from the list of every user.
	PullRegistration(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error)
	CountRegistered(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error)
	CountByRole(ctx context.Context, role model.Role) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExpoRepo persists expos and their exhibitor rosters.  Update never
// writes the roster; only AddExhibitor and PullExhibitor change it.
type ExpoRepo interface {
	Insert(ctx context.Context, e *model.Expo) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Expo, error)
	List(ctx context.Context) ([]*model.Expo, error)
	Update(ctx context.Context, e *model.Expo) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddExhibitor(ctx context.Context, expoID, userID primitive.ObjectID) error
	// PullExhibitor removes userID from the rosters of the given expos.
	PullExhibitor(ctx context.Context, expoIDs []primitive.ObjectID, userID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// SessionRepo persists sessions.  Insert and Update return ErrDuplicate
// when the (expoId, topic, speaker, location, time.start) slot is taken.
// Update leaves the attendee roster untouched.
type SessionRepo interface {
	Insert(ctx context.Context, s *model.Session) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Session, error)
	// FindBySlot returns the session occupying the unique slot of s.
	FindBySlot(ctx context.Context, s *model.Session) (*model.Session, error)
	// List returns all sessions, or those of one expo when expoID is set.
	List(ctx context.Context, expoID *primitive.ObjectID) ([]*model.Session, error)
	Update(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddAttendee(ctx context.Context, sessionID, userID primitive.ObjectID) error
	PullAttendee(ctx context.Context, sessionIDs []primitive.ObjectID, userID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByExpo(ctx context.Context, expoID primitive.ObjectID) (int64, error)
}

// ExhibitorRepo persists exhibitor profiles; Insert returns ErrDuplicate
// when the user already owns a profile.
type ExhibitorRepo interface {
	Insert(ctx context.Context, x *model.Exhibitor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Exhibitor, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Exhibitor, error)
	List(ctx context.Context, search string) ([]*model.Exhibitor, error)
	Update(ctx context.Context, x *model.Exhibitor) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BoothRepo persists booths; boothNumber is globally unique.
type BoothRepo interface {
	Insert(ctx context.Context, b *model.Booth) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booth, error)
	// ListByStatus returns booths whose assignment matches reserved.
	ListByStatus(ctx context.Context, reserved bool) ([]*model.Booth, error)
	ListByExhibitor(ctx context.Context, exhibitorID primitive.ObjectID) ([]*model.Booth, error)
	Update(ctx context.Context, b *model.Booth) error
	// ReleaseByExhibitor clears the assignment of every booth held by the
	// exhibitor and marks them available.
	ReleaseByExhibitor(ctx context.Context, exhibitorID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByExpo(ctx context.Context, expoID primitive.ObjectID) (int64, error)
}

// FeedbackRepo persists attendee feedback.
type FeedbackRepo interface {
	Insert(ctx context.Context, f *model.Feedback) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Feedback, error)
	List(ctx context.Context) ([]*model.Feedback, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// MessageRepo persists user to user messages.
type MessageRepo interface {
	Insert(ctx context.Context, m *model.Message) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Message, error)
	ListByReceiver(ctx context.Context, receiver primitive.ObjectID) ([]*model.Message, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteByParticipant removes messages where userID is sender or receiver.
	DeleteByParticipant(ctx context.Context, userID primitive.ObjectID) (int64, error)
	CountBySenders(ctx context.Context, senders []primitive.ObjectID) (int64, error)
}

// BookmarkRepo persists session bookmarks; (userId, sessionId) is unique.
type BookmarkRepo interface {
	Insert(ctx context.Context, b *model.Bookmark) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Bookmark, error)
	DeletePair(ctx context.Context, userID, sessionID primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	DeleteBySession(ctx context.Context, sessionID primitive.ObjectID) (int64, error)
}

// IntentRepo is the write-ahead log of in-flight cascades.
type IntentRepo interface {
	Insert(ctx context.Context, in *model.CascadeIntent) error
	MarkStep(ctx context.Context, id primitive.ObjectID, step string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListPending(ctx context.Context) ([]*model.CascadeIntent, error)
}

// Store groups the collection repositories behind one value so the service
// can be wired against either backend.
type Store struct {
	Users      UserRepo
	Expos      ExpoRepo
	Sessions   SessionRepo
	Exhibitors ExhibitorRepo
	Booths     BoothRepo
	Feedback   FeedbackRepo
	Messages   MessageRepo
	Bookmarks  BookmarkRepo
	Intents    IntentRepo
}

// TokenRepo persists hashed refresh tokens.  User ids are the hex form of
// the document id.
type TokenRepo interface {
	StoreRefresh(ctx context.Context, userID string, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
