// Package memory is an in-process implementation of the repository
// contracts.  It enforces the same unique keys as the Mongo indexes and
// hands out copies so callers never share state with the store.
package memory

import (
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type db struct {
	mu         sync.RWMutex
	users      map[primitive.ObjectID]*model.User
	expos      map[primitive.ObjectID]*model.Expo
	sessions   map[primitive.ObjectID]*model.Session
	exhibitors map[primitive.ObjectID]*model.Exhibitor
	booths     map[primitive.ObjectID]*model.Booth
	feedback   map[primitive.ObjectID]*model.Feedback
	messages   map[primitive.ObjectID]*model.Message
	bookmarks  map[primitive.ObjectID]*model.Bookmark
	intents    map[primitive.ObjectID]*model.CascadeIntent
}

// New returns a Store whose repositories share one in-memory database.
func New() *repository.Store {
	d := &db{
		users:      map[primitive.ObjectID]*model.User{},
		expos:      map[primitive.ObjectID]*model.Expo{},
		sessions:   map[primitive.ObjectID]*model.Session{},
		exhibitors: map[primitive.ObjectID]*model.Exhibitor{},
		booths:     map[primitive.ObjectID]*model.Booth{},
		feedback:   map[primitive.ObjectID]*model.Feedback{},
		messages:   map[primitive.ObjectID]*model.Message{},
		bookmarks:  map[primitive.ObjectID]*model.Bookmark{},
		intents:    map[primitive.ObjectID]*model.CascadeIntent{},
	}
	return &repository.Store{
		Users:      &userRepo{d},
		Expos:      &expoRepo{d},
		Sessions:   &sessionRepo{d},
		Exhibitors: &exhibitorRepo{d},
		Booths:     &boothRepo{d},
		Feedback:   &feedbackRepo{d},
		Messages:   &messageRepo{d},
		Bookmarks:  &bookmarkRepo{d},
		Intents:    &intentRepo{d},
	}
}

func ensureID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func cloneIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return nil
	}
	return append([]primitive.ObjectID(nil), ids...)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) ([]primitive.ObjectID, bool) {
	out := ids[:0:0]
	removed := false
	for _, v := range ids {
		if v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}

// newestFirst orders records by creation time, newest first, using the id
// as a tie breaker so results are stable.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) primitive.ObjectID) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(items[i]).Hex() > id(items[j]).Hex()
	})
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.RegisteredExpos = cloneIDs(u.RegisteredExpos)
	c.RegisteredSessions = cloneIDs(u.RegisteredSessions)
	if u.ResetTokenExpiry != nil {
		t := *u.ResetTokenExpiry
		c.ResetTokenExpiry = &t
	}
	return &c
}

func cloneExpo(e *model.Expo) *model.Expo {
	c := *e
	c.Exhibitors = cloneIDs(e.Exhibitors)
	return &c
}

func cloneSession(s *model.Session) *model.Session {
	c := *s
	c.Attendees = cloneIDs(s.Attendees)
	return &c
}

func cloneExhibitor(x *model.Exhibitor) *model.Exhibitor {
	c := *x
	if x.Documents != nil {
		c.Documents = append([]string(nil), x.Documents...)
	}
	return &c
}

func cloneBooth(b *model.Booth) *model.Booth {
	c := *b
	if b.ExhibitorID != nil {
		id := *b.ExhibitorID
		c.ExhibitorID = &id
	}
	return &c
}

func cloneIntent(in *model.CascadeIntent) *model.CascadeIntent {
	c := *in
	c.RegisteredExpos = cloneIDs(in.RegisteredExpos)
	c.RegisteredSessions = cloneIDs(in.RegisteredSessions)
	c.Completed = append([]string(nil), in.Completed...)
	return &c
}
