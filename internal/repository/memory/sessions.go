package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type sessionRepo struct{ d *db }

func (r *sessionRepo) slotTaken(s *model.Session) bool {
	for id, v := range r.d.sessions {
		if id != s.ID && v.SameSlot(s) {
			return true
		}
	}
	return false
}

func (r *sessionRepo) Insert(ctx context.Context, s *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.slotTaken(s) {
		return repository.ErrDuplicate
	}
	ensureID(&s.ID)
	stamp(&s.CreatedAt, &s.UpdatedAt)
	r.d.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *sessionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	s, ok := r.d.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneSession(s), nil
}

func (r *sessionRepo) FindBySlot(ctx context.Context, s *model.Session) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for _, v := range r.d.sessions {
		if v.SameSlot(s) {
			return cloneSession(v), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *sessionRepo) List(ctx context.Context, expoID *primitive.ObjectID) ([]*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []*model.Session{}
	for _, s := range r.d.sessions {
		if expoID != nil && s.ExpoID != *expoID {
			continue
		}
		out = append(out, cloneSession(s))
	}
	newestFirst(out,
		func(s *model.Session) time.Time { return s.CreatedAt },
		func(s *model.Session) primitive.ObjectID { return s.ID })
	return out, nil
}

func (r *sessionRepo) Update(ctx context.Context, s *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	stored, ok := r.d.sessions[s.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.slotTaken(s) {
		return repository.ErrDuplicate
	}
	s.UpdatedAt = time.Now().UTC()
	next := cloneSession(s)
	next.Attendees = stored.Attendees
	next.CreatedAt = stored.CreatedAt
	r.d.sessions[s.ID] = next
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.sessions, id)
	return nil
}

func (r *sessionRepo) AddAttendee(ctx context.Context, sessionID, userID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	s, ok := r.d.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	if !containsID(s.Attendees, userID) {
		s.Attendees = append(s.Attendees, userID)
	}
	return nil
}

func (r *sessionRepo) PullAttendee(ctx context.Context, sessionIDs []primitive.ObjectID, userID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, id := range sessionIDs {
		if s, ok := r.d.sessions[id]; ok {
			s.Attendees, _ = removeID(s.Attendees, userID)
		}
	}
	return nil
}

func (r *sessionRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return int64(len(r.d.sessions)), nil
}

func (r *sessionRepo) CountByExpo(ctx context.Context, expoID primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, s := range r.d.sessions {
		if s.ExpoID == expoID {
			n++
		}
	}
	return n, nil
}
