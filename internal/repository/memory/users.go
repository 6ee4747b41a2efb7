package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type userRepo struct{ d *db }

func (r *userRepo) Insert(ctx context.Context, u *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, v := range r.d.users {
		if v.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	ensureID(&u.ID)
	stamp(&u.CreatedAt, &u.UpdatedAt)
	r.d.users[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	u, ok := r.d.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) findOne(ctx context.Context, match func(*model.User) bool) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var found *model.User
	for _, u := range r.d.users {
		if !match(u) {
			continue
		}
		if found == nil || u.CreatedAt.Before(found.CreatedAt) {
			found = u
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return cloneUser(found), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, func(u *model.User) bool { return u.Email == email })
}

func (r *userRepo) FindByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	return r.findOne(ctx, func(u *model.User) bool { return u.ResetTokenValid(token, now) })
}

func (r *userRepo) FindFirstByRole(ctx context.Context, role model.Role) (*model.User, error) {
	return r.findOne(ctx, func(u *model.User) bool { return u.Role == role })
}

func (r *userRepo) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []*model.User{}
	for _, u := range r.d.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	newestFirst(out,
		func(u *model.User) time.Time { return u.CreatedAt },
		func(u *model.User) primitive.ObjectID { return u.ID })
	return out, nil
}

func (r *userRepo) ListIDsByRole(ctx context.Context, role model.Role) ([]primitive.ObjectID, error) {
	users, err := r.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// modify runs fn on the stored user under the lock.
func (r *userRepo) modify(ctx context.Context, id primitive.ObjectID, fn func(stored *model.User)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	stored, ok := r.d.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(stored)
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, u *model.User) error {
	return r.modify(ctx, u.ID, func(stored *model.User) {
		stored.Username = u.Username
		stored.Address = u.Address
		stored.Gender = u.Gender
		stored.ProfileImg = u.ProfileImg
	})
}

func (r *userRepo) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, exp time.Time) error {
	return r.modify(ctx, id, func(stored *model.User) {
		stored.ResetToken = token
		stored.ResetTokenExpiry = &exp
	})
}

func (r *userRepo) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.modify(ctx, id, func(stored *model.User) {
		stored.PasswordHash = hash
		stored.ResetToken = ""
		stored.ResetTokenExpiry = nil
	})
}

func listOf(u *model.User, list model.RegistrationList) *[]primitive.ObjectID {
	if list == model.RegisteredSessions {
		return &u.RegisteredSessions
	}
	return &u.RegisteredExpos
}

func (r *userRepo) AddRegistration(ctx context.Context, userID primitive.ObjectID, list model.RegistrationList, id primitive.ObjectID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	u, ok := r.d.users[userID]
	if !ok {
		return false, repository.ErrNotFound
	}
	ids := listOf(u, list)
	if containsID(*ids, id) {
		return false, nil
	}
	*ids = append(*ids, id)
	u.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *userRepo) PullRegistration(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var n int64
	for _, u := range r.d.users {
		ids := listOf(u, list)
		var removed bool
		if *ids, removed = removeID(*ids, id); removed {
			n++
		}
	}
	return n, nil
}

func (r *userRepo) CountRegistered(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, u := range r.d.users {
		if u.Registered(list, id) {
			n++
		}
	}
	return n, nil
}

func (r *userRepo) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, u := range r.d.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *userRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.users, id)
	return nil
}
