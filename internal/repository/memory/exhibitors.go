package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type exhibitorRepo struct{ d *db }

func (r *exhibitorRepo) Insert(ctx context.Context, x *model.Exhibitor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, v := range r.d.exhibitors {
		if v.UserID == x.UserID {
			return repository.ErrDuplicate
		}
	}
	ensureID(&x.ID)
	stamp(&x.CreatedAt, &x.UpdatedAt)
	r.d.exhibitors[x.ID] = cloneExhibitor(x)
	return nil
}

func (r *exhibitorRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Exhibitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	x, ok := r.d.exhibitors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneExhibitor(x), nil
}

func (r *exhibitorRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Exhibitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for _, x := range r.d.exhibitors {
		if x.UserID == userID {
			return cloneExhibitor(x), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *exhibitorRepo) List(ctx context.Context, search string) ([]*model.Exhibitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []*model.Exhibitor{}
	for _, x := range r.d.exhibitors {
		if x.Matches(search) {
			out = append(out, cloneExhibitor(x))
		}
	}
	newestFirst(out,
		func(x *model.Exhibitor) time.Time { return x.CreatedAt },
		func(x *model.Exhibitor) primitive.ObjectID { return x.ID })
	return out, nil
}

func (r *exhibitorRepo) Update(ctx context.Context, x *model.Exhibitor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.exhibitors[x.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, v := range r.d.exhibitors {
		if id != x.ID && v.UserID == x.UserID {
			return repository.ErrDuplicate
		}
	}
	x.UpdatedAt = time.Now().UTC()
	r.d.exhibitors[x.ID] = cloneExhibitor(x)
	return nil
}

func (r *exhibitorRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.exhibitors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.exhibitors, id)
	return nil
}
