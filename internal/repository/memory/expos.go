package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type expoRepo struct{ d *db }

func (r *expoRepo) Insert(ctx context.Context, e *model.Expo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	ensureID(&e.ID)
	stamp(&e.CreatedAt, &e.UpdatedAt)
	r.d.expos[e.ID] = cloneExpo(e)
	return nil
}

func (r *expoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Expo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	e, ok := r.d.expos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneExpo(e), nil
}

func (r *expoRepo) List(ctx context.Context) ([]*model.Expo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]*model.Expo, 0, len(r.d.expos))
	for _, e := range r.d.expos {
		out = append(out, cloneExpo(e))
	}
	newestFirst(out,
		func(e *model.Expo) time.Time { return e.CreatedAt },
		func(e *model.Expo) primitive.ObjectID { return e.ID })
	return out, nil
}

func (r *expoRepo) Update(ctx context.Context, e *model.Expo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	stored, ok := r.d.expos[e.ID]
	if !ok {
		return repository.ErrNotFound
	}
	e.UpdatedAt = time.Now().UTC()
	next := cloneExpo(e)
	next.Exhibitors = stored.Exhibitors
	next.CreatedAt = stored.CreatedAt
	r.d.expos[e.ID] = next
	return nil
}

func (r *expoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.expos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.expos, id)
	return nil
}

func (r *expoRepo) AddExhibitor(ctx context.Context, expoID, userID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	e, ok := r.d.expos[expoID]
	if !ok {
		return repository.ErrNotFound
	}
	if !containsID(e.Exhibitors, userID) {
		e.Exhibitors = append(e.Exhibitors, userID)
	}
	return nil
}

func (r *expoRepo) PullExhibitor(ctx context.Context, expoIDs []primitive.ObjectID, userID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, id := range expoIDs {
		if e, ok := r.d.expos[id]; ok {
			e.Exhibitors, _ = removeID(e.Exhibitors, userID)
		}
	}
	return nil
}

func (r *expoRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return int64(len(r.d.expos)), nil
}
