package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type boothRepo struct{ d *db }

func (r *boothRepo) numberTaken(b *model.Booth) bool {
	for id, v := range r.d.booths {
		if id != b.ID && v.BoothNumber == b.BoothNumber {
			return true
		}
	}
	return false
}

func (r *boothRepo) Insert(ctx context.Context, b *model.Booth) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if r.numberTaken(b) {
		return repository.ErrDuplicate
	}
	ensureID(&b.ID)
	stamp(&b.CreatedAt, &b.UpdatedAt)
	r.d.booths[b.ID] = cloneBooth(b)
	return nil
}

func (r *boothRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booth, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	b, ok := r.d.booths[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneBooth(b), nil
}

func (r *boothRepo) list(ctx context.Context, match func(*model.Booth) bool) ([]*model.Booth, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []*model.Booth{}
	for _, b := range r.d.booths {
		if match(b) {
			out = append(out, cloneBooth(b))
		}
	}
	newestFirst(out,
		func(b *model.Booth) time.Time { return b.CreatedAt },
		func(b *model.Booth) primitive.ObjectID { return b.ID })
	return out, nil
}

func (r *boothRepo) ListByStatus(ctx context.Context, reserved bool) ([]*model.Booth, error) {
	return r.list(ctx, func(b *model.Booth) bool { return (b.ExhibitorID != nil) == reserved })
}

func (r *boothRepo) ListByExhibitor(ctx context.Context, exhibitorID primitive.ObjectID) ([]*model.Booth, error) {
	return r.list(ctx, func(b *model.Booth) bool { return b.AssignedTo(exhibitorID) })
}

func (r *boothRepo) Update(ctx context.Context, b *model.Booth) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.booths[b.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.numberTaken(b) {
		return repository.ErrDuplicate
	}
	b.UpdatedAt = time.Now().UTC()
	r.d.booths[b.ID] = cloneBooth(b)
	return nil
}

func (r *boothRepo) ReleaseByExhibitor(ctx context.Context, exhibitorID primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var n int64
	now := time.Now().UTC()
	for _, b := range r.d.booths {
		if b.AssignedTo(exhibitorID) {
			b.Assign(nil)
			b.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (r *boothRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.booths[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.booths, id)
	return nil
}

func (r *boothRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return int64(len(r.d.booths)), nil
}

func (r *boothRepo) CountByExpo(ctx context.Context, expoID primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, b := range r.d.booths {
		if b.ExpoID == expoID {
			n++
		}
	}
	return n, nil
}
