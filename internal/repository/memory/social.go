package memory

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type feedbackRepo struct{ d *db }

func (r *feedbackRepo) Insert(ctx context.Context, f *model.Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	ensureID(&f.ID)
	stamp(&f.CreatedAt, &f.UpdatedAt)
	c := *f
	r.d.feedback[f.ID] = &c
	return nil
}

func (r *feedbackRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	f, ok := r.d.feedback[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *f
	return &c, nil
}

func (r *feedbackRepo) List(ctx context.Context) ([]*model.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]*model.Feedback, 0, len(r.d.feedback))
	for _, f := range r.d.feedback {
		c := *f
		out = append(out, &c)
	}
	newestFirst(out,
		func(f *model.Feedback) time.Time { return f.CreatedAt },
		func(f *model.Feedback) primitive.ObjectID { return f.ID })
	return out, nil
}

func (r *feedbackRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.feedback[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.feedback, id)
	return nil
}

func (r *feedbackRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var n int64
	for id, f := range r.d.feedback {
		if f.UserID == userID {
			delete(r.d.feedback, id)
			n++
		}
	}
	return n, nil
}

func (r *feedbackRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	return int64(len(r.d.feedback)), nil
}

type messageRepo struct{ d *db }

func (r *messageRepo) Insert(ctx context.Context, m *model.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	ensureID(&m.ID)
	stamp(&m.CreatedAt, &m.UpdatedAt)
	c := *m
	r.d.messages[m.ID] = &c
	return nil
}

func (r *messageRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	m, ok := r.d.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *m
	return &c, nil
}

func (r *messageRepo) ListByReceiver(ctx context.Context, receiver primitive.ObjectID) ([]*model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []*model.Message{}
	for _, m := range r.d.messages {
		if m.Receiver == receiver {
			c := *m
			out = append(out, &c)
		}
	}
	newestFirst(out,
		func(m *model.Message) time.Time { return m.CreatedAt },
		func(m *model.Message) primitive.ObjectID { return m.ID })
	return out, nil
}

func (r *messageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if _, ok := r.d.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.messages, id)
	return nil
}

func (r *messageRepo) DeleteByParticipant(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var n int64
	for id, m := range r.d.messages {
		if m.Sender == userID || m.Receiver == userID {
			delete(r.d.messages, id)
			n++
		}
	}
	return n, nil
}

func (r *messageRepo) CountBySenders(ctx context.Context, senders []primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var n int64
	for _, m := range r.d.messages {
		if containsID(senders, m.Sender) {
			n++
		}
	}
	return n, nil
}

type bookmarkRepo struct{ d *db }

func (r *bookmarkRepo) Insert(ctx context.Context, b *model.Bookmark) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for _, v := range r.d.bookmarks {
		if v.UserID == b.UserID && v.SessionID == b.SessionID {
			return repository.ErrDuplicate
		}
	}
	ensureID(&b.ID)
	stamp(&b.CreatedAt, &b.UpdatedAt)
	c := *b
	r.d.bookmarks[b.ID] = &c
	return nil
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Bookmark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := []*model.Bookmark{}
	for _, b := range r.d.bookmarks {
		if b.UserID == userID {
			c := *b
			out = append(out, &c)
		}
	}
	newestFirst(out,
		func(b *model.Bookmark) time.Time { return b.CreatedAt },
		func(b *model.Bookmark) primitive.ObjectID { return b.ID })
	return out, nil
}

func (r *bookmarkRepo) DeletePair(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for id, b := range r.d.bookmarks {
		if b.UserID == userID && b.SessionID == sessionID {
			delete(r.d.bookmarks, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *bookmarkRepo) deleteWhere(ctx context.Context, match func(*model.Bookmark) bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var n int64
	for id, b := range r.d.bookmarks {
		if match(b) {
			delete(r.d.bookmarks, id)
			n++
		}
	}
	return n, nil
}

func (r *bookmarkRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.deleteWhere(ctx, func(b *model.Bookmark) bool { return b.UserID == userID })
}

func (r *bookmarkRepo) DeleteBySession(ctx context.Context, sessionID primitive.ObjectID) (int64, error) {
	return r.deleteWhere(ctx, func(b *model.Bookmark) bool { return b.SessionID == sessionID })
}

type intentRepo struct{ d *db }

func (r *intentRepo) Insert(ctx context.Context, in *model.CascadeIntent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	ensureID(&in.ID)
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	r.d.intents[in.ID] = cloneIntent(in)
	return nil
}

func (r *intentRepo) MarkStep(ctx context.Context, id primitive.ObjectID, step string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	in, ok := r.d.intents[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, s := range in.Completed {
		if s == step {
			return nil
		}
	}
	in.Completed = append(in.Completed, step)
	return nil
}

func (r *intentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	delete(r.d.intents, id)
	return nil
}

func (r *intentRepo) ListPending(ctx context.Context) ([]*model.CascadeIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	out := make([]*model.CascadeIntent, 0, len(r.d.intents))
	for _, in := range r.d.intents {
		out = append(out, cloneIntent(in))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
