package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type feedbackRepo struct{ col *mongo.Collection }

func (r *feedbackRepo) Insert(ctx context.Context, f *model.Feedback) error {
	stamp(&f.CreatedAt, &f.UpdatedAt)
	return insert(ctx, r.col, &f.ID, f)
}

func (r *feedbackRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Feedback, error) {
	return findOne[model.Feedback](ctx, r.col, byID(id))
}

func (r *feedbackRepo) List(ctx context.Context) ([]*model.Feedback, error) {
	return findMany[model.Feedback](ctx, r.col, bson.M{}, newestFirst)
}

func (r *feedbackRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}

func (r *feedbackRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, r.col, bson.M{"userId": userID})
}

func (r *feedbackRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

type messageRepo struct{ col *mongo.Collection }

func (r *messageRepo) Insert(ctx context.Context, m *model.Message) error {
	stamp(&m.CreatedAt, &m.UpdatedAt)
	return insert(ctx, r.col, &m.ID, m)
}

func (r *messageRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Message, error) {
	return findOne[model.Message](ctx, r.col, byID(id))
}

func (r *messageRepo) ListByReceiver(ctx context.Context, receiver primitive.ObjectID) ([]*model.Message, error) {
	return findMany[model.Message](ctx, r.col, bson.M{"receiver": receiver}, newestFirst)
}

func (r *messageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}

func (r *messageRepo) DeleteByParticipant(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, r.col, bson.M{"$or": bson.A{
		bson.M{"sender": userID},
		bson.M{"receiver": userID},
	}})
}

func (r *messageRepo) CountBySenders(ctx context.Context, senders []primitive.ObjectID) (int64, error) {
	if len(senders) == 0 {
		return 0, nil
	}
	return r.col.CountDocuments(ctx, bson.M{"sender": bson.M{"$in": senders}})
}

type bookmarkRepo struct{ col *mongo.Collection }

func (r *bookmarkRepo) Insert(ctx context.Context, b *model.Bookmark) error {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	return insert(ctx, r.col, &b.ID, b)
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Bookmark, error) {
	return findMany[model.Bookmark](ctx, r.col, bson.M{"userId": userID}, newestFirst)
}

func (r *bookmarkRepo) DeletePair(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	return deleteOne(ctx, r.col, bson.M{"userId": userID, "sessionId": sessionID})
}

func (r *bookmarkRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, r.col, bson.M{"userId": userID})
}

func (r *bookmarkRepo) DeleteBySession(ctx context.Context, sessionID primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, r.col, bson.M{"sessionId": sessionID})
}

type intentRepo struct{ col *mongo.Collection }

func (r *intentRepo) Insert(ctx context.Context, in *model.CascadeIntent) error {
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	if in.Completed == nil {
		in.Completed = []string{}
	}
	in.RegisteredExpos = emptyIfNil(in.RegisteredExpos)
	in.RegisteredSessions = emptyIfNil(in.RegisteredSessions)
	return insert(ctx, r.col, &in.ID, in)
}

func (r *intentRepo) MarkStep(ctx context.Context, id primitive.ObjectID, step string) error {
	res, err := r.col.UpdateOne(ctx, byID(id), bson.M{"$addToSet": bson.M{"completed": step}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *intentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, byID(id))
	return err
}

func (r *intentRepo) ListPending(ctx context.Context) ([]*model.CascadeIntent, error) {
	return findMany[model.CascadeIntent](ctx, r.col, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}
