package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/repository"
)

type sessionRepo struct{ col *mongo.Collection }

func slotFilter(s *model.Session) bson.M {
	return bson.M{
		"expoId":     s.ExpoID,
		"topic":      s.Topic,
		"speaker":    s.Speaker,
		"location":   s.Location,
		"time.start": s.Time.Start,
	}
}

func (r *sessionRepo) Insert(ctx context.Context, s *model.Session) error {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	s.Attendees = emptyIfNil(s.Attendees)
	return insert(ctx, r.col, &s.ID, s)
}

func (r *sessionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Session, error) {
	return findOne[model.Session](ctx, r.col, byID(id))
}

func (r *sessionRepo) FindBySlot(ctx context.Context, s *model.Session) (*model.Session, error) {
	return findOne[model.Session](ctx, r.col, slotFilter(s))
}

func (r *sessionRepo) List(ctx context.Context, expoID *primitive.ObjectID) ([]*model.Session, error) {
	filter := bson.M{}
	if expoID != nil {
		filter["expoId"] = *expoID
	}
	return findMany[model.Session](ctx, r.col, filter, newestFirst)
}

func (r *sessionRepo) Update(ctx context.Context, s *model.Session) error {
	s.UpdatedAt = time.Now().UTC()
	return setFields(ctx, r.col, s.ID, bson.M{
		"expoId":      s.ExpoID,
		"topic":       s.Topic,
		"speaker":     s.Speaker,
		"description": s.Description,
		"time":        s.Time,
		"location":    s.Location,
		"category":    s.Category,
		"capacity":    s.Capacity,
		"status":      s.Status,
		"updatedAt":   s.UpdatedAt,
	})
}

func (r *sessionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}

func (r *sessionRepo) AddAttendee(ctx context.Context, sessionID, userID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx, byID(sessionID), bson.M{"$addToSet": bson.M{"attendees": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *sessionRepo) PullAttendee(ctx context.Context, sessionIDs []primitive.ObjectID, userID primitive.ObjectID) error {
	if len(sessionIDs) == 0 {
		return nil
	}
	_, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": sessionIDs}},
		bson.M{"$pull": bson.M{"attendees": userID}})
	return err
}

func (r *sessionRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *sessionRepo) CountByExpo(ctx context.Context, expoID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"expoId": expoID})
}
