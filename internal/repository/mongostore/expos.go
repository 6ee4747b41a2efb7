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

type expoRepo struct{ col *mongo.Collection }

func (r *expoRepo) Insert(ctx context.Context, e *model.Expo) error {
	stamp(&e.CreatedAt, &e.UpdatedAt)
	e.Exhibitors = emptyIfNil(e.Exhibitors)
	return insert(ctx, r.col, &e.ID, e)
}

func (r *expoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Expo, error) {
	return findOne[model.Expo](ctx, r.col, byID(id))
}

func (r *expoRepo) List(ctx context.Context) ([]*model.Expo, error) {
	return findMany[model.Expo](ctx, r.col, bson.M{}, newestFirst)
}

func (r *expoRepo) Update(ctx context.Context, e *model.Expo) error {
	e.UpdatedAt = time.Now().UTC()
	return setFields(ctx, r.col, e.ID, bson.M{
		"title":       e.Title,
		"description": e.Description,
		"theme":       e.Theme,
		"date":        e.Date,
		"location":    e.Location,
		"updatedAt":   e.UpdatedAt,
	})
}

func (r *expoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}

func (r *expoRepo) AddExhibitor(ctx context.Context, expoID, userID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx, byID(expoID), bson.M{"$addToSet": bson.M{"exhibitors": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *expoRepo) PullExhibitor(ctx context.Context, expoIDs []primitive.ObjectID, userID primitive.ObjectID) error {
	if len(expoIDs) == 0 {
		return nil
	}
	_, err := r.col.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": expoIDs}},
		bson.M{"$pull": bson.M{"exhibitors": userID}})
	return err
}

func (r *expoRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
