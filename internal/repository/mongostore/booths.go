package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/expo-management/internal/model"
)

type boothRepo struct{ col *mongo.Collection }

func (r *boothRepo) Insert(ctx context.Context, b *model.Booth) error {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	return insert(ctx, r.col, &b.ID, b)
}

func (r *boothRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booth, error) {
	return findOne[model.Booth](ctx, r.col, byID(id))
}

func (r *boothRepo) ListByStatus(ctx context.Context, reserved bool) ([]*model.Booth, error) {
	filter := bson.M{"exhibitorId": nil}
	if reserved {
		filter = bson.M{"exhibitorId": bson.M{"$ne": nil}}
	}
	return findMany[model.Booth](ctx, r.col, filter, newestFirst)
}

func (r *boothRepo) ListByExhibitor(ctx context.Context, exhibitorID primitive.ObjectID) ([]*model.Booth, error) {
	return findMany[model.Booth](ctx, r.col, bson.M{"exhibitorId": exhibitorID}, newestFirst)
}

func (r *boothRepo) Update(ctx context.Context, b *model.Booth) error {
	b.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.col, b.ID, b)
}

func (r *boothRepo) ReleaseByExhibitor(ctx context.Context, exhibitorID primitive.ObjectID) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"exhibitorId": exhibitorID},
		bson.M{"$set": bson.M{
			"exhibitorId": nil,
			"status":      model.BoothAvailable,
			"updatedAt":   time.Now().UTC(),
		}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *boothRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}

func (r *boothRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *boothRepo) CountByExpo(ctx context.Context, expoID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"expoId": expoID})
}
