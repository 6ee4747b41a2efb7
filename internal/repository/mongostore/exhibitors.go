package mongostore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/expo-management/internal/model"
)

type exhibitorRepo struct{ col *mongo.Collection }

func (r *exhibitorRepo) Insert(ctx context.Context, x *model.Exhibitor) error {
	stamp(&x.CreatedAt, &x.UpdatedAt)
	if x.Documents == nil {
		x.Documents = []string{}
	}
	return insert(ctx, r.col, &x.ID, x)
}

func (r *exhibitorRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Exhibitor, error) {
	return findOne[model.Exhibitor](ctx, r.col, byID(id))
}

func (r *exhibitorRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Exhibitor, error) {
	return findOne[model.Exhibitor](ctx, r.col, bson.M{"userId": userID})
}

// List filters on company name, description and products with a case
// insensitive substring match.
func (r *exhibitorRepo) List(ctx context.Context, search string) ([]*model.Exhibitor, error) {
	filter := bson.M{}
	if q := strings.TrimSpace(search); q != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"companyName": re},
			bson.M{"description": re},
			bson.M{"productsOrServices": re},
		}
	}
	return findMany[model.Exhibitor](ctx, r.col, filter, newestFirst)
}

func (r *exhibitorRepo) Update(ctx context.Context, x *model.Exhibitor) error {
	x.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.col, x.ID, x)
}

func (r *exhibitorRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}
