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

type userRepo struct{ col *mongo.Collection }

func (r *userRepo) Insert(ctx context.Context, u *model.User) error {
	stamp(&u.CreatedAt, &u.UpdatedAt)
	u.RegisteredExpos = emptyIfNil(u.RegisteredExpos)
	u.RegisteredSessions = emptyIfNil(u.RegisteredSessions)
	return insert(ctx, r.col, &u.ID, u)
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return findOne[model.User](ctx, r.col, byID(id))
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.col, bson.M{"email": email})
}

func (r *userRepo) FindByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	return findOne[model.User](ctx, r.col, bson.M{
		"resetToken":       token,
		"resetTokenExpiry": bson.M{"$gt": now},
	})
}

func (r *userRepo) FindFirstByRole(ctx context.Context, role model.Role) (*model.User, error) {
	var u model.User
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if err := r.col.FindOne(ctx, bson.M{"role": role}, opts).Decode(&u); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (r *userRepo) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	return findMany[model.User](ctx, r.col, bson.M{"role": role}, newestFirst)
}

func (r *userRepo) ListIDsByRole(ctx context.Context, role model.Role) ([]primitive.ObjectID, error) {
	cur, err := r.col.Find(ctx, bson.M{"role": role}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ids := []primitive.ObjectID{}
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}

func (r *userRepo) UpdateProfile(ctx context.Context, u *model.User) error {
	u.UpdatedAt = time.Now().UTC()
	return setFields(ctx, r.col, u.ID, bson.M{
		"username":   u.Username,
		"address":    u.Address,
		"gender":     u.Gender,
		"profileImg": u.ProfileImg,
		"updatedAt":  u.UpdatedAt,
	})
}

func (r *userRepo) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, exp time.Time) error {
	return setFields(ctx, r.col, id, bson.M{
		"resetToken":       token,
		"resetTokenExpiry": exp,
		"updatedAt":        time.Now().UTC(),
	})
}

func (r *userRepo) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	res, err := r.col.UpdateOne(ctx, byID(id), bson.M{
		"$set":   bson.M{"password": hash, "updatedAt": time.Now().UTC()},
		"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
	})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepo) AddRegistration(ctx context.Context, userID primitive.ObjectID, list model.RegistrationList, id primitive.ObjectID) (bool, error) {
	field := string(list)
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID, field: bson.M{"$ne": id}},
		bson.M{
			"$push": bson.M{field: id},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 1 {
		return true, nil
	}
	// distinguish "already registered" from "no such user"
	n, err := r.col.CountDocuments(ctx, byID(userID))
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, repository.ErrNotFound
	}
	return false, nil
}

func (r *userRepo) PullRegistration(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error) {
	field := string(list)
	res, err := r.col.UpdateMany(ctx, bson.M{field: id}, bson.M{"$pull": bson.M{field: id}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *userRepo) CountRegistered(ctx context.Context, list model.RegistrationList, id primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{string(list): id})
}

func (r *userRepo) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"role": role})
}

func (r *userRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, r.col, byID(id))
}
