// Package mongostore implements the repository contracts on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/expo-management/internal/repository"
)

// Collection names.
const (
	colUsers      = "users"
	colExpos      = "expos"
	colSessions   = "sessions"
	colExhibitors = "exhibitors"
	colBooths     = "booths"
	colFeedback   = "feedbacks"
	colMessages   = "messages"
	colBookmarks  = "bookmarks"
	colIntents    = "cascade_intents"
)

// New returns a Store backed by db.  Call EnsureIndexes once at startup.
func New(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Users:      &userRepo{col: db.Collection(colUsers)},
		Expos:      &expoRepo{col: db.Collection(colExpos)},
		Sessions:   &sessionRepo{col: db.Collection(colSessions)},
		Exhibitors: &exhibitorRepo{col: db.Collection(colExhibitors)},
		Booths:     &boothRepo{col: db.Collection(colBooths)},
		Feedback:   &feedbackRepo{col: db.Collection(colFeedback)},
		Messages:   &messageRepo{col: db.Collection(colMessages)},
		Bookmarks:  &bookmarkRepo{col: db.Collection(colBookmarks)},
		Intents:    &intentRepo{col: db.Collection(colIntents)},
	}
}

// EnsureIndexes creates the unique indexes backing the uniqueness rules
// and the secondary indexes used by cascades and counts.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_email_unique")},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("users_role_created")},
			{Keys: bson.D{{Key: "registeredSessions", Value: 1}}, Options: options.Index().SetName("users_reg_sessions")},
			{Keys: bson.D{{Key: "registeredExpos", Value: 1}}, Options: options.Index().SetName("users_reg_expos")},
		},
		colSessions: {
			{
				Keys: bson.D{
					{Key: "expoId", Value: 1}, {Key: "topic", Value: 1}, {Key: "speaker", Value: 1},
					{Key: "location", Value: 1}, {Key: "time.start", Value: 1},
				},
				Options: options.Index().SetUnique(true).SetName("sessions_slot_unique"),
			},
		},
		colExhibitors: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("exhibitors_user_unique")},
		},
		colBooths: {
			{Keys: bson.D{{Key: "boothNumber", Value: 1}}, Options: options.Index().SetUnique(true).SetName("booths_number_unique")},
			{Keys: bson.D{{Key: "exhibitorId", Value: 1}}, Options: options.Index().SetName("booths_exhibitor")},
			{Keys: bson.D{{Key: "expoId", Value: 1}}, Options: options.Index().SetName("booths_expo")},
		},
		colBookmarks: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "sessionId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("bookmarks_pair_unique")},
			{Keys: bson.D{{Key: "sessionId", Value: 1}}, Options: options.Index().SetName("bookmarks_session")},
		},
		colFeedback: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("feedbacks_user")},
		},
		colMessages: {
			{Keys: bson.D{{Key: "receiver", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("messages_receiver")},
			{Keys: bson.D{{Key: "sender", Value: 1}}, Options: options.Index().SetName("messages_sender")},
		},
	}
	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%s indexes: %w", name, err)
		}
	}
	return nil
}

// mapErr translates driver errors into repository sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return err
}

func byID(id primitive.ObjectID) bson.M { return bson.M{"_id": id} }

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

func findOne[T any](ctx context.Context, col *mongo.Collection, filter any) (*T, error) {
	var v T
	if err := col.FindOne(ctx, filter).Decode(&v); err != nil {
		return nil, mapErr(err)
	}
	return &v, nil
}

func findMany[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	out := []*T{}
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		out = append(out, &v)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", col.Name(), err)
	}
	return out, nil
}

func insert(ctx context.Context, col *mongo.Collection, id *primitive.ObjectID, doc any) error {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	_, err := col.InsertOne(ctx, doc)
	return mapErr(err)
}

func replace(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, doc any) error {
	res, err := col.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// setFields applies $set to one document.
func setFields(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, fields bson.M) error {
	res, err := col.UpdateOne(ctx, byID(id), bson.M{"$set": fields})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, col *mongo.Collection, filter any) error {
	res, err := col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteMany(ctx context.Context, col *mongo.Collection, filter any) (int64, error) {
	res, err := col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func emptyIfNil(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}
	return ids
}
