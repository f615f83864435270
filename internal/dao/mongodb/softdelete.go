package mongodb

import (
	"context"
	"errors"

	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// softDeleteCollection wraps a collection whose documents carry the soft-delete fields.
// The raw collection is not reachable from DAO code: every query goes through a view,
// and a view built without options only sees live documents.
type softDeleteCollection struct {
	coll *mongo.Collection
}

func newSoftDeleteCollection(coll *mongo.Collection) *softDeleteCollection {
	return &softDeleteCollection{coll: coll}
}

// View returns the collection as seen under the given scope options.
func (c *softDeleteCollection) View(opts ...repository.QueryOption) collectionView {
	return collectionView{coll: c.coll, scope: repository.NewQueryOptions(opts...).Scope}
}

func (c *softDeleteCollection) InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, doc)
}

func (c *softDeleteCollection) Name() string {
	return c.coll.Name()
}

type collectionView struct {
	coll  *mongo.Collection
	scope repository.DeleteScope
}

// scoped returns a copy of filter with the scope's is_deleted condition applied.
// An explicit is_deleted condition in filter is left untouched.
func (v collectionView) scoped(filter bson.M) bson.M {
	out := make(bson.M, len(filter)+1)
	for k, val := range filter {
		out[k] = val
	}
	if _, ok := out[fields.FieldIsDeleted]; ok {
		return out
	}
	switch v.scope {
	case repository.ScopeActive:
		// $ne also matches documents written before the field existed.
		out[fields.FieldIsDeleted] = bson.M{"$ne": true}
	case repository.ScopeDeleted:
		out[fields.FieldIsDeleted] = true
	}
	return out
}

func (v collectionView) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return v.coll.Find(ctx, v.scoped(filter), opts...)
}

func (v collectionView) FindOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) *mongo.SingleResult {
	return v.coll.FindOne(ctx, v.scoped(filter), opts...)
}

func (v collectionView) CountDocuments(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error) {
	return v.coll.CountDocuments(ctx, v.scoped(filter), opts...)
}

// Aggregate prepends the scope as a leading $match stage.
func (v collectionView) Aggregate(ctx context.Context, pipeline mongo.Pipeline, opts ...*options.AggregateOptions) (*mongo.Cursor, error) {
	full := make(mongo.Pipeline, 0, len(pipeline)+1)
	full = append(full, bson.D{{Key: "$match", Value: v.scoped(bson.M{})}})
	full = append(full, pipeline...)
	return v.coll.Aggregate(ctx, full, opts...)
}

func (v collectionView) UpdateMany(ctx context.Context, filter bson.M, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return v.coll.UpdateMany(ctx, v.scoped(filter), update, opts...)
}

func (v collectionView) FindOneAndUpdate(ctx context.Context, filter bson.M, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	return v.coll.FindOneAndUpdate(ctx, v.scoped(filter), update, opts...)
}

func (v collectionView) FindOneAndDelete(ctx context.Context, filter bson.M, opts ...*options.FindOneAndDeleteOptions) *mongo.SingleResult {
	return v.coll.FindOneAndDelete(ctx, v.scoped(filter), opts...)
}

func (v collectionView) DeleteMany(ctx context.Context, filter bson.M, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	return v.coll.DeleteMany(ctx, v.scoped(filter), opts...)
}

// softDeleteUpdate is the $set applied when a live document is logically removed.
func softDeleteUpdate(p repository.SoftDeleteParams) bson.M {
	return bson.M{"$set": bson.M{
		fields.FieldIsDeleted: true,
		fields.FieldDeletedAt: p.At,
		fields.FieldDeletedBy: p.Actor,
	}}
}

// restoreUpdate clears the soft-delete fields and stamps the restoring actor.
func restoreUpdate(p repository.RestoreParams) bson.M {
	return bson.M{
		"$set": bson.M{
			fields.FieldIsDeleted: false,
			fields.FieldUpdatedAt: p.At,
			fields.FieldUpdatedBy: p.Actor,
		},
		"$unset": bson.M{
			fields.FieldDeletedAt: "",
			fields.FieldDeletedBy: "",
		},
	}
}

func returnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// decodeSingle maps ErrNoDocuments to ErrNotFound.
func decodeSingle(res *mongo.SingleResult, out interface{}) error {
	if err := res.Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// insertedID maps duplicate key violations to ErrDuplicate.
func insertedID(res *mongo.InsertOneResult, err error) (primitive.ObjectID, error) {
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
