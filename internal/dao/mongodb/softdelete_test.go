package mongodb

import (
	"testing"
	"time"

	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCollectionView_Scoped(t *testing.T) {
	id := primitive.NewObjectID()
	base := bson.M{fields.FieldObjectId: id}

	cases := []struct {
		name string
		opts []repository.QueryOption
		want bson.M
	}{
		{"default hides deleted", nil, bson.M{fields.FieldObjectId: id, fields.FieldIsDeleted: bson.M{"$ne": true}}},
		{"with deleted", []repository.QueryOption{repository.WithDeleted()}, bson.M{fields.FieldObjectId: id}},
		{"only deleted", []repository.QueryOption{repository.OnlyDeleted()}, bson.M{fields.FieldObjectId: id, fields.FieldIsDeleted: true}},
	}
	c := &softDeleteCollection{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.View(tc.opts...).scoped(base))
		})
	}
	assert.Equal(t, bson.M{fields.FieldObjectId: id}, base, "input filter must not be mutated")
}

func TestCollectionView_ScopedKeepsExplicitCondition(t *testing.T) {
	filter := bson.M{fields.FieldIsDeleted: false}
	got := (&softDeleteCollection{}).View(repository.OnlyDeleted()).scoped(filter)
	assert.Equal(t, bson.M{fields.FieldIsDeleted: false}, got)
}

func TestSoftDeleteAndRestoreUpdates(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	actor := primitive.NewObjectID()

	assert.Equal(t, bson.M{"$set": bson.M{
		fields.FieldIsDeleted: true,
		fields.FieldDeletedAt: at,
		fields.FieldDeletedBy: actor,
	}}, softDeleteUpdate(repository.SoftDeleteParams{At: at, Actor: actor}))

	restore := restoreUpdate(repository.RestoreParams{DeletedAt: at, At: at.Add(time.Hour), Actor: actor})
	assert.Equal(t, false, restore["$set"].(bson.M)[fields.FieldIsDeleted])
	assert.Contains(t, restore["$unset"], fields.FieldDeletedAt)
	assert.Contains(t, restore["$unset"], fields.FieldDeletedBy)
}
