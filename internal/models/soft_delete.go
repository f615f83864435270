package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SoftDelete is embedded (inline) into every entity that can be logically removed.
type SoftDelete struct {
	IsDeleted bool                `bson:"is_deleted" json:"is_deleted"`
	DeletedAt *time.Time          `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	DeletedBy *primitive.ObjectID `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
}

// MarkDeleted flips the entity into the logically deleted state.
func (s *SoftDelete) MarkDeleted(at time.Time, actor primitive.ObjectID) {
	s.IsDeleted = true
	s.DeletedAt = &at
	s.DeletedBy = &actor
}

// ClearDeleted reverses MarkDeleted.
func (s *SoftDelete) ClearDeleted() {
	s.IsDeleted = false
	s.DeletedAt = nil
	s.DeletedBy = nil
}

// Stamps carries the creation/modification attribution shared by all entities.
type Stamps struct {
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	CreatedBy primitive.ObjectID  `bson:"created_by" json:"created_by"`
	UpdatedAt *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy *primitive.ObjectID `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}
