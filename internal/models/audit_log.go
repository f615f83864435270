package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog is one immutable record derived from an observed write.
type AuditLog struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Sequence       uint64              `bson:"sequence" json:"sequence"`
	OperationType  string              `bson:"operation_type" json:"operation_type"`
	Database       string              `bson:"database" json:"database"`
	CollectionName string              `bson:"collection_name" json:"collection_name"`
	DocumentID     interface{}         `bson:"document_id" json:"document_id"`
	FullDocument   bson.M              `bson:"full_document" json:"full_document"`
	UpdatedFields  bson.M              `bson:"updated_fields" json:"updated_fields"`
	RemovedFields  []string            `bson:"removed_fields" json:"removed_fields"`
	PreviousFields bson.M              `bson:"previous_fields" json:"previous_fields"`
	UserID         *primitive.ObjectID `bson:"user_id" json:"user_id"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}
