package models

import "go.mongodb.org/mongo-driver/bson"

// ChangeEvent is the subset of a MongoDB change stream event the audit pipeline reads.
type ChangeEvent struct {
	OperationType            string             `bson:"operationType"`
	Namespace                *ChangeNamespace   `bson:"ns"`
	DocumentKey              bson.M             `bson:"documentKey"`
	FullDocument             bson.M             `bson:"fullDocument"`
	FullDocumentBeforeChange bson.M             `bson:"fullDocumentBeforeChange"`
	UpdateDescription        *UpdateDescription `bson:"updateDescription"`
}

type ChangeNamespace struct {
	DB   string `bson:"db"`
	Coll string `bson:"coll"`
}

type UpdateDescription struct {
	UpdatedFields bson.M   `bson:"updatedFields"`
	RemovedFields []string `bson:"removedFields"`
}
