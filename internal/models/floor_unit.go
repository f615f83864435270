package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FloorUnit is a floor of a Building. FloorNumber is unique per building.
type FloorUnit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BuildingID  primitive.ObjectID `bson:"building_id" json:"building_id"`
	FloorNumber int                `bson:"floor_number" json:"floor_number"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Stamps      `bson:",inline"`
	SoftDelete  `bson:",inline"`
}
