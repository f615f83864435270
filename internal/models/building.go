package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Building struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Code           string             `bson:"code,omitempty" json:"code,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	TotalFloors    int                `bson:"total_floors" json:"total_floors"`
	TotalUnits     int                `bson:"total_units" json:"total_units"`
	AvailableUnits int                `bson:"available_units" json:"available_units"`
	SoldUnits      int                `bson:"sold_units" json:"sold_units"`
	Stamps         `bson:",inline"`
	SoftDelete     `bson:",inline"`
}

// UnitCounters is the denormalized unit tally kept on a Building.
type UnitCounters struct {
	Total     int
	Available int
	Sold      int
}
