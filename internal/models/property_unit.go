package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PropertyUnit is a sellable unit on a floor. PlotNo is unique per floor.
type PropertyUnit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BuildingID    primitive.ObjectID `bson:"building_id" json:"building_id"`
	FloorID       primitive.ObjectID `bson:"floor_id" json:"floor_id"`
	PlotNo        string             `bson:"plot_no" json:"plot_no"`
	Area          float64            `bson:"area,omitempty" json:"area,omitempty"`
	ProjectStatus string             `bson:"project_status" json:"project_status"`
	SaleStatus    string             `bson:"sale_status" json:"sale_status"`
	Stamps        `bson:",inline"`
	SoftDelete    `bson:",inline"`
}
