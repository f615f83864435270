package dto

// CreateBuildingRequest is the body of POST /api/v1/buildings.
type CreateBuildingRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Code    string `json:"code" validate:"omitempty,max=64"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

// CreateFloorUnitRequest is the body of POST /api/v1/buildings/{id}/floors.
// FloorNumber is a pointer so that the ground floor (0) is distinguishable from a missing value.
type CreateFloorUnitRequest struct {
	FloorNumber *int   `json:"floor_number" validate:"required,gte=-20,lte=300"`
	Name        string `json:"name" validate:"omitempty,max=100"`
}

type CreatePropertyUnitRequest struct {
	PlotNo        string  `json:"plot_no" validate:"required,max=64"`
	Area          float64 `json:"area" validate:"gte=0"`
	ProjectStatus string  `json:"project_status" validate:"omitempty,oneof=pending in_progress on_hold completed"`
	SaleStatus    string  `json:"sale_status" validate:"omitempty,oneof=available booked sold"`
}

// UpdateUnitStatusRequest needs at least one of the two statuses.
type UpdateUnitStatusRequest struct {
	ProjectStatus string `json:"project_status" validate:"omitempty,oneof=pending in_progress on_hold completed"`
	SaleStatus    string `json:"sale_status" validate:"omitempty,oneof=available booked sold"`
}
