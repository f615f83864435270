package fields

const (
	FieldObjectId  = "_id"
	FieldCreatedAt = "created_at"
	FieldCreatedBy = "created_by"
	FieldUpdatedAt = "updated_at"
	FieldUpdatedBy = "updated_by"
	FieldName      = "name"

	FieldIsDeleted = "is_deleted"
	FieldDeletedAt = "deleted_at"
	FieldDeletedBy = "deleted_by"

	FieldBuildingTotalUnits     = "total_units"
	FieldBuildingAvailableUnits = "available_units"
	FieldBuildingSoldUnits      = "sold_units"
	FieldBuildingTotalFloors    = "total_floors"
	FieldBuildingCode           = "code"

	FieldFloorBuilding = "building_id"
	FieldFloorNumber   = "floor_number"

	FieldUnitBuilding      = "building_id"
	FieldUnitFloor         = "floor_id"
	FieldUnitPlotNo        = "plot_no"
	FieldUnitProjectStatus = "project_status"
	FieldUnitSaleStatus    = "sale_status"

	FieldAuditOperationType  = "operation_type"
	FieldAuditCollectionName = "collection_name"
	FieldAuditDocumentID     = "document_id"
	FieldAuditSequence       = "sequence"
)
