package service

import (
	"net/http"

	"estate_erp/internal/dto"
	"estate_erp/internal/logic"
	"estate_erp/pkg/pagination"

	"go.uber.org/zap"
)

// HierarchyHandler serves building, floor and unit creation and listing.
type HierarchyHandler struct {
	logic  logic.HierarchyLogic
	logger *zap.Logger
}

func NewHierarchyHandler(l logic.HierarchyLogic, logger *zap.Logger) *HierarchyHandler {
	return &HierarchyHandler{logic: l, logger: logger.Named("HierarchyHandler")}
}

func (h *HierarchyHandler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	uid, err := actor(r)
	if err != nil {
		WriteHttpError(w, http.StatusUnauthorized, err.Error())
		return
	}
	var req dto.CreateBuildingRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.logic.CreateBuilding(r.Context(), uid, &req)
	if err != nil {
		writeLogicError(w, h.logger, "CreateBuilding", err)
		return
	}
	WriteHttpSuccess(w, http.StatusCreated, b)
}

func (h *HierarchyHandler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	includeDeleted, err := boolQuery(r, "include_deleted")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.logic.GetBuilding(r.Context(), id, includeDeleted)
	if err != nil {
		writeLogicError(w, h.logger, "GetBuilding", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, b)
}

func (h *HierarchyHandler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.FromQuery(r.URL.Query())
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	includeDeleted, err := boolQuery(r, "include_deleted")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.logic.ListBuildings(r.Context(), page, includeDeleted)
	if err != nil {
		writeLogicError(w, h.logger, "ListBuildings", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, res)
}

func (h *HierarchyHandler) CreateFloorUnit(w http.ResponseWriter, r *http.Request) {
	uid, err := actor(r)
	if err != nil {
		WriteHttpError(w, http.StatusUnauthorized, err.Error())
		return
	}
	buildingID, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.CreateFloorUnitRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := h.logic.CreateFloorUnit(r.Context(), uid, buildingID, &req)
	if err != nil {
		writeLogicError(w, h.logger, "CreateFloorUnit", err)
		return
	}
	WriteHttpSuccess(w, http.StatusCreated, f)
}

func (h *HierarchyHandler) ListFloorUnits(w http.ResponseWriter, r *http.Request) {
	buildingID, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	includeDeleted, err := boolQuery(r, "include_deleted")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	floors, err := h.logic.ListFloorUnits(r.Context(), buildingID, includeDeleted)
	if err != nil {
		writeLogicError(w, h.logger, "ListFloorUnits", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, floors)
}

func (h *HierarchyHandler) CreatePropertyUnit(w http.ResponseWriter, r *http.Request) {
	uid, err := actor(r)
	if err != nil {
		WriteHttpError(w, http.StatusUnauthorized, err.Error())
		return
	}
	floorID, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.CreatePropertyUnitRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.logic.CreatePropertyUnit(r.Context(), uid, floorID, &req)
	if err != nil {
		writeLogicError(w, h.logger, "CreatePropertyUnit", err)
		return
	}
	WriteHttpSuccess(w, http.StatusCreated, u)
}

func (h *HierarchyHandler) ListPropertyUnits(w http.ResponseWriter, r *http.Request) {
	floorID, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	includeDeleted, err := boolQuery(r, "include_deleted")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	units, err := h.logic.ListPropertyUnits(r.Context(), floorID, includeDeleted)
	if err != nil {
		writeLogicError(w, h.logger, "ListPropertyUnits", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, units)
}

func (h *HierarchyHandler) UpdatePropertyUnitStatus(w http.ResponseWriter, r *http.Request) {
	uid, err := actor(r)
	if err != nil {
		WriteHttpError(w, http.StatusUnauthorized, err.Error())
		return
	}
	unitID, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.UpdateUnitStatusRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.logic.UpdatePropertyUnitStatus(r.Context(), uid, unitID, &req)
	if err != nil {
		writeLogicError(w, h.logger, "UpdatePropertyUnitStatus", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, u)
}
