package service

import (
	"net/http"

	"estate_erp/internal/constants"
	"estate_erp/internal/logic"

	"go.uber.org/zap"
)

// EntityHandler serves delete and restore for every cascading entity type.
type EntityHandler struct {
	logic  logic.EntityLogic
	logger *zap.Logger
}

func NewEntityHandler(l logic.EntityLogic, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{logic: l, logger: logger.Named("EntityHandler")}
}

// Delete handles DELETE /api/v1/{entity}/{id}. Soft unless ?hard=true.
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, err := actor(r)
	if err != nil {
		WriteHttpError(w, http.StatusUnauthorized, err.Error())
		return
	}
	entity, ok := constants.ParseEntityType(r.PathValue("entity"))
	if !ok {
		WriteHttpError(w, http.StatusNotFound, "unknown entity "+r.PathValue("entity"))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	hard, err := boolQuery(r, "hard")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.logic.Delete(r.Context(), entity, id, uid, hard)
	if err != nil {
		writeLogicError(w, h.logger, "Delete", err)
		return
	}
	h.logger.Info("entity deleted",
		zap.Stringer("entity", entity),
		zap.Stringer("id", id),
		zap.Stringer("actor", uid),
		zap.Bool("hard", hard))
	WriteHttpSuccess(w, http.StatusOK, deleted)
}

// Restore handles POST /api/v1/{entity}/{id}/restore.
func (h *EntityHandler) Restore(w http.ResponseWriter, r *http.Request) {
	uid, err := actor(r)
	if err != nil {
		WriteHttpError(w, http.StatusUnauthorized, err.Error())
		return
	}
	entity, ok := constants.ParseEntityType(r.PathValue("entity"))
	if !ok {
		WriteHttpError(w, http.StatusNotFound, "unknown entity "+r.PathValue("entity"))
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	restored, err := h.logic.Restore(r.Context(), entity, id, uid)
	if err != nil {
		writeLogicError(w, h.logger, "Restore", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, restored)
}
