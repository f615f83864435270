package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estate_erp/internal/constants"
	"estate_erp/internal/dto"
	"estate_erp/internal/logic"
	"estate_erp/internal/models"
	"estate_erp/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newRequest(method, target, body string, actor primitive.ObjectID, path map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range path {
		req.SetPathValue(k, v)
	}
	if !actor.IsZero() {
		req = req.WithContext(WithActor(req.Context(), actor))
	}
	return req
}

func TestCodeFromError(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
		http int
	}{
		{logic.ErrBuildingNotFound, codes.NotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", logic.ErrPropertyUnitNotFound), codes.NotFound, http.StatusNotFound},
		{&logic.PendingUnitsError{Count: 2}, codes.FailedPrecondition, http.StatusConflict},
		{logic.ErrNotDeleted, codes.FailedPrecondition, http.StatusConflict},
		{logic.ErrParentDeleted, codes.FailedPrecondition, http.StatusConflict},
		{logic.ErrDuplicate, codes.AlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: name required", logic.ErrInvalidArgument), codes.InvalidArgument, http.StatusBadRequest},
		{context.DeadlineExceeded, codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("socket closed"), codes.Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code := CodeFromError(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.http, HTTPStatusFromCode(code))
		})
	}
}

func TestEntityHandler_Delete(t *testing.T) {
	uid := primitive.NewObjectID()
	id := primitive.NewObjectID()

	t.Run("soft delete", func(t *testing.T) {
		m := new(MockEntityLogic)
		h := NewEntityHandler(m, zap.NewNop())
		m.On("Delete", mock.Anything, constants.EntityBuilding, id, uid, false).
			Return(&models.Building{ID: id, Name: "Tower A"}, nil).Once()

		rec := httptest.NewRecorder()
		h.Delete(rec, newRequest(http.MethodDelete, "/api/v1/buildings/"+id.Hex(), "", uid,
			map[string]string{"entity": "buildings", "id": id.Hex()}))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "success", env.Status)
		assert.Contains(t, string(env.Data), "Tower A")
		m.AssertExpectations(t)
	})

	t.Run("hard delete", func(t *testing.T) {
		m := new(MockEntityLogic)
		h := NewEntityHandler(m, zap.NewNop())
		m.On("Delete", mock.Anything, constants.EntityPropertyUnit, id, uid, true).
			Return(&models.PropertyUnit{ID: id}, nil).Once()

		rec := httptest.NewRecorder()
		h.Delete(rec, newRequest(http.MethodDelete, "/api/v1/units/"+id.Hex()+"?hard=true", "", uid,
			map[string]string{"entity": "units", "id": id.Hex()}))

		assert.Equal(t, http.StatusOK, rec.Code)
		m.AssertExpectations(t)
	})

	t.Run("pending units conflict", func(t *testing.T) {
		m := new(MockEntityLogic)
		h := NewEntityHandler(m, zap.NewNop())
		m.On("Delete", mock.Anything, constants.EntityFloorUnit, id, uid, false).
			Return(nil, &logic.PendingUnitsError{FloorID: id, Count: 3}).Once()

		rec := httptest.NewRecorder()
		h.Delete(rec, newRequest(http.MethodDelete, "/api/v1/floors/"+id.Hex(), "", uid,
			map[string]string{"entity": "floors", "id": id.Hex()}))

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, fmt.Sprintf("floor %s has 3 pending property unit(s) that are not completed", id.Hex()), env.Message)
	})

	t.Run("internal error hides detail", func(t *testing.T) {
		m := new(MockEntityLogic)
		h := NewEntityHandler(m, zap.NewNop())
		m.On("Delete", mock.Anything, constants.EntityBuilding, id, uid, false).
			Return(nil, errors.New("connection refused")).Once()

		rec := httptest.NewRecorder()
		h.Delete(rec, newRequest(http.MethodDelete, "/", "", uid,
			map[string]string{"entity": "buildings", "id": id.Hex()}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decode(t, rec).Message)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		m := new(MockEntityLogic)
		h := NewEntityHandler(m, zap.NewNop())

		cases := []struct {
			name   string
			target string
			actor  primitive.ObjectID
			path   map[string]string
			want   int
		}{
			{"no actor", "/", primitive.NilObjectID, map[string]string{"entity": "buildings", "id": id.Hex()}, http.StatusUnauthorized},
			{"unknown entity", "/", uid, map[string]string{"entity": "projects", "id": id.Hex()}, http.StatusNotFound},
			{"bad id", "/", uid, map[string]string{"entity": "buildings", "id": "42"}, http.StatusBadRequest},
			{"bad hard flag", "/?hard=maybe", uid, map[string]string{"entity": "buildings", "id": id.Hex()}, http.StatusBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				h.Delete(rec, newRequest(http.MethodDelete, tc.target, "", tc.actor, tc.path))
				assert.Equal(t, tc.want, rec.Code)
			})
		}
		m.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEntityHandler_Restore(t *testing.T) {
	uid := primitive.NewObjectID()
	id := primitive.NewObjectID()

	m := new(MockEntityLogic)
	h := NewEntityHandler(m, zap.NewNop())
	m.On("Restore", mock.Anything, constants.EntityFloorUnit, id, uid).Return(nil, logic.ErrParentDeleted).Once()
	m.On("Restore", mock.Anything, constants.EntityBuilding, id, uid).Return(&models.Building{ID: id}, nil).Once()

	rec := httptest.NewRecorder()
	h.Restore(rec, newRequest(http.MethodPost, "/", "", uid, map[string]string{"entity": "floors", "id": id.Hex()}))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.Restore(rec, newRequest(http.MethodPost, "/", "", uid, map[string]string{"entity": "buildings", "id": id.Hex()}))
	assert.Equal(t, http.StatusOK, rec.Code)
	m.AssertExpectations(t)
}

func TestHierarchyHandler_CreateFloorUnit(t *testing.T) {
	uid := primitive.NewObjectID()
	buildingID := primitive.NewObjectID()

	m := new(MockHierarchyLogic)
	h := NewHierarchyHandler(m, zap.NewNop())
	m.On("CreateFloorUnit", mock.Anything, uid, buildingID, mock.MatchedBy(func(req *dto.CreateFloorUnitRequest) bool {
		return req.FloorNumber != nil && *req.FloorNumber == 0 && req.Name == "Ground"
	})).Return(&models.FloorUnit{ID: primitive.NewObjectID(), BuildingID: buildingID}, nil).Once()

	rec := httptest.NewRecorder()
	h.CreateFloorUnit(rec, newRequest(http.MethodPost, "/", `{"floor_number":0,"name":"Ground"}`, uid,
		map[string]string{"id": buildingID.Hex()}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	m.AssertExpectations(t)

	rec = httptest.NewRecorder()
	h.CreateFloorUnit(rec, newRequest(http.MethodPost, "/", `{"floor_number":1,"colour":"red"}`, uid,
		map[string]string{"id": buildingID.Hex()}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHierarchyHandler_ListBuildings(t *testing.T) {
	m := new(MockHierarchyLogic)
	h := NewHierarchyHandler(m, zap.NewNop())
	page := pagination.NewPageRequest(2, 5)
	m.On("ListBuildings", mock.Anything, page, true).
		Return(pagination.NewPageResult([]*models.Building{{Name: "B"}}, 6, page), nil).Once()

	rec := httptest.NewRecorder()
	h.ListBuildings(rec, newRequest(http.MethodGet, "/api/v1/buildings?page=2&page_size=5&include_deleted=true", "", primitive.NilObjectID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res pagination.PageResult[*models.Building]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.Equal(t, int64(6), res.Total)
	assert.Equal(t, 2, res.TotalPages)
	m.AssertExpectations(t)

	rec = httptest.NewRecorder()
	h.ListBuildings(rec, newRequest(http.MethodGet, "/api/v1/buildings?page=two", "", primitive.NilObjectID, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHierarchyHandler_GetBuildingNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	m := new(MockHierarchyLogic)
	h := NewHierarchyHandler(m, zap.NewNop())
	m.On("GetBuilding", mock.Anything, id, false).Return(nil, logic.ErrBuildingNotFound).Once()

	rec := httptest.NewRecorder()
	h.GetBuilding(rec, newRequest(http.MethodGet, "/", "", primitive.NilObjectID, map[string]string{"id": id.Hex()}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, logic.ErrBuildingNotFound.Error(), decode(t, rec).Message)
}

func TestAuditHandler_ListAuditLogs(t *testing.T) {
	m := new(MockAuditLogic)
	h := NewAuditHandler(m, zap.NewNop())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docID := primitive.NewObjectID().Hex()

	m.On("QueryAuditLogs", mock.Anything, mock.MatchedBy(func(q *dto.AuditLogQuery) bool {
		return q.Collection == "buildings" && q.DocumentID == docID &&
			q.From != nil && q.From.Equal(from) && q.To == nil && q.Page.Page == 1
	})).Return(pagination.NewPageResult[*models.AuditLog](nil, 0, pagination.NewPageRequest(1, 0)), nil).Once()

	rec := httptest.NewRecorder()
	h.ListAuditLogs(rec, newRequest(http.MethodGet,
		"/api/v1/audit-logs?collection=buildings&document_id="+docID+"&from=2024-01-01T00:00:00Z", "", primitive.NilObjectID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	m.AssertExpectations(t)

	rec = httptest.NewRecorder()
	h.ListAuditLogs(rec, newRequest(http.MethodGet, "/api/v1/audit-logs?to=yesterday", "", primitive.NilObjectID, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
