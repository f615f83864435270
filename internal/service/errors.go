package service

import (
	"context"
	"errors"
	"net/http"

	"estate_erp/internal/logic"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
)

// CodeFromError maps a logic error to its gRPC status code.
func CodeFromError(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, logic.ErrBuildingNotFound),
		errors.Is(err, logic.ErrFloorUnitNotFound),
		errors.Is(err, logic.ErrPropertyUnitNotFound):
		return codes.NotFound
	case errors.Is(err, logic.ErrPendingUnits),
		errors.Is(err, logic.ErrNotDeleted),
		errors.Is(err, logic.ErrParentDeleted):
		return codes.FailedPrecondition
	case errors.Is(err, logic.ErrDuplicate):
		return codes.AlreadyExists
	case errors.Is(err, logic.ErrInvalidArgument),
		errors.Is(err, logic.ErrUnsupportedEntity):
		return codes.InvalidArgument
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// HTTPStatusFromCode follows grpc-gateway, except that state conflicts surface as 409.
func HTTPStatusFromCode(c codes.Code) int {
	switch c {
	case codes.FailedPrecondition, codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	}
	return runtime.HTTPStatusFromCode(c)
}

// writeLogicError renders err. Internal failures are logged and their detail is withheld.
func writeLogicError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	code := CodeFromError(err)
	httpCode := HTTPStatusFromCode(code)
	if code == codes.Internal {
		logger.Error(op+" failed", zap.Error(err))
		WriteHttpError(w, httpCode, "internal error")
		return
	}
	WriteHttpError(w, httpCode, err.Error())
}
