package common

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/operator"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/service"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

var badRequest = []error{
	service.ErrInvalidID,
	service.ErrInvalidPreference,
	actions.ErrMissingUser,
	actions.ErrMissingReason,
	actions.ErrBadDecision,
	actions.ErrBadOperation,
	actions.ErrAmountPositive,
	actions.ErrMissingTransaction,
	actions.ErrBadStatusAction,
}

// Error maps a service error onto an HTTP error. Client errors reported by
// the upstream API keep their status and message; any other upstream
// failure is a 502.
func Error(err error, msg string) error {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return huma.NewError(http.StatusBadRequest, err.Error(), err)
		}
	}

	switch {
	case errors.Is(err, upstream.ErrNoToken):
		return huma.NewError(http.StatusUnauthorized, "missing upstream token", err)
	case errors.Is(err, service.ErrNotAdmin):
		return huma.NewError(http.StatusForbidden, "administrator access required", err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, operator.ErrStopped):
		return huma.NewError(http.StatusServiceUnavailable, "server is shutting down", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, msg, err)
	}

	var se *upstream.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			detail := se.Message
			if detail == "" {
				detail = msg
			}
			return huma.NewError(se.StatusCode, detail, err)
		}
		return huma.NewError(http.StatusBadGateway, msg, err)
	}

	return huma.NewError(http.StatusInternalServerError, msg, err)
}
