package http

import (
	"errors"
	"net/http"

	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NotificationResponse is one structured rejection notification.
type NotificationResponse struct {
	ErrorName    string   `json:"errorName"`
	ErrorType    string   `json:"errorType"`
	Action       string   `json:"action,omitempty"`
	Reason       string   `json:"reason,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	Details      []string `json:"details,omitempty"`
}

// RejectionResponse is the payload for packing and criteria rejections. The
// severity is data-driven: clients render WARN rejections as user-facing
// messages and SYSTEM rejections as faults.
type RejectionResponse struct {
	Message       string                 `json:"message"`
	ErrorType     string                 `json:"errorType"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}

// writeError maps domain errors to HTTP responses.
func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var rejected *inventory.RejectedError
	if errors.As(err, &rejected) {
		if rejected.IsSystem() {
			return ctx.JSON(http.StatusBadGateway, ErrorResponse{
				Code:    http.StatusBadGateway,
				Message: rejected.Message,
			})
		}
		return ctx.JSON(http.StatusUnprocessableEntity, toRejectionResponse(rejected))
	}

	var criteriaErr *criteria.ValidationError
	if errors.As(err, &criteriaErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, RejectionResponse{
			Message:   criteriaErr.Message,
			ErrorType: criteriaErr.MessageType,
			Notifications: []NotificationResponse{{
				ErrorName:    criteriaErr.ErrorName,
				ErrorType:    criteriaErr.MessageType,
				ErrorMessage: criteriaErr.Message,
			}},
		})
	}

	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &required) || errors.As(err, &invalid) || errors.As(err, &outOfRange) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func toRejectionResponse(rejected *inventory.RejectedError) RejectionResponse {
	response := RejectionResponse{
		Message:   rejected.Message,
		ErrorType: rejected.ErrorType,
	}
	if rejected.Validation == nil {
		return response
	}

	for _, notification := range rejected.Validation.Notifications {
		response.Notifications = append(response.Notifications, NotificationResponse{
			ErrorName:    notification.ErrorName,
			ErrorType:    notification.ErrorType,
			Action:       notification.Action,
			Reason:       notification.Reason,
			ErrorMessage: notification.ErrorMessage,
			Details:      notification.Details,
		})
	}
	return response
}
