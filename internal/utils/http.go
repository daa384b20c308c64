package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response. ErrorKind is the
// machine-readable classification; Detail carries the structured reason
// (shortfall counts, measured distances) for client display.
type ErrorResponse struct {
	Success   bool                   `json:"success"`
	Error     string                 `json:"error"`
	ErrorKind string                 `json:"error_kind,omitempty"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
	Code      int                    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// DomainErrorResponse maps a domain error to its HTTP status and renders the
// kind plus structured detail. Unexpected errors come out as a plain 500.
func DomainErrorResponse(c echo.Context, err error) error {
	kind := apperrors.KindOf(err)
	if kind == "" {
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(statusForKind(kind), ErrorResponse{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: string(kind),
		Detail:    apperrors.DetailOf(err),
		Code:      statusForKind(kind),
	})
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidTransition,
		apperrors.KindDuplicateConfirmation,
		apperrors.KindAlreadyFrozen,
		apperrors.KindCommitRejected:
		return http.StatusConflict
	case apperrors.KindWindowNotOpen,
		apperrors.KindWindowClosed,
		apperrors.KindExpired,
		apperrors.KindQuotaNotMet,
		apperrors.KindCapacityExceeded,
		apperrors.KindTooFarFromStop,
		apperrors.KindInvalidCode,
		apperrors.KindVitalsRequired:
		return http.StatusUnprocessableEntity
	case apperrors.KindLocationUnavailable,
		apperrors.KindRoutingFailed,
		apperrors.KindCommitUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Success:   false,
		Error:     errorMessage,
		ErrorKind: string(apperrors.KindUnauthenticated),
		Code:      http.StatusUnauthorized,
	})
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
