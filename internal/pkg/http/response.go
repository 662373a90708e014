package http

import (
	"errors"
	"fmt"
	"net/http"

	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

type ErrorCode string

const (
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"

	internalErrorMessage = "Internal server error"
)

// ResponseError is an error that is rendered to the client as is.
type ResponseError struct {
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]any
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadRequest(message string, details map[string]any) error {
	return &ResponseError{
		HTTPCode: http.StatusBadRequest,
		Code:     CodeBadRequest,
		Message:  message,
		Details:  details,
	}
}

func NotFound(message string) error {
	return &ResponseError{
		HTTPCode: http.StatusNotFound,
		Code:     CodeNotFound,
		Message:  message,
	}
}

func TooManyRequests(message string) error {
	return &ResponseError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     CodeTooManyRequests,
		Message:  message,
	}
}

func InternalError(message string) error {
	return &ResponseError{
		HTTPCode: http.StatusInternalServerError,
		Code:     CodeInternalError,
		Message:  message,
	}
}

type (
	successOut struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
	}

	errorOut struct {
		Success bool         `json:"success"`
		Error   errorBodyOut `json:"error"`
	}

	errorBodyOut struct {
		Code    ErrorCode      `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	}
)

// Data wraps v into the success envelope.
func Data(v any) any {
	return successOut{Success: true, Data: v}
}

// EncodeError is the pkghttp.ErrorEncoder of the service.
func EncodeError(err error) (int, any) {
	var respErr *ResponseError
	switch {
	case errors.As(err, &respErr):
	case errors.Is(err, pkghttp.ErrParsingError):
		respErr = BadRequest("Invalid body", nil).(*ResponseError)
	case errors.Is(err, pkghttp.ErrRouteNotFound):
		respErr = NotFound("Not found").(*ResponseError)
	case errors.Is(err, pkghttp.ErrMethodNotAllowed):
		respErr = &ResponseError{
			HTTPCode: http.StatusMethodNotAllowed,
			Code:     CodeMethodNotAllowed,
			Message:  "Method not allowed",
		}
	default:
		respErr = InternalError(internalErrorMessage).(*ResponseError)
	}

	return respErr.HTTPCode, errorOut{
		Success: false,
		Error: errorBodyOut{
			Code:    respErr.Code,
			Message: respErr.Message,
			Details: respErr.Details,
		},
	}
}
