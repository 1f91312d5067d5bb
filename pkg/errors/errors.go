package errors

import (
	"fmt"
	"net/http"
)

// ApiError is the JSON body of every failed HTTP response.
type ApiError struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Detail    string      `json:"detail,omitempty"`
	Fields    interface{} `json:"fields,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

var (
	ErrBadRequest          = func(detail string) *ApiError { return New(http.StatusBadRequest, "Bad Request", detail) }
	ErrNotFound            = func(detail string) *ApiError { return New(http.StatusNotFound, "Not Found", detail) }
	ErrConflict            = func(detail string) *ApiError { return New(http.StatusConflict, "Conflict", detail) }
	ErrPayloadTooLarge     = func(detail string) *ApiError { return New(http.StatusRequestEntityTooLarge, "Payload Too Large", detail) }
	ErrUnprocessableEntity = func(detail string) *ApiError {
		return New(http.StatusUnprocessableEntity, "Unprocessable Entity", detail)
	}
	ErrInternalServer = func(detail string) *ApiError {
		return New(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	ErrRenderFailed = func(detail string) *ApiError {
		return New(http.StatusBadGateway, "PDF Rendering Failed", detail)
	}
)

func New(code int, message, detail string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

func (e *ApiError) WithRequestID(requestID string) *ApiError {
	e.RequestID = requestID
	return e
}

// WithFields attaches per-field validation failures.
func (e *ApiError) WithFields(fields interface{}) *ApiError {
	e.Fields = fields
	return e
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.Code
}
