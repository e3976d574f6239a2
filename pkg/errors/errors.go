package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud inválida")
	ErrForbidden  = fmt.Errorf("acceso denegado")
)

// HttpError carries the status code and the message shown to the
// caller. Err and Context stay server-side, they only reach the logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func BadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

func NotFound(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, ErrNotFound, nil)
}
