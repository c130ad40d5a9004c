package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{http.StatusNotFound, errors.New("not found")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Unauthorized        = HttpError{http.StatusUnauthorized, errors.New("unauthorized")}
	Forbidden           = HttpError{http.StatusForbidden, errors.New("forbidden")}
	Conflict            = HttpError{http.StatusConflict, errors.New("conflict")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("internal server error")}
)

var statusSentinels = map[int]HttpError{
	http.StatusNotFound:            NotFound,
	http.StatusBadRequest:          BadRequest,
	http.StatusUnauthorized:        Unauthorized,
	http.StatusForbidden:           Forbidden,
	http.StatusConflict:            Conflict,
	http.StatusInternalServerError: InternalServerError,
}

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// FromStatusCode returns the sentinel for a status code, or a generic error for codes
// without one.
func FromStatusCode(code int) HttpError {
	if e, ok := statusSentinels[code]; ok {
		return e
	}
	return HttpError{code, errors.New(http.StatusText(code))}
}
