// Package apperr is the flat error taxonomy shared by every operation.
// Each failure carries exactly one kind; the entry layer maps kinds to HTTP
// statuses through the single table below so routes cannot drift apart.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	Unauthorized Kind = "unauthorized"  // credential missing or unparseable
	InvalidInput Kind = "invalid input" // bad field, enum, format, or relationship mismatch
	NotFound     Kind = "not found"     // referenced entity does not exist
	Forbidden    Kind = "forbidden"     // entity exists but belongs to another tenant
	Store        Kind = "store error"   // underlying persistence failure
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error, keeping it available through Unwrap.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the taxonomy kind from err. Untagged errors are treated as
// store-level failures, the only category that can originate outside the core.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Store
}

var httpStatus = map[Kind]int{
	Unauthorized: http.StatusUnauthorized,
	InvalidInput: http.StatusBadRequest,
	NotFound:     http.StatusNotFound,
	Forbidden:    http.StatusForbidden,
	Store:        http.StatusInternalServerError,
}

// HTTPStatus is the canonical kind-to-status mapping used by all handlers.
func HTTPStatus(err error) int {
	if s, ok := httpStatus[KindOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}
