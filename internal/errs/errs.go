// Package errs defines the error kinds shared by the catalog, playlist and
// auth services. Lower layers fail with the most specific kind; handlers map
// kinds to HTTP statuses in one place.
package errs

import (
	"errors"
	"net/http"
	"strings"
)

type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
	KindConflict   Kind = "conflict"
	KindInvariant  Kind = "invariant"
	KindValidation Kind = "validation"
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func NotFound(msg string) error { return &Error{kind: KindNotFound, msg: msg} }

func Forbidden(msg string) error { return &Error{kind: KindForbidden, msg: msg} }

func Conflict(msg string) error { return &Error{kind: KindConflict, msg: msg} }

func Invariant(msg string) error { return &Error{kind: KindInvariant, msg: msg} }

func Validation(msg string) error { return &Error{kind: KindValidation, msg: msg} }

// ValidationFields builds a Validation error out of per-field problems, one
// "field: problem" clause per field.
func ValidationFields(problems []string) error {
	return Validation(strings.Join(problems, "; "))
}

// KindOf returns the kind carried by err, or "" for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ""
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// HTTPStatus maps an error to its response status. Errors without a kind are
// store/cache failures and surface as 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindInvariant, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
