package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	Internal        Kind = "internal"
	NotFound        Kind = "not_found"
	Conflict        Kind = "conflict"
	InvalidArgument Kind = "invalid_argument"
)

// Error tags an underlying error with the kind of failure it represents,
// so callers can map it without string matching.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the Kind carried by err, or Internal when err is untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.Kind != "" {
		return e.Kind
	}
	return Internal
}

func IsNotFound(err error) bool        { return KindOf(err) == NotFound }
func IsConflict(err error) bool        { return KindOf(err) == Conflict }
func IsInvalidArgument(err error) bool { return KindOf(err) == InvalidArgument }
