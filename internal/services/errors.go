package services

import (
	"errors"
	"fmt"
)

// Kind classifies a workflow failure for the caller.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindInvalidArgument Kind = "invalid-argument"
	KindInternal        Kind = "internal"
)

var errNoImage = errors.New("backend response contained no image")

// Error is the single structured error a workflow returns to its caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func InvalidArgument(message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// RequireCaller rejects invocations without a verified caller identity.
func RequireCaller(caller string) error {
	if caller == "" {
		return Unauthenticated("The function must be called while authenticated.")
	}
	return nil
}
