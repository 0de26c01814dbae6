package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindValidation marks malformed or constraint-violating input. Never retried.
	KindValidation Kind = iota + 1
	// KindNotFound marks a missing referenced entity. Never retried.
	KindNotFound
	// KindConflict marks uniqueness or referential-integrity violations. Never retried.
	KindConflict
	// KindTransient marks lock/serialization conflicts at the storage layer,
	// retried by trxmanager up to its policy limit.
	KindTransient
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Transient(err error, message string) *Error {
	return &Error{Kind: KindTransient, Message: message, Err: err}
}

// KindOf returns the kind of err if it is (or wraps) an *Error, zero otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}
