// Package apperror holds the error kinds returned by the domain services.
// Every failure is a value; the HTTP layer decides the status code.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindMalformedField     Kind = "MALFORMED_FIELD"
	KindMissingReference   Kind = "MISSING_REQUIRED_REFERENCE"
	KindReferenceNotFound  Kind = "REFERENCE_NOT_FOUND"
	KindNotFound           Kind = "NOT_FOUND"
	KindValidationFailed   Kind = "VALIDATION_FAILED"
	KindStorageUnavailable Kind = "STORAGE_UNAVAILABLE"
	KindUnauthorized       Kind = "UNAUTHORIZED"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMalformedField     = &Error{Kind: KindMalformedField}
	ErrMissingReference   = &Error{Kind: KindMissingReference}
	ErrReferenceNotFound  = &Error{Kind: KindReferenceNotFound}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrValidationFailed   = &Error{Kind: KindValidationFailed}
	ErrStorageUnavailable = &Error{Kind: KindStorageUnavailable}
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "invalid credentials"}
)

type Error struct {
	Kind    Kind
	Entity  string
	Field   string
	ID      int64
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedField:
		return fmt.Sprintf("malformed field %q: %s", e.Field, e.Message)
	case KindMissingReference:
		return fmt.Sprintf("%s requires %s", e.Entity, e.Field)
	case KindReferenceNotFound:
		return fmt.Sprintf("referenced %s %d not found", e.Entity, e.ID)
	case KindNotFound:
		if e.Field != "" {
			return fmt.Sprintf("%s with %s %q not found", e.Entity, e.Field, e.Message)
		}
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	case KindValidationFailed:
		return fmt.Sprintf("field %q %s", e.Field, e.Message)
	case KindStorageUnavailable:
		if e.Err != nil {
			return "storage unavailable: " + e.Err.Error()
		}
		return "storage unavailable"
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Entity == "" || t.Entity == e.Entity)
}

func MalformedField(field, message string) error {
	return &Error{Kind: KindMalformedField, Field: field, Message: message}
}

func MissingReference(entity, field string) error {
	return &Error{Kind: KindMissingReference, Entity: entity, Field: field}
}

func ReferenceNotFound(entity string, id int64) error {
	return &Error{Kind: KindReferenceNotFound, Entity: entity, ID: id}
}

func NotFound(entity string, id int64) error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// NotFoundBy reports a lookup by a non-id attribute that matched nothing.
func NotFoundBy(entity, field, value string) error {
	return &Error{Kind: KindNotFound, Entity: entity, Field: field, Message: value}
}

func Validation(field, message string) error {
	return &Error{Kind: KindValidationFailed, Field: field, Message: message}
}

func StorageUnavailable(err error) error {
	return &Error{Kind: KindStorageUnavailable, Err: err}
}

// KindOf reports the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsClientError reports whether err was caused by bad caller input.
func IsClientError(err error) bool {
	switch KindOf(err) {
	case KindMalformedField, KindMissingReference, KindReferenceNotFound, KindValidationFailed:
		return true
	}
	return false
}
