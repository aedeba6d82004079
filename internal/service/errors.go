package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-keeper/models"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrValidationFailed    = errors.New("validation failed")
	ErrConstraintViolation = errors.New("constraint violation")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUnknownSelectKind   = errors.New("unknown select kind")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ResourceError ties a failure to the kind of resource (and, when known, the
// id) it was raised for. Err is one of ErrNotFound, ErrForbidden or
// ErrConstraintViolation.
type ResourceError struct {
	Kind models.ResourceKind
	ID   int64
	Err  error
}

func (e *ResourceError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d: %v", e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func notFound(kind models.ResourceKind, id int64) error {
	return &ResourceError{Kind: kind, ID: id, Err: ErrNotFound}
}

func forbidden(kind models.ResourceKind, id int64) error {
	return &ResourceError{Kind: kind, ID: id, Err: ErrForbidden}
}
