package entity

import (
	"errors"
	"fmt"
)

// ValidationError reports input that is malformed or semantically disallowed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Error messages for the known cases are part of the API contract and must
// not be reworded.
var (
	ErrInvalidEmail       = &ValidationError{Message: "Invalid email format"}
	ErrNilLeadStatus      = &ValidationError{Message: "Lead status cannot be None"}
	ErrEmailAlreadyExists = &ConflictError{Message: "A lead with this email already exists"}

	ErrLeadNotFound    = &NotFoundError{Message: "Lead not found"}
	ErrActionNotFound  = &NotFoundError{Message: "Action not found"}
	ErrProcessNotFound = &NotFoundError{Message: "Process not found"}
)

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
