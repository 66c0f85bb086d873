package taskstore

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle      = errors.New("title is empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrNotFound        = errors.New("task not found")
	ErrConflict        = errors.New("task id already in use")
)

// ValidationError reports rejected input. The store is left unchanged.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an operation on an id that is not in the store,
// typically a stale reference held by the UI.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d: %s", e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a restore whose id is already live.
type ConflictError struct {
	ID int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("task %d: %s", e.ID, ErrConflict)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
