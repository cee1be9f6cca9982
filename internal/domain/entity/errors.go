package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by repositories when no row matches the id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateSlug is the storage signal for a slug uniqueness violation.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrUnencodable means an activity entry could not be serialized for storage.
	ErrUnencodable = errors.New("activity entry cannot be encoded")
)

// FieldError is one failing field of a payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failing field of a rejected payload
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// ConflictError is a uniqueness violation on the slug
type ConflictError struct {
	Slug string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slug %q is already in use", e.Slug)
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicateSlug
}

// StorageError wraps any other persistence failure. The message is the
// underlying error's message, unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a delete, status change or read targets an unknown id
type NotFoundError struct {
	EntityType string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.EntityType, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
