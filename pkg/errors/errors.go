// Package errors provides custom error types for the capsync system.
// These errors enable programmatic error checking and carry the offending
// id/type/field context that operators need when a reconciliation run fails.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the capsync system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an entity type outside the known vocabulary
	ErrUnsupportedType = errors.New("unsupported entity type")

	// ErrInconsistentSnapshot indicates an actual-state snapshot whose
	// indexes disagree with each other
	ErrInconsistentSnapshot = errors.New("inconsistent snapshot")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// SchemaError represents malformed business data: a missing or empty id, a
// non-object payload, or an unresolvable type/category/subtype encountered
// while indexing. Fatal and never recovered locally.
type SchemaError struct {
	EntityType string
	ID         string
	Field      string
	Message    string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	switch {
	case e.ID != "" && e.Field != "":
		return fmt.Sprintf("schema error for %s %s (field %s): %s", e.EntityType, e.ID, e.Field, e.Message)
	case e.ID != "":
		return fmt.Sprintf("schema error for %s %s: %s", e.EntityType, e.ID, e.Message)
	case e.EntityType != "":
		return fmt.Sprintf("schema error for %s: %s", e.EntityType, e.Message)
	default:
		return fmt.Sprintf("schema error: %s", e.Message)
	}
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(entityType, id, field, message string) *SchemaError {
	return &SchemaError{EntityType: entityType, ID: id, Field: field, Message: message}
}

// UnsupportedTypeError represents an entity type, category, or kind
// discriminant absent from every resolution table. Raised while building an
// inventory index, because an unindexed entity would be invisible to
// delete-detection.
type UnsupportedTypeError struct {
	Category string
	Subtype  string
	ID       string
}

// Error implements the error interface
func (e *UnsupportedTypeError) Error() string {
	if e.Subtype != "" {
		return fmt.Sprintf("unsupported entity type for record %s: category %q, subtype %q", e.ID, e.Category, e.Subtype)
	}
	return fmt.Sprintf("unsupported entity type for record %s: category %q", e.ID, e.Category)
}

// Is implements errors.Is support
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// NewUnsupportedTypeError creates a new UnsupportedTypeError
func NewUnsupportedTypeError(category, subtype, id string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Category: category, Subtype: subtype, ID: id}
}

// ConsistencyError represents an internal inconsistency in a caller-supplied
// snapshot: the payload index omits an id that the id inventory contains.
// This signals a caller-assembly bug, not malformed business data.
type ConsistencyError struct {
	EntityType string
	ID         string
	Message    string
}

// Error implements the error interface
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent snapshot for %s %s: %s", e.EntityType, e.ID, e.Message)
}

// Is implements errors.Is support
func (e *ConsistencyError) Is(target error) bool {
	return target == ErrInconsistentSnapshot
}

// NewConsistencyError creates a new ConsistencyError
func NewConsistencyError(entityType, id, message string) *ConsistencyError {
	return &ConsistencyError{EntityType: entityType, ID: id, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsSchemaError checks if an error is a schema error
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsUnsupportedType checks if an error indicates an unknown entity type
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}

// IsInconsistentSnapshot checks if an error is a snapshot consistency error
func IsInconsistentSnapshot(err error) bool {
	return errors.Is(err, ErrInconsistentSnapshot)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
