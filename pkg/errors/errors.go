package custom_error

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports a lookup miss on an asset, user, department or admin.
type NotFoundError struct {
	Resource string
	ID       any
}

func NewNotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found with id: %v", e.Resource, e.ID)
}

// AlreadyExistsError is returned when a natural key (asset id, e-mail,
// department name) is taken.
type AlreadyExistsError struct {
	message string
}

func NewAlreadyExists(format string, args ...any) *AlreadyExistsError {
	return &AlreadyExistsError{message: fmt.Sprintf(format, args...)}
}

func (e *AlreadyExistsError) Error() string {
	return e.message
}

// ValidationError carries field level messages keyed by the JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RuleViolationError is a business rule refusal, e.g. deleting a department
// that still has employees.
type RuleViolationError struct {
	message string
}

func NewRuleViolation(message string) *RuleViolationError {
	return &RuleViolationError{message: message}
}

func (e *RuleViolationError) Error() string {
	return e.message
}

// UnauthorizedError never says which credential was wrong.
type UnauthorizedError struct {
	message string
}

func NewUnauthorized(message string) *UnauthorizedError {
	return &UnauthorizedError{message: message}
}

func (e *UnauthorizedError) Error() string {
	return e.message
}
