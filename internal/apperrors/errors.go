// Package apperrors holds the error taxonomy shared by the planner services.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when an update targets an unknown post id.
	ErrPostNotFound = errors.New("post not found")

	// ErrBusy is returned when a generation call is already in flight.
	ErrBusy = errors.New("generation already in progress")

	// ErrImageNotFound is returned for unknown or released image handles.
	ErrImageNotFound = errors.New("image not found")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Invalid builds a *ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConfigError reports a missing credential or setting for an external service.
type ConfigError struct {
	Service string
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured: %s is missing", e.Service, e.Setting)
}

// RemoteError reports a failed or unusable upstream response.
type RemoteError struct {
	Service string
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s request failed (status %d): %s", e.Service, e.Status, msg)
	}
	return fmt.Sprintf("%s request failed: %s", e.Service, msg)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConfig reports whether err is a *ConfigError.
func IsConfig(err error) bool {
	var c *ConfigError
	return errors.As(err, &c)
}

// IsRemote reports whether err is a *RemoteError.
func IsRemote(err error) bool {
	var r *RemoteError
	return errors.As(err, &r)
}
