// Package common provides shared utilities used across the application.
package common

import (
	"errors"
	"fmt"
)

// Application errors. The engine itself is total and never fails; these
// cover the CLI and configuration surface around it.
var (
	// ErrInvalidConfig indicates a malformed configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNoInput indicates the CLI received nothing to classify.
	ErrNoInput = errors.New("no input text")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
