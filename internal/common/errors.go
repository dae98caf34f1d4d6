// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Ingest errors.
	ErrFileNotFound   = errors.New("file doesn't exist")
	ErrNoOrders       = errors.New("no orders found in Excel file")
	ErrNoTimeEntries  = errors.New("no entries found in time sheet")
	ErrInvalidHeader  = errors.New("improper header in file")
	ErrInvalidDate    = errors.New("invalid order date found")
	ErrUnknownEntry   = errors.New("unknown entry in timesheet")

	// Processing errors.
	ErrNotLinked        = errors.New("both documents must be linked")
	ErrInvalidPrecision = errors.New("precision must be between 1 and 5 hours")
	ErrNoRows           = errors.New("no rows to write")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
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

// UserMessage returns the display half of an error when one is attached,
// falling back to the full error text.
func UserMessage(err error) string {
	var uerr *UserError
	if errors.As(err, &uerr) {
		return uerr.UserMessage
	}
	return err.Error()
}
