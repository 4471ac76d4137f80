package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the session should end normally.
	ErrQuit = errors.New("quit requested")

	// ErrUnsavedChanges is returned by :q when the buffer is modified.
	ErrUnsavedChanges = errors.New("no write since last change (add ! to override)")

	// ErrNoFileName is returned by :w when the buffer has no path.
	ErrNoFileName = errors.New("no file name")

	// ErrUnknownCommand is returned for ex commands that are not
	// implemented.
	ErrUnknownCommand = errors.New("not an editor command")

	// ErrNotTerminal indicates interactive editing without a tty.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// OperationError represents a failed file operation.
type OperationError struct {
	Op     string // Operation name (e.g., "write", "read")
	Target string // File path
	Err    error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
