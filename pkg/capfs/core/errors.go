// Package core holds the shared error taxonomy for capfs.
// It lives in its own package so that every other package can raise
// typed failures without import cycles.
package core

import (
	"errors"
	"fmt"
)

// NotFoundError reports that the target of an operation does not exist.
type NotFoundError struct {
	Path   string // the offending resolved path
	Action string // human-readable action, e.g. "delete directory"
	Cause  error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s '%s': not found: %v", e.Action, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to %s '%s': not found", e.Action, e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// InvalidArgumentError reports a malformed argument rejected before any
// I/O was attempted: a bad path string, an unknown data type token, or an
// unrecognized binary payload.
type InvalidArgumentError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *InvalidArgumentError) Error() string {
	msg := fmt.Sprintf("invalid argument for '%s': %s", e.Path, e.Reason)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// InvalidStateError reports that the filesystem was not in a state the
// operation requires, e.g. a missing parent directory for a write, or a
// creation failure other than "already exists".
type InvalidStateError struct {
	Path   string
	Action string
	Cause  error
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s '%s': %v", e.Action, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to %s '%s': invalid state", e.Action, e.Path)
}

func (e *InvalidStateError) Unwrap() error {
	return e.Cause
}

// ContentUnparseableError reports that no registered parser for a
// requested data type succeeded on a file's content.
type ContentUnparseableError struct {
	Path  string
	Type  string // the requested data type token
	Cause error  // the last parser failure
}

func (e *ContentUnparseableError) Error() string {
	msg := fmt.Sprintf("content of '%s' is not parseable as %q", e.Path, e.Type)
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ContentUnparseableError) Unwrap() error {
	return e.Cause
}

// NewNotFound builds a NotFoundError for path with an optional cause.
func NewNotFound(path, action string, cause error) error {
	return &NotFoundError{Path: path, Action: action, Cause: cause}
}

// NewInvalidArgument builds an InvalidArgumentError for path.
func NewInvalidArgument(path, reason string, cause error) error {
	return &InvalidArgumentError{Path: path, Reason: reason, Cause: cause}
}

// NewInvalidState builds an InvalidStateError for path with an optional cause.
func NewInvalidState(path, action string, cause error) error {
	return &InvalidStateError{Path: path, Action: action, Cause: cause}
}

// NewContentUnparseable builds a ContentUnparseableError for path.
func NewContentUnparseable(path, typ string, cause error) error {
	return &ContentUnparseableError{Path: path, Type: typ, Cause: cause}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsInvalidState reports whether err is (or wraps) an InvalidStateError.
func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

// IsContentUnparseable reports whether err is (or wraps) a ContentUnparseableError.
func IsContentUnparseable(err error) bool {
	var target *ContentUnparseableError
	return errors.As(err, &target)
}
