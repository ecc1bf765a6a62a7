package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// User-facing, recovered locally.
	ErrValidation = errors.New("validation error")
	ErrParse      = errors.New("parse error")
	ErrAttachment = errors.New("attachment error")

	// Programming-contract violations.
	ErrIndex      = errors.New("index out of range")
	ErrNotEditing = errors.New("field is not being edited")

	// The in-memory state is intact but could not be written to disk.
	ErrPersistence = errors.New("persistence error")
)

// ValidationError reports missing or malformed user input.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation error")
	if len(e.Fields) > 0 {
		b.WriteString(": ")
		if e.Reason == "" {
			b.WriteString("missing ")
		}
		b.WriteString(strings.Join(e.Fields, ", "))
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ParseError reports a malformed snapshot, backup or stored payload.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse %s", e.Source)
	}
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// AttachmentError reports a failure to read or validate an attachment file.
type AttachmentError struct {
	Path string
	Err  error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %s: %v", e.Path, e.Err)
}

func (e *AttachmentError) Unwrap() []error { return []error{ErrAttachment, e.Err} }

// IndexError reports a position outside of a collection.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// CheckIndex returns an *IndexError when i is not a valid position in a
// collection of length n.
func CheckIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{What: what, Index: i, Len: n}
	}
	return nil
}
