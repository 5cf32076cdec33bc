// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the watch cycle.
type ErrorKind string

const (
	// KindNetwork covers connection failures, timeouts, and non-success HTTP
	// statuses on either endpoint.
	KindNetwork ErrorKind = "network"
	// KindDecode means the metadata response was not valid JSON or lacked a
	// required field.
	KindDecode ErrorKind = "decode"
	// KindRender means the markdown could not be turned into output text.
	KindRender ErrorKind = "render"
	// KindWrite means the output file could not be created or written.
	KindWrite ErrorKind = "write"
	// KindStartup means the process could not prepare the loop, for example
	// because the template file is missing.
	KindStartup ErrorKind = "startup"
)

// Error is a classified failure. Op names the operation that failed
// (e.g. "fetch metadata") and Err carries the underlying cause.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error of the given kind.
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
