// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extracterr defines the error kinds the MP3 decoder raises.
package extracterr

import "fmt"

// Kind classifies why extraction failed.
type Kind string

const (
	// KindUnreadable means the byte source itself could not be
	// opened or sized (missing file, zero length, permission denied).
	KindUnreadable Kind = "unreadable"

	// KindMalformedTag means a single ID3v1/ID3v2 tag or frame
	// failed to parse. These are never returned to a caller; the
	// parser logs them and carries on (the id3v2 parser raises this
	// kind for a malformed extended header, and then skips that tag's
	// frames).
	KindMalformedTag Kind = "malformed_tag"

	// KindNoStream means the MPEG frame scanner could not confirm at
	// least two valid frames, so no stream-level triples were
	// emitted.
	KindNoStream Kind = "no_stream"
)

// Error wraps an extraction failure with the component it occurred
// in and, where applicable, the underlying cause.
type Error struct {
	Kind      Kind
	Component string
	Message   string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Component, e.Message, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Component, e.Message, e.Kind)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error with no wrapped cause.
func New(kind Kind, component, message string) *Error {
	return &Error{Kind: kind, Component: component, Message: message}
}

// Wrap builds an Error around an existing error.
func Wrap(kind Kind, component, message string, err error) *Error {
	return &Error{Kind: kind, Component: component, Message: message, Err: err}
}
