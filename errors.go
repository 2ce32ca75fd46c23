// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"fmt"
)

// UsageError reports missing or invalid command line configuration.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Reason
}

// MalformedMarkerError reports a field-0 token that is not of the form
// "<chromosome>_<position>" with an integer position.
type MalformedMarkerError struct {
	Line  int
	Token string
	Err   error
}

func (e *MalformedMarkerError) Error() string {
	msg := fmt.Sprintf("malformed marker %q", e.Token)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedMarkerError) Unwrap() error { return e.Err }

// EmptyRowError reports a data line with no fields.
type EmptyRowError struct {
	Line int
}

func (e *EmptyRowError) Error() string {
	return fmt.Sprintf("line %d: empty row", e.Line)
}

// IOError reports a failure reading the input or writing the output.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
