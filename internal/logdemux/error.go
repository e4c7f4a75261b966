// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package logdemux

import "errors"

// ErrStreamRead is returned if reading the diagnostic stream failed.
var ErrStreamRead = errors.New("diagnostic stream read failed")

// WriteError wraps errors occurring on writing to one of the sinks.
type WriteError struct {
	Sink string
	Err  error
}

// Error implements the [error] interface.
func (e *WriteError) Error() string {
	return "write " + e.Sink + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*WriteError) Is(other error) bool {
	_, ok := other.(*WriteError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *WriteError) Unwrap() error {
	return e.Err
}
