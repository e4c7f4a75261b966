// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrExecutableNotFound is returned if an executable can be found neither
	// at the given path nor in any directory of the PATH.
	ErrExecutableNotFound = errors.New("executable not found")

	// ErrSpawn is returned if a process could not be started.
	ErrSpawn = errors.New("spawn failed")

	// ErrNonZeroExit is returned if a process did not exit with exit code 0.
	ErrNonZeroExit = errors.New("non-zero exit")
)

// ProcessError wraps any error occurred while running an external process.
type ProcessError struct {
	// Name of the process, usually the base name of the executable.
	Name string
	// ExitCode of the process. It is 0 if the process did not exit at all
	// and -1 if it was terminated by a signal.
	ExitCode int
	Err      error
}

// Error implements the [error] interface.
func (e *ProcessError) Error() string {
	msg := e.Name + ": " + e.Err.Error()
	if e.ExitCode > 0 {
		msg += " (exit code " + strconv.Itoa(e.ExitCode) + ")"
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*ProcessError) Is(other error) bool {
	_, ok := other.(*ProcessError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ProcessError) Unwrap() error {
	return e.Err
}
