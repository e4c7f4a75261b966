// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"context"
)

// Task is a named unit of work run by [Run].
type Task struct {
	// Name identifies the task in errors and logs.
	Name string

	// Run runs the task until it is done or the context is cancelled.
	Run func(ctx context.Context) error
}

// Outcome is the result of a single [Task].
type Outcome struct {
	Task string
	Err  error
}

// Failed returns true if the task failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// TaskError wraps the error of a failed [Task].
type TaskError struct {
	Task string
	Err  error
}

// Error implements the [error] interface.
func (e *TaskError) Error() string {
	return e.Task + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*TaskError) Is(other error) bool {
	_, ok := other.(*TaskError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *TaskError) Unwrap() error {
	return e.Err
}
