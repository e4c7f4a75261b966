// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzu

import "errors"

var (
	// ErrSettingsWrite is returned if the settings file could not be
	// written.
	ErrSettingsWrite = errors.New("write settings")

	// ErrInvalidSettings is returned if settings can not be rendered.
	ErrInvalidSettings = errors.New("invalid settings")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}
