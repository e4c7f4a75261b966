// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
	"path/filepath"
)

// AbsolutePath returns the absolute path as resolved by [filepath.Abs].
//
// It returns [ErrEmptyPath] if the given path is empty.
func AbsolutePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}

// RegularFile returns the absolute path of the given path if it exists and is
// a regular file.
func RegularFile(path string) (string, error) {
	path, err := AbsolutePath(path)
	if err != nil {
		return "", err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}

	if !stat.Mode().IsRegular() {
		return "", fmt.Errorf("%s: not a regular file", path)
	}

	return path, nil
}
