// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzurun

import (
	"fmt"
	"io"
	"os"
)

// LogSink is the optional destination of the complete emulator log.
//
// The zero value is a sink that discards everything.
type LogSink struct {
	file *os.File
}

// OpenLogSink creates the file at the given path, truncating it if it
// exists. If path is empty, a sink without file is returned.
func OpenLogSink(path string) (*LogSink, error) {
	if path == "" {
		return &LogSink{}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &LogSink{file: file}, nil
}

// Enabled returns true if the sink has a file.
func (s *LogSink) Enabled() bool {
	return s.file != nil
}

// Writer returns the writer of the sink, or nil if the sink has no file.
func (s *LogSink) Writer() io.Writer {
	if s.file == nil {
		return nil
	}

	return s.file
}

// Close closes the file of the sink, if any.
func (s *LogSink) Close() error {
	if s.file == nil {
		return nil
	}

	return s.file.Close() //nolint:wrapcheck
}
