// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package logdemux

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Copier copies guest debug output from the emulator's diagnostic stream.
type Copier struct {
	// Parser used for all lines. Required.
	Parser *Parser

	// RawLog receives every line of the input unmodified. Optional.
	RawLog io.Writer
}

// Copy reads src line by line until EOF and writes the debug output of the
// guest into dst.
//
// The first line of each debug output is written without separator, each
// continuation line is preceded by a line break. So, the output is written as
// the guest sent it, without trailing line break. It returns the number of
// bytes read from src. Read errors are wrapped in [ErrStreamRead].
func (c *Copier) Copy(dst io.Writer, src io.Reader) (int64, error) {
	var (
		demux  = New(c.Parser)
		reader = bufio.NewReader(src)
		read   int64
	)

	for {
		line, readErr := reader.ReadBytes('\n')
		read += int64(len(line))

		if len(line) > 0 {
			err := c.process(dst, demux, line)
			if err != nil {
				return read, err
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return read, nil
			}

			return read, fmt.Errorf("%w: %w", ErrStreamRead, readErr)
		}
	}
}

func (c *Copier) process(dst io.Writer, demux *Demultiplexer, line []byte) error {
	if c.RawLog != nil {
		_, err := c.RawLog.Write(line)
		if err != nil {
			return &WriteError{Sink: "raw log", Err: err}
		}
	}

	result := demux.Consume(line)

	switch result.Action {
	case Emit:
	case EmitContinuation:
		_, err := dst.Write([]byte("\n"))
		if err != nil {
			return &WriteError{Sink: "output", Err: err}
		}
	default:
		return nil
	}

	_, err := dst.Write(result.Text)
	if err != nil {
		return &WriteError{Sink: "output", Err: err}
	}

	return nil
}
