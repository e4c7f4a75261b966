// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package logdemux

import "bytes"

// DebugFunction is the emulator's function name for frames carrying debug
// console output of the guest program.
const DebugFunction = "OutputDebugString"

// Action is the classification result of a single line.
type Action int

const (
	// Ignore means the line does not carry guest debug output.
	Ignore Action = iota
	// Emit starts a new piece of debug output.
	Emit
	// EmitContinuation continues the debug output of the preceding line. It
	// must be separated from it by a line break.
	EmitContinuation
)

// String implements [fmt.Stringer].
func (a Action) String() string {
	switch a {
	case Ignore:
		return "ignore"
	case Emit:
		return "emit"
	case EmitContinuation:
		return "emit-continuation"
	default:
		return "unknown"
	}
}

// Result is the outcome of [Demultiplexer.Consume].
//
// Text references the memory of the consumed line.
type Result struct {
	Action Action
	Text   []byte
}

// Demultiplexer classifies lines of the emulator's diagnostic stream.
//
// It is stateful and must be fed all lines of a single stream in order. It is
// not safe for concurrent use.
type Demultiplexer struct {
	parser    *Parser
	capturing bool
}

// New creates a new [Demultiplexer] using the given shared [Parser].
func New(parser *Parser) *Demultiplexer {
	return &Demultiplexer{parser: parser}
}

// Capturing returns true if the last frame seen was a debug output frame, so
// unframed lines are treated as continuation of the debug output.
func (d *Demultiplexer) Capturing() bool {
	return d.capturing
}

// Consume classifies the given raw line, including its line terminator if
// any.
func (d *Demultiplexer) Consume(line []byte) Result {
	frame, ok := d.parser.Parse(line)
	if ok {
		d.capturing = frame.Function == DebugFunction
		if !d.capturing {
			return Result{Action: Ignore}
		}

		return Result{Action: Emit, Text: frame.Content}
	}

	// Wrapped lines of multi-line debug strings are not tagged by the
	// emulator. They belong to the last debug frame until the next frame
	// arrives.
	if !d.capturing {
		return Result{Action: Ignore}
	}

	return Result{Action: EmitContinuation, Text: trimLineTerminator(line)}
}

func trimLineTerminator(line []byte) []byte {
	line, found := bytes.CutSuffix(line, []byte("\n"))
	if found {
		line, _ = bytes.CutSuffix(line, []byte("\r"))
	}

	return line
}
