// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package logdemux_test

import (
	"testing"

	"github.com/aibor/yuzurun/internal/logdemux"
	"github.com/stretchr/testify/assert"
)

const (
	debugFrame = "[0.1] A.B <Debug> f:OutputDebugString:10: Hello\n"
	otherFrame = "[0.2] A.B <Debug> f:Other:11: ignored\n"
)

func TestDemultiplexer_Consume(t *testing.T) {
	type step struct {
		line              string
		expectedAction    logdemux.Action
		expectedText      string
		expectedCapturing bool
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "debug frame emits content",
			steps: []step{
				{debugFrame, logdemux.Emit, "Hello", true},
			},
		},
		{
			name: "continuation while capturing",
			steps: []step{
				{debugFrame, logdemux.Emit, "Hello", true},
				{"World\n", logdemux.EmitContinuation, "World", true},
				{"\n", logdemux.EmitContinuation, "", true},
				{"again\r\n", logdemux.EmitContinuation, "again", true},
			},
		},
		{
			name: "other frame resets capturing",
			steps: []step{
				{debugFrame, logdemux.Emit, "Hello", true},
				{otherFrame, logdemux.Ignore, "", false},
				{"World\n", logdemux.Ignore, "", false},
			},
		},
		{
			name: "other frame without prior capture",
			steps: []step{
				{otherFrame, logdemux.Ignore, "", false},
			},
		},
		{
			name: "unframed line without capture",
			steps: []step{
				{"some noise\n", logdemux.Ignore, "", false},
				{"more noise", logdemux.Ignore, "", false},
			},
		},
		{
			name: "consecutive debug frames",
			steps: []step{
				{debugFrame, logdemux.Emit, "Hello", true},
				{debugFrame, logdemux.Emit, "Hello", true},
			},
		},
		{
			name: "unterminated continuation keeps last byte",
			steps: []step{
				{debugFrame, logdemux.Emit, "Hello", true},
				{"tail", logdemux.EmitContinuation, "tail", true},
			},
		},
		{
			name: "invalid bytes are passed through",
			steps: []step{
				{debugFrame, logdemux.Emit, "Hello", true},
				{"\xe2\x82\n", logdemux.EmitContinuation, "\xe2\x82", true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demux := logdemux.New(logdemux.NewParser())

			for idx, s := range tt.steps {
				result := demux.Consume([]byte(s.line))

				assert.Equal(t, s.expectedAction, result.Action,
					"action of step %d", idx)
				assert.Equal(t, s.expectedText, string(result.Text),
					"text of step %d", idx)
				assert.Equal(t, s.expectedCapturing, demux.Capturing(),
					"capturing after step %d", idx)
			}
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "ignore", logdemux.Ignore.String())
	assert.Equal(t, "emit", logdemux.Emit.String())
	assert.Equal(t, "emit-continuation", logdemux.EmitContinuation.String())
	assert.Equal(t, "unknown", logdemux.Action(42).String())
}
