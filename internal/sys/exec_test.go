// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/yuzurun/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExecutable(t *testing.T) {
	binDir := t.TempDir()
	second := sys.WriteScript(t, binDir, "second", "exit 0")

	t.Setenv("PATH", binDir)

	tests := []struct {
		name        string
		override    string
		names       []string
		expected    string
		expectedErr error
	}{
		{
			name:     "first found name",
			names:    []string{"first", "second"},
			expected: second,
		},
		{
			name:     "override path",
			override: second,
			names:    []string{"first"},
			expected: second,
		},
		{
			name:        "override not found",
			override:    filepath.Join(binDir, "missing"),
			names:       []string{"second"},
			expectedErr: sys.ErrExecutableNotFound,
		},
		{
			name:        "nothing found",
			names:       []string{"first", "third"},
			expectedErr: sys.ErrExecutableNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := sys.LookupExecutable(tt.override, tt.names...)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestStartWait(t *testing.T) {
	binDir := t.TempDir()

	tests := []struct {
		name             string
		script           string
		expectedErr      error
		expectedExitCode int
	}{
		{
			name:   "success",
			script: "exit 0",
		},
		{
			name:             "non-zero exit",
			script:           "exit 3",
			expectedErr:      sys.ErrNonZeroExit,
			expectedExitCode: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := sys.WriteScript(t, binDir, "script", tt.script)
			cmd := exec.Command(path)

			require.NoError(t, sys.Start(cmd))

			err := sys.Wait(t.Context(), cmd)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr == nil {
				return
			}

			var procErr *sys.ProcessError
			require.ErrorAs(t, err, &procErr)
			assert.Equal(t, "script", procErr.Name)
			assert.Equal(t, tt.expectedExitCode, procErr.ExitCode)
		})
	}
}

func TestStart_Error(t *testing.T) {
	cmd := exec.Command(filepath.Join(t.TempDir(), "missing"))

	err := sys.Start(cmd)
	require.ErrorIs(t, err, sys.ErrSpawn)
	require.ErrorIs(t, err, &sys.ProcessError{})
}

func TestSupervision(t *testing.T) {
	tests := []struct {
		name        string
		supervision sys.Supervision
		stop        func(cancel context.CancelFunc)
		expectedErr error
	}{
		{
			name: "process group cancelled",
			supervision: sys.Supervision{
				NewProcessGroup:  true,
				TerminateTimeout: time.Second,
			},
			stop:        func(cancel context.CancelFunc) { cancel() },
			expectedErr: context.Canceled,
		},
		{
			name: "single process deadline",
			supervision: sys.Supervision{
				TerminateTimeout: time.Second,
			},
			expectedErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := sys.WriteScript(t, t.TempDir(), "sleeper", "sleep 30")

			ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
			defer cancel()

			cmd := exec.CommandContext(ctx, path)
			tt.supervision.Apply(cmd)

			require.NoError(t, sys.Start(cmd))

			start := time.Now()

			if tt.stop != nil {
				tt.stop(cancel)
			}

			err := sys.Wait(ctx, cmd)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.NotErrorIs(t, err, sys.ErrNonZeroExit)

			var procErr *sys.ProcessError
			require.ErrorAs(t, err, &procErr)
			assert.Equal(t, -1, procErr.ExitCode, "terminated by signal")
			assert.Less(t, time.Since(start), 10*time.Second)
		})
	}
}

func TestProcessError_Error(t *testing.T) {
	err := &sys.ProcessError{
		Name:     "yuzu-cmd",
		ExitCode: 2,
		Err:      sys.ErrNonZeroExit,
	}

	assert.Equal(t, "yuzu-cmd: non-zero exit (exit code 2)", err.Error())
}
