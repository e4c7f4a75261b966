// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// LookupExecutable returns the path of the executable to use.
//
// If override is set, only the override is considered. Otherwise, the given
// names are looked up in the PATH in the given order and the first one found
// is returned. It returns [ErrExecutableNotFound] if nothing is found.
func LookupExecutable(override string, names ...string) (string, error) {
	if override != "" {
		names = []string{override}
	}

	for _, name := range names {
		path, err := exec.LookPath(name)
		if err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, strings.Join(names, ", "))
}

// Supervision defines how a process is stopped once the context of its
// [exec.Cmd] is done.
type Supervision struct {
	// NewProcessGroup runs the process in its own process group and sends
	// the termination signal to the whole group. Must not be used for
	// processes that need the controlling terminal.
	NewProcessGroup bool

	// TerminateTimeout is the time the process has to exit after SIGTERM
	// before it is killed.
	TerminateTimeout time.Duration
}

// Apply configures the given [exec.Cmd]. It must be called before the command
// is started and the command must have been created with
// [exec.CommandContext].
func (s Supervision) Apply(cmd *exec.Cmd) {
	if s.NewProcessGroup {
		if cmd.SysProcAttr == nil {
			cmd.SysProcAttr = &syscall.SysProcAttr{}
		}

		cmd.SysProcAttr.Setpgid = true
	}

	cmd.Cancel = func() error {
		pid := cmd.Process.Pid
		if s.NewProcessGroup {
			// Negative PID addresses the process group.
			pid = -pid
		}

		err := unix.Kill(pid, unix.SIGTERM)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}

		return err //nolint:wrapcheck
	}

	cmd.WaitDelay = s.TerminateTimeout
}

// ProcessName returns the name used for identifying the process of the given
// executable in errors and logs.
func ProcessName(executable string) string {
	return filepath.Base(executable)
}

// Start starts the given command. Errors are returned as [ProcessError].
func Start(cmd *exec.Cmd) error {
	err := cmd.Start()
	if err != nil {
		return &ProcessError{
			Name: ProcessName(cmd.Path),
			Err:  fmt.Errorf("%w: %w", ErrSpawn, err),
		}
	}

	return nil
}

// Wait waits for the given started command and translates its exit status.
//
// It returns nil if the process exited with exit code 0. Otherwise, it returns
// a [ProcessError] with the exit code set. If ctx is done, the process has
// been asked to terminate, so its context error is wrapped instead of
// [ErrNonZeroExit].
func Wait(ctx context.Context, cmd *exec.Cmd) error {
	err := cmd.Wait()
	if err == nil {
		return nil
	}

	procErr := &ProcessError{
		Name: ProcessName(cmd.Path),
		Err:  fmt.Errorf("wait: %w", err),
	}

	if cmd.ProcessState != nil {
		procErr.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return procErr
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		procErr.Err = fmt.Errorf("%w: %s", ctxErr, exitErr.ProcessState)
	} else {
		procErr.Err = fmt.Errorf("%w: %s", ErrNonZeroExit, exitErr.ProcessState)
	}

	return procErr
}
