// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/aibor/yuzurun/internal/logdemux"
	"github.com/aibor/yuzurun/internal/sys"
)

// DefaultExecutable is the name of the emulator frontend looked up in the
// PATH if no explicit path is configured.
const DefaultExecutable = "yuzu-cmd"

// DefaultTerminateTimeout is the time the emulator has to exit after it has
// been asked to terminate.
const DefaultTerminateTimeout = 5 * time.Second

// CommandSpec describes the emulator command.
type CommandSpec struct {
	// Executable is the path of the emulator frontend binary.
	Executable string

	// SettingsFile is the path of the settings file the emulator is started
	// with. See [Settings.WriteFile].
	SettingsFile string

	// Program is the path of the program to run. It must be in a format
	// the emulator can load.
	Program string

	// TerminateTimeout is the time the emulator has to exit after SIGTERM
	// before it is killed. [DefaultTerminateTimeout] is used if not set.
	TerminateTimeout time.Duration

	// Parser for the diagnostic log. Required.
	Parser *logdemux.Parser
}

// Command is a single emulator command that can be run.
type Command struct {
	executable       string
	settingsFile     string
	program          string
	terminateTimeout time.Duration
	parser           *logdemux.Parser
}

// NewCommand creates a new [Command] from the given [CommandSpec].
func NewCommand(spec CommandSpec) (*Command, error) {
	switch {
	case spec.Executable == "":
		return nil, &ArgumentError{"no executable given"}
	case spec.SettingsFile == "":
		return nil, &ArgumentError{"no settings file given"}
	case spec.Program == "":
		return nil, &ArgumentError{"no program given"}
	case spec.Parser == nil:
		return nil, &ArgumentError{"no log parser given"}
	}

	cmd := &Command{
		executable:       spec.Executable,
		settingsFile:     spec.SettingsFile,
		program:          spec.Program,
		terminateTimeout: spec.TerminateTimeout,
		parser:           spec.Parser,
	}

	if cmd.terminateTimeout <= 0 {
		cmd.terminateTimeout = DefaultTerminateTimeout
	}

	return cmd, nil
}

// Name returns the process name of the command.
func (c *Command) Name() string {
	return sys.ProcessName(c.executable)
}

// Args returns the arguments the emulator is started with.
func (c *Command) Args() []string {
	return []string{
		"-c", c.settingsFile,
		c.program,
	}
}

// String returns the command line as it would be run.
func (c *Command) String() string {
	return strings.Join(append([]string{c.executable}, c.Args()...), " ")
}

// Run runs the emulator with the given context.
//
// The emulator runs in its own process group. Once the context is done, the
// group is terminated. Its stdout is written to stderr. Its stderr is the
// diagnostic log, which is written unmodified into rawLog, if not nil. The
// debug output of the guest program is extracted from it and written into
// stdout.
//
// A non-zero exit of the emulator is returned as [sys.ProcessError].
func (c *Command) Run(ctx context.Context, stdout, stderr, rawLog io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.executable, c.Args()...)
	cmd.Stdout = stderr

	sys.Supervision{
		NewProcessGroup:  true,
		TerminateTimeout: c.terminateTimeout,
	}.Apply(cmd)

	diagnostics, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	err = sys.Start(cmd)
	if err != nil {
		return err //nolint:wrapcheck
	}

	copier := logdemux.Copier{Parser: c.parser, RawLog: rawLog}

	_, copyErr := copier.Copy(stdout, diagnostics)
	if copyErr != nil {
		copyErr = &sys.ProcessError{
			Name: c.Name(),
			Err:  fmt.Errorf("diagnostic log: %w", copyErr),
		}

		// Without a reader the emulator might block on a full pipe.
		cancel()
	}

	return errors.Join(copyErr, sys.Wait(ctx, cmd))
}
