// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzurun

import (
	"context"
	"fmt"
	"os"

	"github.com/aibor/yuzurun/internal/gdb"
	"github.com/aibor/yuzurun/internal/logdemux"
	"github.com/aibor/yuzurun/internal/nro"
	"github.com/aibor/yuzurun/internal/runner"
	"github.com/aibor/yuzurun/internal/sys"
	"github.com/aibor/yuzurun/internal/yuzu"
	"pkt.systems/pslog"
)

// Task names used in errors and logs.
const (
	EmulatorTask = "emulator"
	DebuggerTask = "debugger"
)

// Run runs with the given [Spec].
//
// All transient files are created in a temporary directory that is removed
// once the run is done. It returns no error if the emulator and, if
// requested, the debugger exited successfully. Otherwise, the first observed
// failure is returned and the other process is terminated.
func Run(ctx context.Context, spec *Spec, rio IO) error {
	dir, err := os.MkdirTemp("", "yuzurun-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer removeTempDir(ctx, dir)

	program, err := nro.Prepare(ctx, spec.converter(), spec.Program, dir)
	if err != nil {
		return fmt.Errorf("prepare program: %w", err)
	}

	settings := spec.settings()

	settingsFile, err := settings.WriteFile(dir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	sink, err := OpenLogSink(spec.Yuzu.LogPath)
	if err != nil {
		return err
	}
	defer closeLogSink(ctx, sink)

	if settings.Debug {
		err = checkPort(ctx, settings.GDBStubPort)
		if err != nil {
			return err
		}
	}

	tasks := []runner.Task{
		emulatorTask(spec, settingsFile, program, rio, sink, logdemux.NewParser()),
	}

	if spec.Gdb != nil {
		tasks = append(tasks, debuggerTask(spec, rio))
	}

	err = runner.Run(ctx, tasks...)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

func emulatorTask(
	spec *Spec,
	settingsFile, program string,
	rio IO,
	sink *LogSink,
	parser *logdemux.Parser,
) runner.Task {
	return runner.Task{
		Name: EmulatorTask,
		Run: func(ctx context.Context) error {
			executable, err := sys.LookupExecutable(spec.Yuzu.Executable, yuzu.DefaultExecutable)
			if err != nil {
				return err //nolint:wrapcheck
			}

			cmd, err := yuzu.NewCommand(yuzu.CommandSpec{
				Executable:       executable,
				SettingsFile:     settingsFile,
				Program:          program,
				TerminateTimeout: spec.Yuzu.TerminateTimeout,
				Parser:           parser,
			})
			if err != nil {
				return fmt.Errorf("new emulator command: %w", err)
			}

			pslog.Ctx(ctx).Debug("start emulator", "cmd", cmd.String())

			return cmd.Run(ctx, rio.Stdout, rio.Stderr, sink.Writer()) //nolint:wrapcheck
		},
	}
}

func debuggerTask(spec *Spec, rio IO) runner.Task {
	return runner.Task{
		Name: DebuggerTask,
		Run: func(ctx context.Context) error {
			executable, err := sys.LookupExecutable(spec.Gdb.Executable, gdb.DefaultExecutables...)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return gdb.Run(ctx, spec.gdbSpec(executable), rio.Stdin, rio.Stdout, rio.Stderr) //nolint:wrapcheck
		},
	}
}

func checkPort(ctx context.Context, port uint16) error {
	owner, found, err := sys.FindPortOwner(ctx, port)
	if err != nil {
		pslog.Ctx(ctx).Warn("gdb stub port check failed", "port", port, "err", err)

		return nil
	}

	if found {
		return fmt.Errorf("%w: %d used by %s", ErrPortInUse, port, owner)
	}

	return nil
}

func removeTempDir(ctx context.Context, dir string) {
	pslog.Ctx(ctx).Debug("remove temp dir", "path", dir)

	err := os.RemoveAll(dir)
	if err != nil {
		pslog.Ctx(ctx).Error("failed to remove temp dir", "path", dir, "err", err)
	}
}

func closeLogSink(ctx context.Context, sink *LogSink) {
	err := sink.Close()
	if err != nil {
		pslog.Ctx(ctx).Error("failed to close log file", "err", err)
	}
}
