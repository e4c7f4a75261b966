// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gdb

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/aibor/yuzurun/internal/sys"
	"golang.org/x/term"
	"pkt.systems/pslog"
)

const terminateTimeout = 2 * time.Second

// Run runs the debugger described by spec until it exits or the context is
// done.
//
// The debugger stays in the foreground process group, so it owns the
// terminal if stdin is one. A non-zero exit is returned as
// [sys.ProcessError].
func Run(ctx context.Context, spec Spec, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := pslog.Ctx(ctx)

	if spec.PrettyPrintersDir == "" {
		logger.Info("no pretty printers directory configured")
	}

	if spec.SymbolFile == "" {
		logger.Info("no symbol file configured")
	}

	if !IsTerminal(stdin) {
		logger.Warn("debugger input is not a terminal")
	}

	cmd := exec.CommandContext(ctx, spec.Executable, spec.Args()...)
	cmd.Env = spec.Environ(os.Environ())
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	sys.Supervision{TerminateTimeout: terminateTimeout}.Apply(cmd)

	logger.Debug("start debugger", "cmd", cmd.String())

	err := sys.Start(cmd)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return sys.Wait(ctx, cmd) //nolint:wrapcheck
}

// IsTerminal returns true if the given reader is a terminal.
func IsTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec
}
