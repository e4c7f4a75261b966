// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"

	"github.com/aibor/yuzurun/internal/sys"
	"github.com/aibor/yuzurun/internal/yuzurun"
	"pkt.systems/pslog"
)

// IO provides input and output details for the command.
type IO = yuzurun.IO

func handleRunError(logger pslog.Logger, err error) int {
	exitCode := -1

	var procErr *sys.ProcessError
	if errors.As(err, &procErr) && procErr.ExitCode > 0 {
		exitCode = procErr.ExitCode
	}

	if errors.Is(err, yuzurun.ErrPortInUse) {
		logger.Warn("stop the other process or choose another port with --gdbstub-port")
	}

	if errors.Is(err, sys.ErrExecutableNotFound) {
		logger.Warn("install the executable or configure its path")
	}

	logger.With("err", err).Error("yuzurun failed")

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	s := &state{io: cfg}

	root := newRootCmd(s)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		logger := s.logger
		if logger == nil {
			logger = newLogger(cfg.Stderr, false)
		}

		return handleRunError(logger, err)
	}

	return 0
}
