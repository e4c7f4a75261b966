// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"os"

	"golang.org/x/term"
	"pkt.systems/pslog"
)

func newLogger(writer io.Writer, verbose bool) pslog.Logger {
	level := pslog.InfoLevel
	if verbose {
		level = pslog.DebugLevel
	}

	return pslog.NewWithOptions(writer, pslog.Options{
		Mode:     pslog.ModeConsole,
		NoColor:  !isTerminal(writer),
		MinLevel: level,
	})
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec
}
