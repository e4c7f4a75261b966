// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Yuzurun runs programs in the yuzu emulator and prints their debug output.
// With the debug command, gdb is attached to the emulator's GDB stub.
package main

import (
	"context"
	"os"

	"github.com/aibor/yuzurun/internal/cmd"
	"pkt.systems/psi"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	return cmd.Run(ctx, os.Args[1:], cmd.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}
