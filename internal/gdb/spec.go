// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gdb

import (
	"os"
	"strconv"
	"strings"
)

// DefaultExecutables are looked up in the PATH in order if no explicit
// debugger executable is configured.
var DefaultExecutables = []string{"gdb-multiarch", "gdb"}

const pythonPathVar = "PYTHONPATH"

// Spec describes the debugger invocation.
type Spec struct {
	// Executable is the path of the debugger binary.
	Executable string

	// PrettyPrintersDir is a directory with Rust pretty printer scripts. It
	// is added to the debugger's source search path, its auto-load safe
	// path and the PYTHONPATH. Optional.
	PrettyPrintersDir string

	// SymbolFile is the file the debugger reads symbols from. Optional.
	SymbolFile string

	// Port of the emulator's GDB stub on localhost.
	Port uint16

	// InitCommands are passed as "-ex" commands in order after the remote
	// target is set.
	InitCommands []string
}

// Args returns the debugger arguments.
func (s *Spec) Args() []string {
	var args []string

	if s.PrettyPrintersDir != "" {
		args = append(args,
			"-d", s.PrettyPrintersDir,
			"-iex", "add-auto-load-safe-path "+s.PrettyPrintersDir,
		)
	}

	if s.SymbolFile != "" {
		args = append(args, "-ex", "file "+s.SymbolFile)
	}

	args = append(args, "-ex", "target remote localhost:"+strconv.FormatUint(uint64(s.Port), 10))

	for _, cmd := range s.InitCommands {
		args = append(args, "-ex", cmd)
	}

	return args
}

// Environ returns the environment for the debugger based on the given base
// environment. If a pretty printers directory is set, it is appended to the
// PYTHONPATH.
func (s *Spec) Environ(base []string) []string {
	env := make([]string, 0, len(base)+1)
	found := false

	for _, kv := range base {
		name, value, _ := strings.Cut(kv, "=")
		if name == pythonPathVar && s.PrettyPrintersDir != "" {
			found = true

			if value != "" {
				value += string(os.PathListSeparator)
			}

			kv = name + "=" + value + s.PrettyPrintersDir
		}

		env = append(env, kv)
	}

	if !found && s.PrettyPrintersDir != "" {
		env = append(env, pythonPathVar+"="+s.PrettyPrintersDir)
	}

	return env
}
