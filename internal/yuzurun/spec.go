// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzurun

import (
	"io"
	"time"

	"github.com/aibor/yuzurun/internal/gdb"
	"github.com/aibor/yuzurun/internal/nro"
	"github.com/aibor/yuzurun/internal/yuzu"
)

// IO provides input and output details for a run.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Spec describes a single [Run].
type Spec struct {
	// Program to run. Either an NRO file or an AArch64 ELF file.
	Program string

	Yuzu Yuzu

	// Gdb enables the debugger, if not nil.
	Gdb *Gdb

	// Converter used for converting ELF programs. A [nro.ToolConverter]
	// looking up its tool in the PATH is used, if nil.
	Converter nro.Converter
}

// Yuzu are the emulator parameters of a [Spec].
type Yuzu struct {
	// Executable overrides the emulator binary. [yuzu.DefaultExecutable] is
	// looked up in the PATH, if empty.
	Executable string

	LogFilter string

	// GDBStub enables the GDB stub without starting a debugger. The stub
	// is always enabled if a debugger is started.
	GDBStub bool

	GDBStubPort uint16

	// LogPath is the file the complete emulator log is written to.
	// Optional.
	LogPath string

	TerminateTimeout time.Duration
}

// Gdb are the debugger parameters of a [Spec].
type Gdb struct {
	// Executable overrides the debugger binary. [gdb.DefaultExecutables]
	// are looked up in the PATH, if empty.
	Executable string

	PrettyPrintersDir string
	SymbolFile        string
	InitCommands      []string
}

func (s *Spec) debug() bool {
	return s.Gdb != nil || s.Yuzu.GDBStub
}

func (s *Spec) settings() yuzu.Settings {
	return yuzu.Settings{
		LogFilter:   s.Yuzu.LogFilter,
		Debug:       s.debug(),
		GDBStubPort: s.Yuzu.GDBStubPort,
	}
}

func (s *Spec) converter() nro.Converter {
	if s.Converter != nil {
		return s.Converter
	}

	return &nro.ToolConverter{}
}

func (s *Spec) gdbSpec(executable string) gdb.Spec {
	return gdb.Spec{
		Executable:        executable,
		PrettyPrintersDir: s.Gdb.PrettyPrintersDir,
		SymbolFile:        s.Gdb.SymbolFile,
		Port:              s.Yuzu.GDBStubPort,
		InitCommands:      s.Gdb.InitCommands,
	}
}
