// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/yuzurun/internal/config"
	"github.com/aibor/yuzurun/internal/nro"
	"github.com/aibor/yuzurun/internal/sys"
	"github.com/aibor/yuzurun/internal/yuzu"
	"github.com/aibor/yuzurun/internal/yuzurun"
	"github.com/spf13/pflag"
)

// runFlags are the flags of the run command. Flags that are set take
// precedence over the configuration.
type runFlags struct {
	yuzuCmdPath string
	gdbStubPort uint16
	logPath     string
	logFilter   string
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(
		&f.yuzuCmdPath,
		"yuzu-cmd-path",
		"",
		"yuzu-cmd executable to use (default: looked up in PATH)",
	)

	fs.Uint16Var(
		&f.gdbStubPort,
		"gdbstub-port",
		config.DefaultGDBStubPort,
		"port of the emulator's GDB stub, enables the stub for run",
	)

	fs.StringVar(
		&f.logPath,
		"log-path",
		"",
		"write the complete emulator log into this file",
	)

	fs.StringVar(
		&f.logFilter,
		"log-filter",
		yuzu.DefaultLogFilter,
		"emulator log filter, must enable Debug_Emulated:Debug for program output",
	)
}

func (f *runFlags) spec(program string, cfg config.Config, fs *pflag.FlagSet) (*yuzurun.Spec, error) {
	program, err := sys.RegularFile(program)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}

	spec := &yuzurun.Spec{
		Program: program,
		Yuzu: yuzurun.Yuzu{
			Executable:       cfg.Yuzu.YuzuCmdPath,
			LogFilter:        cfg.Yuzu.LogFilter,
			GDBStubPort:      cfg.Yuzu.GDBStubPort,
			LogPath:          f.logPath,
			TerminateTimeout: yuzu.DefaultTerminateTimeout,
		},
	}

	if fs.Changed("yuzu-cmd-path") {
		spec.Yuzu.Executable = f.yuzuCmdPath
	}

	if fs.Changed("gdbstub-port") {
		spec.Yuzu.GDBStub = true
		spec.Yuzu.GDBStubPort = f.gdbStubPort
	}

	if fs.Changed("log-filter") {
		spec.Yuzu.LogFilter = f.logFilter
	}

	return spec, nil
}

// debugFlags are the flags of the debug command.
type debugFlags struct {
	runFlags

	gdbPath           string
	symbols           string
	prettyPrintersDir string
	initCommands      []string
}

func (f *debugFlags) register(fs *pflag.FlagSet) {
	f.runFlags.register(fs)

	fs.StringVar(
		&f.gdbPath,
		"gdb-path",
		"",
		"gdb executable to use (default: gdb-multiarch or gdb from PATH)",
	)

	fs.StringVar(
		&f.symbols,
		"symbols",
		"",
		"file to read symbols from (default: the program, if it is an ELF file)",
	)

	fs.StringVar(
		&f.prettyPrintersDir,
		"pretty-printers-dir",
		"",
		"directory of the Rust gdb pretty printers",
	)

	fs.StringArrayVar(
		&f.initCommands,
		"ex",
		nil,
		"gdb command run after connecting, appended to the configured ones (repeatable)",
	)
}

func (f *debugFlags) spec(program string, cfg config.Config, fs *pflag.FlagSet) (*yuzurun.Spec, error) {
	spec, err := f.runFlags.spec(program, cfg, fs)
	if err != nil {
		return nil, err
	}

	// The stub is enabled by the debugger anyway.
	spec.Yuzu.GDBStub = false

	spec.Gdb = &yuzurun.Gdb{
		Executable:        cfg.Gdb.GDBLocation,
		PrettyPrintersDir: cfg.Gdb.RustPrettyPrintersDir,
		InitCommands:      append(append([]string{}, cfg.Gdb.GDBInitCommands...), f.initCommands...),
	}

	if fs.Changed("gdb-path") {
		spec.Gdb.Executable = f.gdbPath
	}

	if fs.Changed("pretty-printers-dir") {
		spec.Gdb.PrettyPrintersDir = f.prettyPrintersDir
	}

	if fs.Changed("symbols") {
		spec.Gdb.SymbolFile, err = sys.RegularFile(f.symbols)
		if err != nil {
			return nil, fmt.Errorf("symbols: %w", err)
		}
	} else if format, err := nro.DetectFormat(spec.Program); err == nil && format == nro.FormatELF {
		spec.Gdb.SymbolFile = spec.Program
	}

	return spec, nil
}
