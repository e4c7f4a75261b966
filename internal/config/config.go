// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aibor/yuzurun/internal/yuzu"
	"gopkg.in/yaml.v3"
)

// DefaultGDBStubPort is the port the emulator's GDB stub listens on by
// default.
const DefaultGDBStubPort uint16 = 6543

// Config is the complete yuzurun configuration.
type Config struct {
	Yuzu Yuzu `mapstructure:"yuzu" yaml:"yuzu"`
	Gdb  Gdb  `mapstructure:"gdb"  yaml:"gdb"`
}

// Yuzu configures the emulator.
type Yuzu struct {
	// YuzuCmdPath is an alternative yuzu-cmd executable. It is looked up in
	// the PATH if empty.
	YuzuCmdPath string `mapstructure:"yuzu_cmd_path" yaml:"yuzu_cmd_path"`

	// GDBStubPort is the port of the GDB stub.
	GDBStubPort uint16 `mapstructure:"gdbstub_port" yaml:"gdbstub_port"`

	// LogFilter is the log filter of the emulator. It must enable debug
	// level for the Debug_Emulated class to get the program output.
	LogFilter string `mapstructure:"log_filter" yaml:"log_filter"`
}

// Gdb configures the debugger.
type Gdb struct {
	// GDBLocation is an alternative gdb executable. It is looked up in the
	// PATH if empty.
	GDBLocation string `mapstructure:"gdb_location" yaml:"gdb_location"`

	// GDBInitCommands are run on debugger start.
	GDBInitCommands []string `mapstructure:"gdbinit_commands" yaml:"gdbinit_commands"`

	// RustPrettyPrintersDir is the location of the Rust pretty printers.
	RustPrettyPrintersDir string `mapstructure:"rust_pretty_printers_dir" yaml:"rust_pretty_printers_dir"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Yuzu: Yuzu{
			GDBStubPort: DefaultGDBStubPort,
			LogFilter:   yuzu.DefaultLogFilter,
		},
		Gdb: Gdb{
			GDBInitCommands: []string{},
		},
	}
}

// DefaultPath returns the path of the configuration file used if no path
// is given explicitly.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}

	return filepath.Join(dir, "yuzurun", "config.yaml"), nil
}

// WriteYAML writes the configuration as YAML into w.
func (c *Config) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(c)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return encoder.Close() //nolint:wrapcheck
}
