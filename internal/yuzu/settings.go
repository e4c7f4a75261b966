// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzu

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SettingsFileName is the name of the settings file written by
// [Settings.WriteFile].
const SettingsFileName = "yuzu.ini"

// DefaultLogFilter enables debug level for all log classes. At least debug
// level for the "Debug_Emulated" class is required to get the guest's debug
// console output.
const DefaultLogFilter = "*:Debug"

// Settings are the emulator settings relevant for running a program.
type Settings struct {
	// LogFilter as understood by yuzu, e.g. "*:Info Debug_Emulated:Debug".
	LogFilter string

	// Debug enables the GDB stub of the emulator.
	Debug bool

	// GDBStubPort is the TCP port the GDB stub listens on. Only used if
	// Debug is set.
	GDBStubPort uint16
}

type section struct {
	name string
	keys [][2]string
}

func (s *Settings) sections() []section {
	sections := []section{
		{
			name: "Miscellaneous",
			keys: [][2]string{
				{"log_filter", s.LogFilter},
			},
		},
	}

	if s.Debug {
		sections = append(sections, section{
			name: "Debugging",
			keys: [][2]string{
				{"gdbstub_port", strconv.FormatUint(uint64(s.GDBStubPort), 10)},
				{"use_gdbstub", strconv.FormatBool(true)},
			},
		})
	}

	return sections
}

// MarshalText renders the settings in the ini format read by yuzu.
//
// The output is deterministic: equal settings result in equal output.
func (s *Settings) MarshalText() ([]byte, error) {
	var builder strings.Builder

	for idx, sec := range s.sections() {
		if idx > 0 {
			builder.WriteString("\n")
		}

		fmt.Fprintf(&builder, "[%s]\n", sec.name)

		for _, kv := range sec.keys {
			if strings.ContainsAny(kv[1], "\r\n") {
				return nil, fmt.Errorf("%w: %s: line break in value", ErrInvalidSettings, kv[0])
			}

			fmt.Fprintf(&builder, "%s=%s\n", kv[0], kv[1])
		}
	}

	return []byte(builder.String()), nil
}

// WriteFile writes the settings into a file named [SettingsFileName] in the
// given directory and returns its path. Errors are wrapped in
// [ErrSettingsWrite].
func (s *Settings) WriteFile(dir string) (string, error) {
	content, err := s.MarshalText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSettingsWrite, err)
	}

	path := filepath.Join(dir, SettingsFileName)

	err = os.WriteFile(path, content, 0o600)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSettingsWrite, err)
	}

	return path, nil
}
