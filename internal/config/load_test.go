// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/yuzurun/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("default path", func(t *testing.T) {
		configHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", configHome)

		writeConfig(t, filepath.Join(configHome, "yuzurun", "config.yaml"),
			"yuzu:\n  gdbstub_port: 1234\n")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, uint16(1234), cfg.Yuzu.GDBStubPort)
		assert.Equal(t, "*:Debug", cfg.Yuzu.LogFilter)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := writeConfig(t, filepath.Join(t.TempDir(), "yuzurun.yaml"), `
yuzu:
  yuzu_cmd_path: /opt/yuzu/yuzu-cmd
  log_filter: "*:Info Debug_Emulated:Debug"
gdb:
  gdb_location: /usr/bin/gdb
  gdbinit_commands:
    - break main
    - continue
  rust_pretty_printers_dir: /opt/rust/etc
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		expected := config.Config{
			Yuzu: config.Yuzu{
				YuzuCmdPath: "/opt/yuzu/yuzu-cmd",
				GDBStubPort: config.DefaultGDBStubPort,
				LogFilter:   "*:Info Debug_Emulated:Debug",
			},
			Gdb: config.Gdb{
				GDBLocation:           "/usr/bin/gdb",
				GDBInitCommands:       []string{"break main", "continue"},
				RustPrettyPrintersDir: "/opt/rust/etc",
			},
		}
		assert.Equal(t, expected, cfg)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, config.ErrLoad)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := writeConfig(t, filepath.Join(t.TempDir(), "broken.yaml"), "yuzu: [\n")

		_, err := config.Load(path)
		require.ErrorIs(t, err, config.ErrLoad)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("YUZURUN_YUZU_LOG_FILTER", "Debug_Emulated:Debug")
		t.Setenv("YUZURUN_YUZU_GDBSTUB_PORT", "7000")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "Debug_Emulated:Debug", cfg.Yuzu.LogFilter)
		assert.Equal(t, uint16(7000), cfg.Yuzu.GDBStubPort)
	})
}

func TestConfig_WriteYAML(t *testing.T) {
	cfg := config.Default()

	var buf bytes.Buffer

	require.NoError(t, cfg.WriteYAML(&buf))

	expected := `yuzu:
  yuzu_cmd_path: ""
  gdbstub_port: 6543
  log_filter: '*:Debug'
gdb:
  gdb_location: ""
  gdbinit_commands: []
  rust_pretty_printers_dir: ""
`
	assert.Equal(t, expected, buf.String())
}
