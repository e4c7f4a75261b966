// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzu_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/yuzurun/internal/yuzu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_MarshalText(t *testing.T) {
	tests := []struct {
		name        string
		settings    yuzu.Settings
		expected    string
		expectedErr error
	}{
		{
			name: "run",
			settings: yuzu.Settings{
				LogFilter:   "*:Debug",
				GDBStubPort: 6543,
			},
			expected: "[Miscellaneous]\nlog_filter=*:Debug\n",
		},
		{
			name: "debug",
			settings: yuzu.Settings{
				LogFilter:   "*:Info Debug_Emulated:Debug",
				Debug:       true,
				GDBStubPort: 6543,
			},
			expected: "[Miscellaneous]\nlog_filter=*:Info Debug_Emulated:Debug\n" +
				"\n[Debugging]\ngdbstub_port=6543\nuse_gdbstub=true\n",
		},
		{
			name: "line break in value",
			settings: yuzu.Settings{
				LogFilter: "*:Debug\n[Debugging]",
			},
			expectedErr: yuzu.ErrInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.settings.MarshalText()
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, string(actual))
		})
	}
}

func TestSettings_WriteFile(t *testing.T) {
	settings := yuzu.Settings{
		LogFilter:   yuzu.DefaultLogFilter,
		Debug:       true,
		GDBStubPort: 1234,
	}

	t.Run("idempotent", func(t *testing.T) {
		dir := t.TempDir()

		path, err := settings.WriteFile(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, yuzu.SettingsFileName), path)

		first, err := os.ReadFile(path)
		require.NoError(t, err)

		_, err = settings.WriteFile(dir)
		require.NoError(t, err)

		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Contains(t, string(first), "gdbstub_port=1234\n")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := settings.WriteFile(filepath.Join(t.TempDir(), "missing"))
		require.ErrorIs(t, err, yuzu.ErrSettingsWrite)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid", func(t *testing.T) {
		invalid := yuzu.Settings{LogFilter: "\r"}

		_, err := invalid.WriteFile(t.TempDir())
		require.ErrorIs(t, err, yuzu.ErrSettingsWrite)
		require.ErrorIs(t, err, yuzu.ErrInvalidSettings)
	})
}
