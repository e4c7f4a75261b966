// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScript writes an executable shell script with the given name and body
// into dir and returns its path. It is intended for replacing external tools
// in tests.
func WriteScript(tb testing.TB, dir, name, body string) string {
	tb.Helper()

	path := filepath.Join(dir, name)

	//nolint:gosec
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	if err != nil {
		tb.Fatalf("failed to write script %s: %v", path, err)
	}

	return path
}
