// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration

package yuzurun_test

import (
	"context"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aibor/yuzurun/internal/yuzurun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	yuzuCmdPath    = ""
	programPath    = ""
	expectedOutput = ""
	runTimeout     = 60 * time.Second
)

func init() {
	flag.StringVar(&yuzuCmdPath, "yuzu.path", yuzuCmdPath,
		"yuzu-cmd executable (default: looked up in PATH)")
	flag.StringVar(&programPath, "program.path", programPath,
		"homebrew program that prints to the debug console and exits")
	flag.StringVar(&expectedOutput, "program.output", expectedOutput,
		"debug output the program is expected to print")
	flag.DurationVar(&runTimeout, "run.timeout", runTimeout,
		"timeout for a single run")
}

func TestIntegrationRun(t *testing.T) {
	if programPath == "" {
		t.Skip("no program given, set -program.path")
	}

	ctx, cancel := context.WithTimeout(t.Context(), runTimeout)
	defer cancel()

	spec := &yuzurun.Spec{
		Program: programPath,
		Yuzu: yuzurun.Yuzu{
			Executable: yuzuCmdPath,
			LogFilter:  "*:Info Debug_Emulated:Debug",
		},
	}

	var stdout strings.Builder

	err := yuzurun.Run(ctx, spec, yuzurun.IO{
		Stdin:  os.Stdin,
		Stdout: &stdout,
		Stderr: os.Stderr,
	})
	require.NoError(t, err)

	if expectedOutput != "" {
		assert.Equal(t, expectedOutput, stdout.String())
	}
}
