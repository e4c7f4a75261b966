// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package yuzurun provides the main utilities to run a program in the yuzu
// emulator and optionally debug it with gdb at the same time.
//
// The program is converted into the NRO format if necessary. A minimal
// emulator settings file is generated for each run. The emulator and the
// debugger run concurrently. The run fails as soon as one of them fails.
// The debug output of the program is extracted from the emulator's
// diagnostic log and written to stdout.
package yuzurun
