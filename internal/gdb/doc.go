// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gdb runs the GNU debugger attached to the GDB stub of the emulator.
package gdb
