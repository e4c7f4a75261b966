// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logdemux separates the debug console output of a program running
// in the yuzu emulator from the emulator's own diagnostic log.
//
// The emulator writes structured log frames on its diagnostic stream. Debug
// strings of the guest program are logged as frames of the function
// "OutputDebugString". If such a string spans multiple lines, only the first
// line is framed. All following lines are written as is until the next frame
// starts. The [Demultiplexer] tracks this state line by line and the [Copier]
// drives it over a whole stream.
package logdemux
