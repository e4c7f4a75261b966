// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package yuzu provides utilities for running programs in the yuzu emulator
// using its command line frontend "yuzu-cmd".
//
// The emulator is configured with a minimal, generated settings file. Its
// diagnostic log is captured and the debug console output of the guest
// program is extracted from it by a [logdemux.Copier].
package yuzu
