// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package nro prepares programs for being loaded by the emulator.
//
// The emulator loads homebrew programs in the NRO format. Files already in
// that format are used as they are. AArch64 ELF executables are converted
// by an external tool.
package nro
