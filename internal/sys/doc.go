// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sys provides host system helpers for supervising external
// processes: executable lookup, process group termination, exit status
// translation and checks for occupied ports.
package sys
