// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package yuzurun

import "errors"

// ErrPortInUse is returned if the GDB stub port is already used by another
// process.
var ErrPortInUse = errors.New("gdb stub port in use")
