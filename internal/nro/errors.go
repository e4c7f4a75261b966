// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package nro

import "errors"

var (
	// ErrConversion is returned if a program could not be converted.
	ErrConversion = errors.New("conversion failed")

	// ErrUnsupportedFormat is returned if the program is neither an NRO
	// file nor an AArch64 ELF file.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
