// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package nro

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"
)

// Format is the file format of a program.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatNRO
	FormatELF
)

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case FormatNRO:
		return "nro"
	case FormatELF:
		return "elf"
	default:
		return "unknown"
	}
}

const (
	magicOffset = 0x10
	magic       = "NRO0"
)

// IsNRO returns true if the given reader starts with an NRO header.
func IsNRO(r io.ReaderAt) (bool, error) {
	buf := make([]byte, len(magic))

	_, err := r.ReadAt(buf, magicOffset)
	if errors.Is(err, io.EOF) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("read header: %w", err)
	}

	return bytes.Equal(buf, []byte(magic)), nil
}

// IsAArch64ELF returns true if the given reader is an AArch64 ELF file.
func IsAArch64ELF(r io.ReaderAt) bool {
	file, err := elf.NewFile(r)
	if err != nil {
		return false
	}

	return file.Machine == elf.EM_AARCH64
}

// DetectFormat returns the [Format] of the file at the given path.
func DetectFormat(path string) (Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	isNRO, err := IsNRO(file)
	if err != nil {
		return FormatUnknown, err
	}

	switch {
	case isNRO:
		return FormatNRO, nil
	case IsAArch64ELF(file):
		return FormatELF, nil
	default:
		return FormatUnknown, nil
	}
}
