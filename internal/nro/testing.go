// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package nro

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTestELF writes a minimal ELF file header for the given machine.
func WriteTestELF(tb testing.TB, dir, name string, machine elf.Machine) string {
	tb.Helper()

	header := elf.Header64{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(machine),
		Version:   uint32(elf.EV_CURRENT),
		Ehsize:    64,
		Phentsize: 56,
		Shentsize: 64,
	}
	copy(header.Ident[:], elf.ELFMAG)
	header.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS64)
	header.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	header.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var buf bytes.Buffer

	require.NoError(tb, binary.Write(&buf, binary.LittleEndian, header))

	return writeTestFile(tb, dir, name, buf.Bytes())
}

// WriteTestNRO writes a minimal NRO file header.
func WriteTestNRO(tb testing.TB, dir, name string) string {
	tb.Helper()

	content := make([]byte, 0x80)
	copy(content[magicOffset:], magic)

	return writeTestFile(tb, dir, name, content)
}

func writeTestFile(tb testing.TB, dir, name string, content []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, content, 0o600))

	return path
}
