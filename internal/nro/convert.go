// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package nro

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aibor/yuzurun/internal/sys"
	"pkt.systems/pslog"
)

// DefaultConverterExecutable is the name of the conversion tool looked up in
// the PATH if no explicit path is configured.
const DefaultConverterExecutable = "elf2nro"

// ConvertedFileName is the name of the converted program in the destination
// directory.
const ConvertedFileName = "converted.nro"

// Converter converts an ELF file into an NRO file.
type Converter interface {
	// Convert converts the file src into a new file in dstDir and returns
	// the path of the new file.
	Convert(ctx context.Context, src, dstDir string) (string, error)
}

// ToolConverter is a [Converter] that runs an external tool with the input
// and the output path as arguments.
type ToolConverter struct {
	// Executable of the tool. [DefaultConverterExecutable] is looked up in
	// the PATH, if not set.
	Executable string
}

var _ Converter = (*ToolConverter)(nil)

// Convert implements [Converter].
func (c *ToolConverter) Convert(ctx context.Context, src, dstDir string) (string, error) {
	executable, err := sys.LookupExecutable(c.Executable, DefaultConverterExecutable)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	dst := filepath.Join(dstDir, ConvertedFileName)

	var output bytes.Buffer

	cmd := exec.CommandContext(ctx, executable, src, dst)
	cmd.Stdout = &output
	cmd.Stderr = &output

	err = sys.Start(cmd)
	if err == nil {
		err = sys.Wait(ctx, cmd)
	}

	if err != nil {
		if msg := strings.TrimSpace(output.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}

		return "", err //nolint:wrapcheck
	}

	return dst, nil
}

// Prepare returns the path of the program file the emulator can load.
//
// NRO files are returned as they are. AArch64 ELF files are converted into
// dstDir using the given [Converter]. Errors are wrapped in [ErrConversion].
func Prepare(ctx context.Context, converter Converter, program, dstDir string) (string, error) {
	format, err := DetectFormat(program)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}

	pslog.Ctx(ctx).Debug("detected program format", "path", program, "format", format.String())

	switch format {
	case FormatNRO:
		return program, nil
	case FormatELF:
		path, err := converter.Convert(ctx, program, dstDir)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrConversion, err)
		}

		return path, nil
	default:
		return "", fmt.Errorf("%w: %w: %s", ErrConversion, ErrUnsupportedFormat, program)
	}
}
