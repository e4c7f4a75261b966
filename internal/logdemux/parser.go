// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package logdemux

import (
	"regexp"
	"strconv"
)

// framePattern matches a single structured log line as written by the
// emulator. Color escape sequences may precede the frame. The line terminator
// is optional so a frame at the very end of a stream is still recognized.
const framePattern = `^(?:\x1b\[[0-9;]+[A-Za-z])*` +
	`\[ *(?P<time>[0-9.]+)\] ` +
	`(?P<channel>[A-Za-z0-9_.]+) ` +
	`<(?P<level>[A-Za-z]+)> ` +
	`(?P<file>[^:\n]+):(?P<function>[^:\n]+):(?P<line>[0-9]+): ` +
	`(?P<content>[^\n]*?)\r?\n?$`

// Frame is a parsed structured log line.
//
// Content references the memory of the parsed line. It is only valid as long
// as the line is not modified.
type Frame struct {
	Time     float64
	Channel  string
	Level    string
	File     string
	Function string
	Line     uint64
	Content  []byte
}

// Parser recognizes structured log frames.
//
// Create it once with [NewParser] and share it. It is safe for concurrent
// use.
type Parser struct {
	re *regexp.Regexp

	time, channel, level, file, function, line, content int
}

// NewParser compiles the log frame grammar.
func NewParser() *Parser {
	re := regexp.MustCompile(framePattern)

	return &Parser{
		re:       re,
		time:     re.SubexpIndex("time"),
		channel:  re.SubexpIndex("channel"),
		level:    re.SubexpIndex("level"),
		file:     re.SubexpIndex("file"),
		function: re.SubexpIndex("function"),
		line:     re.SubexpIndex("line"),
		content:  re.SubexpIndex("content"),
	}
}

// Parse parses the given raw line. It returns false if the line is not a
// well-formed frame.
func (p *Parser) Parse(line []byte) (Frame, bool) {
	m := p.re.FindSubmatch(line)
	if m == nil {
		return Frame{}, false
	}

	timestamp, err := strconv.ParseFloat(string(m[p.time]), 64)
	if err != nil {
		return Frame{}, false
	}

	lineNumber, err := strconv.ParseUint(string(m[p.line]), 10, 64)
	if err != nil {
		return Frame{}, false
	}

	return Frame{
		Time:     timestamp,
		Channel:  string(m[p.channel]),
		Level:    string(m[p.level]),
		File:     string(m[p.file]),
		Function: string(m[p.function]),
		Line:     lineNumber,
		Content:  m[p.content],
	}, true
}
