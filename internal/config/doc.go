// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the yuzurun configuration.
//
// Values are merged from defaults, an optional YAML file and environment
// variables prefixed with "YUZURUN_", e.g. YUZURUN_YUZU_LOG_FILTER.
package config
