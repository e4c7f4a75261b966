// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package runner runs tasks concurrently and resolves their result from the
// first failing task.
//
// Each [Task] runs in its own goroutine and reports exactly one [Outcome].
// The run resolves as soon as the first failure is observed or all tasks
// succeeded. Once resolved, the remaining tasks are asked to stop by
// cancelling their context, and [Run] waits for them to return. Their
// outcomes are discarded.
package runner
