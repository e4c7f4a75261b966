// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"pkt.systems/pslog"
)

// ErrNoTasks is returned if [Run] is called without tasks.
var ErrNoTasks = errors.New("no tasks")

// Run runs the given tasks concurrently.
//
// It returns the error of the first task that fails as [TaskError], or nil
// if all tasks succeeded. Once the first failure is observed, the context of
// all other tasks is cancelled. Run returns only after all tasks returned.
func Run(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return ErrNoTasks
	}

	logger := pslog.Ctx(ctx)

	// The group context is cancelled by the first task returning an error
	// and Wait returns that error.
	group, ctx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		group.Go(func() error {
			outcome := Outcome{
				Task: task.Name,
				Err:  task.Run(ctx),
			}

			if !outcome.Failed() {
				logger.Debug("task succeeded", "task", outcome.Task)

				return nil
			}

			logger.Debug("task failed", "task", outcome.Task, "err", outcome.Err)

			return &TaskError{Task: outcome.Task, Err: outcome.Err}
		})
	}

	return group.Wait() //nolint:wrapcheck
}
