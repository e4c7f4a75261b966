// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"pkt.systems/pslog"
)

// notifyContext returns a copy of ctx that is cancelled once a termination
// signal is received.
//
// SIGINT terminates as well, unless interactive is set. In that case, the
// debugger in the foreground process group handles it, so it is only
// consumed. The returned stop function must be called to restore the default
// signal behavior.
func notifyContext(ctx context.Context, interactive bool) (context.Context, context.CancelFunc) {
	signals := []os.Signal{
		unix.SIGABRT,
		unix.SIGTERM,
		unix.SIGQUIT,
		unix.SIGHUP,
	}

	if !interactive {
		signals = append(signals, unix.SIGINT)

		return signal.NotifyContext(ctx, signals...)
	}

	ctx, cancel := signal.NotifyContext(ctx, signals...)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, unix.SIGINT)

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		for {
			select {
			case <-interrupts:
				pslog.Ctx(ctx).Debug("interrupt left to debugger")
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		signal.Stop(interrupts)
		close(done)
		<-stopped
		cancel()
	}

	return ctx, stop
}
