// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"context"
	"fmt"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

const statusListen = "LISTEN"

// PortOwner describes the process listening on a TCP port.
type PortOwner struct {
	PID int32
	// Name of the process. Empty if it can not be determined, e.g. due to
	// missing permissions.
	Name string
}

// String implements [fmt.Stringer].
func (o PortOwner) String() string {
	if o.Name == "" {
		return fmt.Sprintf("pid %d", o.PID)
	}

	return fmt.Sprintf("%s (pid %d)", o.Name, o.PID)
}

// FindPortOwner looks for a process listening on the given local TCP port.
//
// It returns false if the port is not in use.
func FindPortOwner(ctx context.Context, port uint16) (PortOwner, bool, error) {
	conns, err := psnet.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return PortOwner{}, false, fmt.Errorf("list connections: %w", err)
	}

	for _, conn := range conns {
		if conn.Status != statusListen || conn.Laddr.Port != uint32(port) {
			continue
		}

		owner := PortOwner{PID: conn.Pid}

		if conn.Pid > 0 {
			proc, err := process.NewProcessWithContext(ctx, conn.Pid)
			if err == nil {
				owner.Name, _ = proc.NameWithContext(ctx)
			}
		}

		return owner, true, nil
	}

	return PortOwner{}, false, nil
}
