// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

// ResolveDrop maps a drag-and-drop gesture onto a status move. The
// drop target may be a column id (one of the four statuses) or another
// task, in which case the move targets that task's current column.
// It returns false when the target does not resolve, the dragged task
// is unknown, or the move would be a no-op; in those cases no mutation
// and no network call should follow.
func (d *Dashboard) ResolveDrop(activeID, overID string) (clawcontrol.TaskStatus, bool) {
	task, ok := d.tasks.Get(activeID)
	if !ok {
		return "", false
	}

	var target clawcontrol.TaskStatus
	if status := clawcontrol.TaskStatus(overID); status.Valid() {
		target = status
	} else if over, ok := d.tasks.Get(overID); ok {
		target = over.Status
	} else {
		return "", false
	}

	if target == task.Status {
		return "", false
	}
	return target, true
}
