// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package clawcontrol

// Column is one kanban lane: a status, its display title, and the tasks
// currently in it.
type Column struct {
	Status TaskStatus `json:"status"`
	Title  string     `json:"title"`
	Tasks  []Task     `json:"tasks"`
}

// Board is the kanban projection of a task set. Every task appears in
// exactly one column.
type Board struct {
	Columns []Column `json:"columns"`
}

// ColumnTitle returns the display title for a status.
func ColumnTitle(s TaskStatus) string {
	switch s {
	case TaskStatusBacklog:
		return "Backlog"
	case TaskStatusTodo:
		return "Todo"
	case TaskStatusReview:
		return "Review"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// BuildBoard partitions tasks into the four columns in board order.
// Tasks carrying a status outside the canonical set are normalized on
// ingest, so the partition is total: len(tasks) equals the sum of the
// column sizes.
func BuildBoard(tasks []Task) Board {
	byStatus := make(map[TaskStatus][]Task, 4)
	for _, task := range tasks {
		status := task.Status
		if !status.Valid() {
			status = NormalizeTaskStatus(string(status))
		}
		byStatus[status] = append(byStatus[status], task)
	}
	board := Board{Columns: make([]Column, 0, 4)}
	for _, status := range TaskStatuses() {
		board.Columns = append(board.Columns, Column{
			Status: status,
			Title:  ColumnTitle(status),
			Tasks:  byStatus[status],
		})
	}
	return board
}

// TaskCount returns the total number of tasks on the board.
func (b Board) TaskCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Tasks)
	}
	return n
}

// Column returns the column for a status, if present.
func (b Board) Column(s TaskStatus) (Column, bool) {
	for _, col := range b.Columns {
		if col.Status == s {
			return col, true
		}
	}
	return Column{}, false
}
