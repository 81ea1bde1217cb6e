// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"sync"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

// TaskSet is the task collection backing the kanban board. It
// preserves insertion order.
type TaskSet struct {
	mu    sync.RWMutex
	tasks []clawcontrol.Task
}

// NewTaskSet creates an empty task set.
func NewTaskSet() *TaskSet {
	return &TaskSet{}
}

// Replace swaps the entire collection for the given tasks.
func (s *TaskSet) Replace(tasks []clawcontrol.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]clawcontrol.Task(nil), tasks...)
}

// Upsert merges an incoming task. Known ids shallow-merge by present
// fields; unknown ids append. A nil field set replaces the record.
func (s *TaskSet) Upsert(task clawcontrol.Task, fields clawcontrol.FieldSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			if fields == nil {
				s.tasks[i] = task
			} else {
				mergeTask(&s.tasks[i], task, fields)
			}
			return
		}
	}
	s.tasks = append(s.tasks, task)
}

// Delete removes a task by id. Deleting an unknown id is a no-op.
func (s *TaskSet) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// SetStatus rewrites a task's status in place. It reports whether the
// task was found.
func (s *TaskSet) SetStatus(id string, status clawcontrol.TaskStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			return true
		}
	}
	return false
}

// Get returns the task with the given id.
func (s *TaskSet) Get(id string) (clawcontrol.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return clawcontrol.Task{}, false
}

// List returns a copy of the collection in insertion order.
func (s *TaskSet) List() []clawcontrol.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]clawcontrol.Task(nil), s.tasks...)
}

// Len returns the collection size.
func (s *TaskSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Board returns the kanban projection of the current tasks.
func (s *TaskSet) Board() clawcontrol.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clawcontrol.BuildBoard(s.tasks)
}

func mergeTask(dst *clawcontrol.Task, src clawcontrol.Task, fields clawcontrol.FieldSet) {
	if fields.Has("title") {
		dst.Title = src.Title
	}
	if fields.Has("description") {
		dst.Description = src.Description
	}
	if fields.Has("status") {
		dst.Status = src.Status
	}
	if fields.Has("agent_id") {
		dst.AgentID = src.AgentID
	}
	if fields.Has("created_at") {
		dst.CreatedAt = src.CreatedAt
	}
	if fields.Has("updated_at") {
		dst.UpdatedAt = src.UpdatedAt
	}
}
