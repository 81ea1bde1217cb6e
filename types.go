// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Package clawcontrol provides Go types for the Claw Control mission
// control API: agents, tasks, messages, and the event stream that keeps
// them current.
package clawcontrol

import (
	"time"
)

// AgentStatus represents the activity state of an agent.
type AgentStatus string

// Valid agent statuses.
const (
	AgentStatusWorking AgentStatus = "working"
	AgentStatusIdle    AgentStatus = "idle"
	AgentStatusOffline AgentStatus = "offline"
)

// String returns the string representation of the agent status.
func (s AgentStatus) String() string {
	return string(s)
}

// Valid reports whether s is a known agent status.
func (s AgentStatus) Valid() bool {
	switch s {
	case AgentStatusWorking, AgentStatusIdle, AgentStatusOffline:
		return true
	default:
		return false
	}
}

// Agent represents a worker agent on the roster, including the profile
// fields shown on its detail card.
type Agent struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitzero"`
	Status      AgentStatus `json:"status"`
	Avatar      string      `json:"avatar,omitzero"`

	Role               string   `json:"role,omitzero"`
	Bio                string   `json:"bio,omitzero"`
	Does               []string `json:"does,omitzero"`
	DoesNot            []string `json:"does_not,omitzero"`
	Principles         []string `json:"principles,omitzero"`
	CriticalActions    []string `json:"critical_actions,omitzero"`
	CommunicationStyle string   `json:"communication_style,omitzero"`
	BMADSource         string   `json:"bmad_source,omitzero"`
}

// TaskStatus represents the kanban column a task belongs to.
type TaskStatus string

// Valid task statuses. Every task is in exactly one of these four
// columns; the historical "in_progress" value seen on some backends is
// normalized to TaskStatusTodo on ingest.
const (
	TaskStatusBacklog   TaskStatus = "backlog"
	TaskStatusTodo      TaskStatus = "todo"
	TaskStatusReview    TaskStatus = "review"
	TaskStatusCompleted TaskStatus = "completed"
)

// String returns the string representation of the task status.
func (s TaskStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the four canonical statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusReview, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// TaskStatuses lists the canonical statuses in board order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusBacklog, TaskStatusTodo, TaskStatusReview, TaskStatusCompleted}
}

// Task represents a unit of work assigned to an agent.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitzero"`
	Status      TaskStatus `json:"status"`
	AgentID     string     `json:"agent_id,omitzero"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	UpdatedAt   time.Time  `json:"updated_at,omitzero"`
}

// MessageType classifies a feed message for display.
type MessageType string

// Valid message types.
const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeWarn    MessageType = "warn"
	MessageTypeError   MessageType = "error"
	MessageTypeSuccess MessageType = "success"
)

// String returns the string representation of the message type.
func (t MessageType) String() string {
	return string(t)
}

// Valid reports whether t is a known message type.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeInfo, MessageTypeWarn, MessageTypeError, MessageTypeSuccess:
		return true
	default:
		return false
	}
}

// Message represents one entry in the activity feed. AgentName is
// denormalized by the backend so the feed renders without a roster
// lookup; it may lag a later agent rename.
type Message struct {
	ID        string      `json:"id"`
	AgentID   string      `json:"agent_id,omitzero"`
	AgentName string      `json:"agent_name,omitzero"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type"`
}

// Snapshot is the authoritative state carried by an init stream event.
// A nil slice means the event did not include that collection.
type Snapshot struct {
	Agents []Agent `json:"agents,omitzero"`
	Tasks  []Task  `json:"tasks,omitzero"`
}
