// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package clawcontrol

import (
	"fmt"
)

// Wire event names emitted on the stream. The unsuffixed names are
// legacy aliases still produced by older backends.
const (
	EventInit           = "init"
	EventAgentCreated   = "agent-created"
	EventAgentUpdated   = "agent-updated"
	EventAgentLegacy    = "agent"
	EventTaskCreated    = "task-created"
	EventTaskUpdated    = "task-updated"
	EventTaskDeleted    = "task-deleted"
	EventTaskLegacy     = "task"
	EventMessageCreated = "message-created"
	EventMessageLegacy  = "message"
)

// EventAction distinguishes a create from an update. Both apply as an
// upsert; the action is informational.
type EventAction string

// Valid event actions.
const (
	ActionCreated EventAction = "created"
	ActionUpdated EventAction = "updated"
)

// StreamEvent is a parsed domain event from the stream.
type StreamEvent interface {
	streamEvent()
}

// InitEvent carries the authoritative snapshot sent when a stream
// subscription opens. Nil collections were absent from the payload and
// must leave local state untouched.
type InitEvent struct {
	Snapshot Snapshot
}

// AgentEvent carries a full or partial agent record.
type AgentEvent struct {
	Action EventAction
	Agent  Agent
	Fields FieldSet
}

// TaskEvent carries a full or partial task record.
type TaskEvent struct {
	Action EventAction
	Task   Task
	Fields FieldSet
}

// TaskDeletedEvent identifies a removed task. The payload carries only
// the id.
type TaskDeletedEvent struct {
	ID string
}

// MessageEvent carries one feed message.
type MessageEvent struct {
	Message Message
}

func (InitEvent) streamEvent()        {}
func (AgentEvent) streamEvent()       {}
func (TaskEvent) streamEvent()        {}
func (TaskDeletedEvent) streamEvent() {}
func (MessageEvent) streamEvent()     {}

// ParseStreamEvent maps a wire event name and JSON payload onto a
// domain event. It is pure: no transport state, no side effects, so the
// mapping table can be exercised directly in tests. Unknown names and
// undecodable payloads return an error; the stream drops those events
// without tearing the connection down.
func ParseStreamEvent(name string, data []byte) (StreamEvent, error) {
	switch name {
	case EventInit:
		return parseInitEvent(data)
	case EventAgentCreated:
		return parseAgentEvent(ActionCreated, data)
	case EventAgentUpdated, EventAgentLegacy:
		return parseAgentEvent(ActionUpdated, data)
	case EventTaskCreated:
		return parseTaskEvent(ActionCreated, data)
	case EventTaskUpdated, EventTaskLegacy:
		return parseTaskEvent(ActionUpdated, data)
	case EventTaskDeleted:
		payload, err := parsePayload(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s event: %w", name, err)
		}
		id := payload.Get("id").String()
		if id == "" {
			id = payload.Get("Id").String()
		}
		if id == "" {
			return nil, fmt.Errorf("parse %s event: missing id", name)
		}
		return TaskDeletedEvent{ID: id}, nil
	case EventMessageCreated, EventMessageLegacy:
		msg, _, err := TransformMessage(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s event: %w", name, err)
		}
		return MessageEvent{Message: msg}, nil
	default:
		return nil, fmt.Errorf("unknown stream event %q", name)
	}
}

func parseInitEvent(data []byte) (StreamEvent, error) {
	payload, err := parsePayload(data)
	if err != nil {
		return nil, fmt.Errorf("parse init event: %w", err)
	}
	var ev InitEvent
	if agents := payload.Get("agents"); agents.IsArray() {
		ev.Snapshot.Agents = []Agent{}
		for _, raw := range agents.Array() {
			agent, _, err := TransformAgent([]byte(raw.Raw))
			if err != nil {
				continue
			}
			ev.Snapshot.Agents = append(ev.Snapshot.Agents, agent)
		}
	}
	if tasks := payload.Get("tasks"); tasks.IsArray() {
		ev.Snapshot.Tasks = []Task{}
		for _, raw := range tasks.Array() {
			task, _, err := TransformTask([]byte(raw.Raw))
			if err != nil {
				continue
			}
			ev.Snapshot.Tasks = append(ev.Snapshot.Tasks, task)
		}
	}
	return ev, nil
}

func parseAgentEvent(action EventAction, data []byte) (StreamEvent, error) {
	agent, fields, err := TransformAgent(data)
	if err != nil {
		return nil, fmt.Errorf("parse agent event: %w", err)
	}
	return AgentEvent{Action: action, Agent: agent, Fields: fields}, nil
}

func parseTaskEvent(action EventAction, data []byte) (StreamEvent, error) {
	task, fields, err := TransformTask(data)
	if err != nil {
		return nil, fmt.Errorf("parse task event: %w", err)
	}
	return TaskEvent{Action: action, Task: task, Fields: fields}, nil
}
