// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package clawcontrol

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseStreamEvent(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		event   string
		data    string
		want    StreamEvent
		wantErr bool
	}{
		"agent-created": {
			event: EventAgentCreated,
			data:  `{"id":"a1","name":"Scout","status":"idle"}`,
			want: AgentEvent{
				Action: ActionCreated,
				Agent:  Agent{ID: "a1", Name: "Scout", Status: AgentStatusIdle},
			},
		},
		"agent-updated": {
			event: EventAgentUpdated,
			data:  `{"id":"a1","status":"working"}`,
			want: AgentEvent{
				Action: ActionUpdated,
				Agent:  Agent{ID: "a1", Status: AgentStatusWorking},
			},
		},
		"legacy agent maps to update": {
			event: EventAgentLegacy,
			data:  `{"id":"a1","status":"offline"}`,
			want: AgentEvent{
				Action: ActionUpdated,
				Agent:  Agent{ID: "a1", Status: AgentStatusOffline},
			},
		},
		"task-created": {
			event: EventTaskCreated,
			data:  `{"id":"t1","title":"Dig","status":"backlog","created_at":"2025-07-04T09:00:00Z","updated_at":"2025-07-04T09:00:00Z"}`,
			want: TaskEvent{
				Action: ActionCreated,
				Task:   Task{ID: "t1", Title: "Dig", Status: TaskStatusBacklog, CreatedAt: ts, UpdatedAt: ts},
			},
		},
		"legacy task maps to update": {
			event: EventTaskLegacy,
			data:  `{"id":"t1","status":"review","created_at":"2025-07-04T09:00:00Z","updated_at":"2025-07-04T09:00:00Z"}`,
			want: TaskEvent{
				Action: ActionUpdated,
				Task:   Task{ID: "t1", Status: TaskStatusReview, CreatedAt: ts, UpdatedAt: ts},
			},
		},
		"task-deleted": {
			event: EventTaskDeleted,
			data:  `{"id":"t9"}`,
			want:  TaskDeletedEvent{ID: "t9"},
		},
		"task-deleted without id": {
			event:   EventTaskDeleted,
			data:    `{}`,
			wantErr: true,
		},
		"message-created": {
			event: EventMessageCreated,
			data:  `{"id":"m1","content":"done","timestamp":"2025-07-04T09:00:00Z","type":"success"}`,
			want: MessageEvent{
				Message: Message{ID: "m1", Content: "done", Timestamp: ts, Type: MessageTypeSuccess},
			},
		},
		"legacy message": {
			event: EventMessageLegacy,
			data:  `{"id":"m2","message":"hello","created_at":"2025-07-04T09:00:00Z"}`,
			want: MessageEvent{
				Message: Message{ID: "m2", Content: "hello", Timestamp: ts, Type: MessageTypeInfo},
			},
		},
		"unknown event name": {
			event:   "heartbeat-v2",
			data:    `{}`,
			wantErr: true,
		},
		"malformed payload": {
			event:   EventAgentCreated,
			data:    `{"id":`,
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStreamEvent(tt.event, []byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStreamEvent(%q) succeeded, want error", tt.event)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStreamEvent(%q) failed: %v", tt.event, err)
			}
			opts := []cmp.Option{
				cmpopts.IgnoreFields(AgentEvent{}, "Fields"),
				cmpopts.IgnoreFields(TaskEvent{}, "Fields"),
			}
			if diff := cmp.Diff(tt.want, got, opts...); diff != "" {
				t.Errorf("event mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStreamEventInit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		data       string
		wantAgents []Agent
		wantTasks  []Task
	}{
		"both collections": {
			data: `{"agents":[{"id":"a1","name":"Scout","status":"idle"}],"tasks":[{"id":"t1","title":"Dig","status":"todo","created_at":"2025-07-04T09:00:00Z","updated_at":"2025-07-04T09:00:00Z"}]}`,
			wantAgents: []Agent{
				{ID: "a1", Name: "Scout", Status: AgentStatusIdle},
			},
			wantTasks: []Task{
				{ID: "t1", Title: "Dig", Status: TaskStatusTodo,
					CreatedAt: time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC),
					UpdatedAt: time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC)},
			},
		},
		"agents only leaves tasks nil": {
			data:       `{"agents":[]}`,
			wantAgents: []Agent{},
			wantTasks:  nil,
		},
		"empty object": {
			data:       `{}`,
			wantAgents: nil,
			wantTasks:  nil,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStreamEvent(EventInit, []byte(tt.data))
			if err != nil {
				t.Fatalf("ParseStreamEvent(init) failed: %v", err)
			}
			init, ok := got.(InitEvent)
			if !ok {
				t.Fatalf("ParseStreamEvent(init) returned %T, want InitEvent", got)
			}
			if diff := cmp.Diff(tt.wantAgents, init.Snapshot.Agents); diff != "" {
				t.Errorf("agents mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantTasks, init.Snapshot.Tasks); diff != "" {
				t.Errorf("tasks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
