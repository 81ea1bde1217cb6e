// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package clawcontrol

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// FieldSet records which canonical fields were present in a raw payload.
// Merge-style updates consult it so that fields the sender omitted do
// not clobber values already held locally.
type FieldSet map[string]struct{}

// Has reports whether the canonical field name was present.
func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

func (fs FieldSet) add(name string) {
	fs[name] = struct{}{}
}

// pick returns the first spelling present in the payload, recording it
// in fs under the canonical (first) name.
func pick(payload gjson.Result, fs FieldSet, spellings ...string) (gjson.Result, bool) {
	return pickNamed(payload, fs, spellings[0], spellings...)
}

// pickNamed is pick with a canonical name that differs from the
// preferred spelling, for fields whose wire precedence and canonical
// serialization disagree.
func pickNamed(payload gjson.Result, fs FieldSet, canonical string, spellings ...string) (gjson.Result, bool) {
	for _, s := range spellings {
		if v := payload.Get(s); v.Exists() {
			fs.add(canonical)
			return v, true
		}
	}
	return gjson.Result{}, false
}

func pickString(payload gjson.Result, fs FieldSet, spellings ...string) string {
	v, ok := pick(payload, fs, spellings...)
	if !ok {
		return ""
	}
	return v.String()
}

func pickStrings(payload gjson.Result, fs FieldSet, spellings ...string) []string {
	v, ok := pick(payload, fs, spellings...)
	if !ok || !v.IsArray() {
		return nil
	}
	var out []string
	for _, item := range v.Array() {
		out = append(out, item.String())
	}
	return out
}

// pickTime parses the first timestamp spelling present. Unparseable or
// absent values fall back to now, matching the feed's display contract
// that every record carries a usable time.
func pickTime(payload gjson.Result, fs FieldSet, now time.Time, spellings ...string) time.Time {
	v, ok := pick(payload, fs, spellings...)
	if !ok {
		return now
	}
	return parseTime(v.String(), now)
}

func parseTime(s string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return fallback
}

func parsePayload(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("invalid JSON payload")
	}
	payload := gjson.ParseBytes(data)
	if !payload.IsObject() {
		return gjson.Result{}, fmt.Errorf("payload is not a JSON object")
	}
	return payload, nil
}

// TransformAgent normalizes a raw agent payload. Historical spellings
// are accepted, missing optionals take their defaults (status idle),
// and the returned FieldSet names the fields the payload carried.
// Transforming an already-canonical payload is a no-op.
func TransformAgent(data []byte) (Agent, FieldSet, error) {
	payload, err := parsePayload(data)
	if err != nil {
		return Agent{}, nil, err
	}
	fs := make(FieldSet)
	agent := Agent{
		ID:                 pickString(payload, fs, "id", "Id"),
		Name:               pickString(payload, fs, "name"),
		Description:        pickString(payload, fs, "description"),
		Avatar:             pickString(payload, fs, "avatar"),
		Role:               pickString(payload, fs, "role"),
		Bio:                pickString(payload, fs, "bio"),
		Does:               pickStrings(payload, fs, "does"),
		DoesNot:            pickStrings(payload, fs, "does_not", "doesNot"),
		Principles:         pickStrings(payload, fs, "principles"),
		CriticalActions:    pickStrings(payload, fs, "critical_actions", "criticalActions"),
		CommunicationStyle: pickString(payload, fs, "communication_style", "communicationStyle"),
		BMADSource:         pickString(payload, fs, "bmad_source", "bmadSource"),
	}
	if v, ok := pick(payload, fs, "status"); ok {
		agent.Status = AgentStatus(v.String())
	}
	if !agent.Status.Valid() {
		agent.Status = AgentStatusIdle
	}
	return agent, fs, nil
}

// TransformTask normalizes a raw task payload. The historical
// "in_progress" status maps to todo so the board partition stays
// four-way.
func TransformTask(data []byte) (Task, FieldSet, error) {
	payload, err := parsePayload(data)
	if err != nil {
		return Task{}, nil, err
	}
	fs := make(FieldSet)
	now := time.Now().UTC()
	task := Task{
		ID:          pickString(payload, fs, "id", "Id"),
		Title:       pickString(payload, fs, "title"),
		Description: pickString(payload, fs, "description"),
		AgentID:     pickString(payload, fs, "agent_id", "agentId"),
		CreatedAt:   pickTime(payload, fs, now, "created_at", "createdAt"),
		UpdatedAt:   pickTime(payload, fs, now, "updated_at", "updatedAt"),
	}
	if v, ok := pick(payload, fs, "status"); ok {
		task.Status = NormalizeTaskStatus(v.String())
	} else {
		task.Status = TaskStatusBacklog
	}
	return task, fs, nil
}

// NormalizeTaskStatus maps a wire status onto the canonical set.
// Unknown values land in backlog.
func NormalizeTaskStatus(s string) TaskStatus {
	if s == "in_progress" {
		return TaskStatusTodo
	}
	if status := TaskStatus(s); status.Valid() {
		return status
	}
	return TaskStatusBacklog
}

// TransformMessage normalizes a raw feed message. Content may arrive
// under "message" or "content", the timestamp under "created_at" or
// "timestamp", and an absent type defaults to info.
func TransformMessage(data []byte) (Message, FieldSet, error) {
	payload, err := parsePayload(data)
	if err != nil {
		return Message{}, nil, err
	}
	fs := make(FieldSet)
	msg := Message{
		ID:        pickString(payload, fs, "id", "Id"),
		AgentID:   pickString(payload, fs, "agent_id", "agentId"),
		AgentName: pickString(payload, fs, "agent_name", "agentName"),
	}
	if v, ok := pickNamed(payload, fs, "content", "message", "content"); ok {
		msg.Content = v.String()
	}
	now := time.Now().UTC()
	if v, ok := pickNamed(payload, fs, "timestamp", "created_at", "timestamp"); ok {
		msg.Timestamp = parseTime(v.String(), now)
	} else {
		msg.Timestamp = now
	}
	if v, ok := pick(payload, fs, "type"); ok {
		msg.Type = MessageType(v.String())
	}
	if !msg.Type.Valid() {
		msg.Type = MessageTypeInfo
	}
	return msg, fs, nil
}
