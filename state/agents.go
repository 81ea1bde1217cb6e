// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Package state holds the in-memory collections behind the dashboard:
// the agent roster, the task set, and the message feed. All containers
// are safe for concurrent use. Updates apply in arrival order; the
// last writer wins.
package state

import (
	"sync"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

// AgentSet is the agent roster. It preserves insertion order.
type AgentSet struct {
	mu     sync.RWMutex
	agents []clawcontrol.Agent
}

// NewAgentSet creates an empty agent set.
func NewAgentSet() *AgentSet {
	return &AgentSet{}
}

// Replace swaps the entire roster for the given agents.
func (s *AgentSet) Replace(agents []clawcontrol.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = append([]clawcontrol.Agent(nil), agents...)
}

// Upsert merges an incoming agent into the roster. A known id is
// shallow-merged: only the fields present in the payload overwrite the
// stored record, so a partial update never blanks fields it did not
// carry. An unknown id is appended. A nil field set replaces the whole
// record.
func (s *AgentSet) Upsert(agent clawcontrol.Agent, fields clawcontrol.FieldSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.agents {
		if s.agents[i].ID == agent.ID {
			if fields == nil {
				s.agents[i] = agent
			} else {
				mergeAgent(&s.agents[i], agent, fields)
			}
			return
		}
	}
	s.agents = append(s.agents, agent)
}

// Get returns the agent with the given id.
func (s *AgentSet) Get(id string) (clawcontrol.Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, agent := range s.agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return clawcontrol.Agent{}, false
}

// List returns a copy of the roster in insertion order.
func (s *AgentSet) List() []clawcontrol.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]clawcontrol.Agent(nil), s.agents...)
}

// Len returns the roster size.
func (s *AgentSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.agents)
}

func mergeAgent(dst *clawcontrol.Agent, src clawcontrol.Agent, fields clawcontrol.FieldSet) {
	if fields.Has("name") {
		dst.Name = src.Name
	}
	if fields.Has("description") {
		dst.Description = src.Description
	}
	if fields.Has("status") {
		dst.Status = src.Status
	}
	if fields.Has("avatar") {
		dst.Avatar = src.Avatar
	}
	if fields.Has("role") {
		dst.Role = src.Role
	}
	if fields.Has("bio") {
		dst.Bio = src.Bio
	}
	if fields.Has("does") {
		dst.Does = src.Does
	}
	if fields.Has("does_not") {
		dst.DoesNot = src.DoesNot
	}
	if fields.Has("principles") {
		dst.Principles = src.Principles
	}
	if fields.Has("critical_actions") {
		dst.CriticalActions = src.CriticalActions
	}
	if fields.Has("communication_style") {
		dst.CommunicationStyle = src.CommunicationStyle
	}
	if fields.Has("bmad_source") {
		dst.BMADSource = src.BMADSource
	}
}
