// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

func fieldSet(t *testing.T, payload string) (clawcontrol.Agent, clawcontrol.FieldSet) {
	t.Helper()
	agent, fields, err := clawcontrol.TransformAgent([]byte(payload))
	if err != nil {
		t.Fatalf("TransformAgent(%s) failed: %v", payload, err)
	}
	return agent, fields
}

func TestAgentSetUpsertMergePreservesAbsentFields(t *testing.T) {
	t.Parallel()

	s := NewAgentSet()
	s.Replace([]clawcontrol.Agent{
		{ID: "a1", Name: "Scout", Description: "recon", Status: clawcontrol.AgentStatusIdle, Avatar: "S"},
	})

	// A partial payload carrying only the status.
	agent, fields := fieldSet(t, `{"id":"a1","status":"working"}`)
	s.Upsert(agent, fields)

	got, ok := s.Get("a1")
	if !ok {
		t.Fatal("agent a1 missing after upsert")
	}
	want := clawcontrol.Agent{
		ID:          "a1",
		Name:        "Scout",
		Description: "recon",
		Status:      clawcontrol.AgentStatusWorking,
		Avatar:      "S",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("agent mismatch (-want +got):\n%s", diff)
	}
}

func TestAgentSetUpsertAppendsUnknown(t *testing.T) {
	t.Parallel()

	s := NewAgentSet()
	agent, fields := fieldSet(t, `{"id":"a9","name":"Newcomer"}`)
	s.Upsert(agent, fields)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	got, _ := s.Get("a9")
	if got.Name != "Newcomer" {
		t.Errorf("Name = %q, want Newcomer", got.Name)
	}
}

func TestAgentSetLastWriterWins(t *testing.T) {
	t.Parallel()

	s := NewAgentSet()
	first, firstFields := fieldSet(t, `{"id":"a1","status":"working"}`)
	second, secondFields := fieldSet(t, `{"id":"a1","status":"offline"}`)
	s.Upsert(first, firstFields)
	s.Upsert(second, secondFields)

	got, _ := s.Get("a1")
	if got.Status != clawcontrol.AgentStatusOffline {
		t.Errorf("Status = %q, want offline (last arrival wins)", got.Status)
	}
}

func TestAgentSetReplace(t *testing.T) {
	t.Parallel()

	s := NewAgentSet()
	s.Replace([]clawcontrol.Agent{{ID: "a1"}, {ID: "a2"}})
	s.Replace([]clawcontrol.Agent{{ID: "a3"}})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if _, ok := s.Get("a1"); ok {
		t.Error("a1 survived a replace")
	}
}

func TestAgentSetListIsACopy(t *testing.T) {
	t.Parallel()

	s := NewAgentSet()
	s.Replace([]clawcontrol.Agent{{ID: "a1", Name: "Scout"}})

	list := s.List()
	list[0].Name = "Tampered"

	got, _ := s.Get("a1")
	if got.Name != "Scout" {
		t.Errorf("mutating List() result leaked into the set: Name = %q", got.Name)
	}
}
