// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"testing"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
	"github.com/clawcontrol/clawcontrol-go/client"
)

func dropDashboard(t *testing.T) *Dashboard {
	t.Helper()
	c, err := client.New(client.WithBaseURL("http://localhost:3001"))
	if err != nil {
		t.Fatalf("client.New() failed: %v", err)
	}
	d, err := New(c)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	d.Tasks().Replace([]clawcontrol.Task{
		{ID: "t1", Status: clawcontrol.TaskStatusTodo},
		{ID: "t2", Status: clawcontrol.TaskStatusReview},
	})
	return d
}

func TestResolveDrop(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		activeID string
		overID   string
		want     clawcontrol.TaskStatus
		wantOK   bool
	}{
		"drop on column": {
			activeID: "t1",
			overID:   "completed",
			want:     clawcontrol.TaskStatusCompleted,
			wantOK:   true,
		},
		"drop on another task": {
			activeID: "t1",
			overID:   "t2",
			want:     clawcontrol.TaskStatusReview,
			wantOK:   true,
		},
		"drop on own column is a no-op": {
			activeID: "t1",
			overID:   "todo",
			wantOK:   false,
		},
		"drop on task in same column is a no-op": {
			activeID: "t1",
			overID:   "t1",
			wantOK:   false,
		},
		"unresolvable target": {
			activeID: "t1",
			overID:   "nowhere",
			wantOK:   false,
		},
		"unknown dragged task": {
			activeID: "ghost",
			overID:   "completed",
			wantOK:   false,
		},
		"in_progress is not a column target": {
			activeID: "t1",
			overID:   "in_progress",
			wantOK:   false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := dropDashboard(t)
			got, ok := d.ResolveDrop(tt.activeID, tt.overID)
			if ok != tt.wantOK {
				t.Fatalf("ResolveDrop(%q, %q) ok = %v, want %v", tt.activeID, tt.overID, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveDrop(%q, %q) = %q, want %q", tt.activeID, tt.overID, got, tt.want)
			}
		})
	}
}

func TestResolveBaseURL(t *testing.T) {
	tests := map[string]struct {
		explicit string
		env      string
		want     string
	}{
		"explicit wins":     {explicit: "http://a:1", env: "http://b:2", want: "http://a:1"},
		"env when no value": {env: "http://b:2", want: "http://b:2"},
		"default fallback":  {want: DefaultBaseURL},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EnvAPIBaseURL, tt.env)
			} else {
				t.Setenv(EnvAPIBaseURL, "")
			}
			if got := ResolveBaseURL(tt.explicit); got != tt.want {
				t.Errorf("ResolveBaseURL(%q) = %q, want %q", tt.explicit, got, tt.want)
			}
		})
	}
}
