// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

// sseHandler writes the given frames and then holds the connection
// open until the client goes away.
func sseHandler(t *testing.T, frames []string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			t.Error("response writer does not support flushing")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for _, frame := range frames {
			fmt.Fprint(w, frame)
			flusher.Flush()
		}
		<-r.Context().Done()
	}
}

func collectEvents(t *testing.T, s *Stream, n int) []clawcontrol.StreamEvent {
	t.Helper()
	var events []clawcontrol.StreamEvent
	timeout := time.After(5 * time.Second)
	for len(events) < n {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				t.Fatalf("events channel closed after %d events, want %d", len(events), n)
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("timed out after %d events, want %d", len(events), n)
		}
	}
	return events
}

func TestStreamDeliversEvents(t *testing.T) {
	t.Parallel()

	frames := []string{
		"event: init\ndata: {\"agents\":[{\"id\":\"a1\",\"name\":\"Scout\"}],\"tasks\":[]}\n\n",
		"event: task-created\ndata: {\"id\":\"t1\",\"title\":\"Dig\",\"status\":\"todo\"}\n\n",
		"event: bogus-event\ndata: {}\n\n",
		"event: message-created\ndata: {\"id\":\"m1\",\"content\":\"hi\"}\n\n",
	}
	srv := httptest.NewServer(sseHandler(t, frames))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	s, err := c.Subscribe(t.Context())
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	defer s.Close()

	// The unknown event is dropped, so three events arrive.
	events := collectEvents(t, s, 3)

	if _, ok := events[0].(clawcontrol.InitEvent); !ok {
		t.Errorf("events[0] = %T, want InitEvent", events[0])
	}
	taskEv, ok := events[1].(clawcontrol.TaskEvent)
	if !ok {
		t.Fatalf("events[1] = %T, want TaskEvent", events[1])
	}
	if taskEv.Task.ID != "t1" || taskEv.Action != clawcontrol.ActionCreated {
		t.Errorf("task event = %+v, want created t1", taskEv)
	}
	if _, ok := events[2].(clawcontrol.MessageEvent); !ok {
		t.Errorf("events[2] = %T, want MessageEvent", events[2])
	}

	if !s.Connected() {
		t.Error("Connected() = false while the stream is open")
	}
}

func TestStreamReconnects(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var connections int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		connections++
		n := connections
		mu.Unlock()

		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "event: message-created\ndata: {\"id\":\"m%d\",\"content\":\"hello\"}\n\n", n)
		flusher.Flush()
		if n == 1 {
			// Drop the first connection to force a reconnect.
			return
		}
		<-r.Context().Done()
	}))
	defer srv.Close()

	var stateMu sync.Mutex
	var transitions []ConnectionState
	c, err := New(
		WithBaseURL(srv.URL),
		WithStreamRetryDelay(10*time.Millisecond),
		WithConnectionStateCallback(func(_, newState ConnectionState) {
			stateMu.Lock()
			transitions = append(transitions, newState)
			stateMu.Unlock()
		}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	s, err := c.Subscribe(t.Context())
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	defer s.Close()

	events := collectEvents(t, s, 2)
	first := events[0].(clawcontrol.MessageEvent)
	second := events[1].(clawcontrol.MessageEvent)
	if first.Message.ID != "m1" || second.Message.ID != "m2" {
		t.Errorf("messages = %s, %s; want m1 then m2 across the reconnect", first.Message.ID, second.Message.ID)
	}

	mu.Lock()
	if connections < 2 {
		t.Errorf("connections = %d, want at least 2", connections)
	}
	mu.Unlock()

	// The drop must have surfaced as a disconnect before the second
	// connect.
	stateMu.Lock()
	defer stateMu.Unlock()
	var sawDisconnect bool
	for _, st := range transitions {
		if st == ConnectionStateDisconnected {
			sawDisconnect = true
		}
	}
	if !sawDisconnect {
		t.Errorf("transitions %v never passed through disconnected", transitions)
	}
}

func TestStreamRetriesFailedConnect(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "event: message-created\ndata: {\"id\":\"m1\",\"content\":\"up\"}\n\n")
		flusher.Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(WithBaseURL(srv.URL), WithStreamRetryDelay(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	s, err := c.Subscribe(t.Context())
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	defer s.Close()

	collectEvents(t, s, 1)

	mu.Lock()
	defer mu.Unlock()
	if attempts < 2 {
		t.Errorf("attempts = %d, want at least 2", attempts)
	}
}

func TestStreamCloseIsSynchronous(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(sseHandler(t, []string{
		"event: message-created\ndata: {\"id\":\"m1\",\"content\":\"hi\"}\n\n",
	}))
	defer srv.Close()

	var cbMu sync.Mutex
	var afterClose bool
	var closed bool
	c, err := New(
		WithBaseURL(srv.URL),
		WithConnectionStateCallback(func(_, _ ConnectionState) {
			cbMu.Lock()
			if closed {
				afterClose = true
			}
			cbMu.Unlock()
		}),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	s, err := c.Subscribe(t.Context())
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	collectEvents(t, s, 1)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	cbMu.Lock()
	closed = true
	cbMu.Unlock()

	// The events channel must be closed and drained.
	for range s.Events() {
		t.Error("event delivered after Close returned")
	}
	if got := s.State(); got != ConnectionStateClosed {
		t.Errorf("State() after Close = %v, want closed", got)
	}

	time.Sleep(50 * time.Millisecond)
	cbMu.Lock()
	defer cbMu.Unlock()
	if afterClose {
		t.Error("state callback fired after Close returned")
	}

	// Closing again is a no-op.
	if err := s.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
