// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package sse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  []*Event
	}{
		"single event": {
			input: "event: task-updated\ndata: {\"id\":\"t1\"}\n\n",
			want: []*Event{
				{Type: "task-updated", Data: `{"id":"t1"}`},
			},
		},
		"multiple events": {
			input: "event: a\ndata: 1\n\nevent: b\ndata: 2\n\n",
			want: []*Event{
				{Type: "a", Data: "1"},
				{Type: "b", Data: "2"},
			},
		},
		"multi-line data": {
			input: "data: line1\ndata: line2\n\n",
			want: []*Event{
				{Data: "line1\nline2"},
			},
		},
		"comments ignored": {
			input: ": keepalive\nevent: ping\ndata: {}\n\n",
			want: []*Event{
				{Type: "ping", Data: "{}"},
			},
		},
		"id and retry fields": {
			input: "id: 42\nretry: 3000\nevent: init\ndata: {}\n\n",
			want: []*Event{
				{Type: "init", Data: "{}", ID: "42", Retry: 3000},
			},
		},
		"trailing event without blank line": {
			input: "event: last\ndata: x",
			want: []*Event{
				{Type: "last", Data: "x"},
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := NewDecoder(strings.NewReader(tt.input))
			var got []*Event
			for {
				ev, err := d.Decode()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				got = append(got, ev)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecoderEmptyStream(t *testing.T) {
	t.Parallel()

	d := NewDecoder(strings.NewReader(""))
	if _, err := d.Decode(); !errors.Is(err, io.EOF) {
		t.Errorf("Decode on empty stream = %v, want io.EOF", err)
	}
}
