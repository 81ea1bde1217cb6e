// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Package sse implements a minimal Server-Sent Events decoder.
package sse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Event represents a Server-Sent Event.
type Event struct {
	Type  string
	Data  string
	ID    string
	Retry int
}

// Decoder decodes Server-Sent Events from an io.Reader.
type Decoder struct {
	scanner *bufio.Scanner
}

// NewDecoder creates a new SSE decoder.
func NewDecoder(reader io.Reader) *Decoder {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Decoder{scanner: scanner}
}

// Decode returns the next SSE event from the stream. It returns io.EOF
// when the stream ends with no pending event.
func (d *Decoder) Decode() (*Event, error) {
	event := &Event{}

	for d.scanner.Scan() {
		line := d.scanner.Text()

		// Empty line indicates end of event
		if line == "" {
			if event.Data != "" || event.Type != "" {
				return event, nil
			}
			continue
		}

		// Comments (lines starting with :) are ignored
		if strings.HasPrefix(line, ":") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch field {
		case "event":
			event.Type = value
		case "data":
			if event.Data != "" {
				event.Data += "\n"
			}
			event.Data += value
		case "id":
			event.ID = value
		case "retry":
			var retry int
			if _, err := fmt.Sscanf(value, "%d", &retry); err == nil {
				event.Retry = retry
			}
		}
	}

	if err := d.scanner.Err(); err != nil {
		return nil, fmt.Errorf("SSE scanner error: %w", err)
	}

	// EOF reached
	if event.Data != "" || event.Type != "" {
		return event, nil
	}

	return nil, io.EOF
}
