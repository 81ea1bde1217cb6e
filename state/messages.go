// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"sync"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

// DefaultMessageCapacity bounds the trailing window of live messages.
const DefaultMessageCapacity = 200

// MessageLog is the activity feed: a bounded trailing window of
// messages in chronological order, oldest first. Appends of an id
// already present are dropped. Pages of older history prepended via
// PrependOlder are exempt from the capacity bound so a reader paging
// backwards does not evict what they just loaded.
type MessageLog struct {
	mu       sync.RWMutex
	messages []clawcontrol.Message
	capacity int
}

// NewMessageLog creates a message log with the default capacity.
func NewMessageLog() *MessageLog {
	return NewMessageLogWithCapacity(DefaultMessageCapacity)
}

// NewMessageLogWithCapacity creates a message log with a custom
// capacity. A non-positive capacity falls back to the default.
func NewMessageLogWithCapacity(capacity int) *MessageLog {
	if capacity <= 0 {
		capacity = DefaultMessageCapacity
	}
	return &MessageLog{capacity: capacity}
}

// Replace swaps the whole window for the given messages.
func (l *MessageLog) Replace(messages []clawcontrol.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append([]clawcontrol.Message(nil), messages...)
}

// Append adds a live message to the tail. A duplicate id is dropped.
// When the window is full the oldest entries fall off the front.
func (l *MessageLog) Append(msg clawcontrol.Message) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.messages {
		if existing.ID == msg.ID {
			return false
		}
	}

	if len(l.messages) >= l.capacity {
		keep := l.capacity - 1
		l.messages = append(l.messages[len(l.messages)-keep:], msg)
		return true
	}
	l.messages = append(l.messages, msg)
	return true
}

// PrependOlder inserts a page of older history at the front, skipping
// any message whose id is already present. It returns how many were
// added.
func (l *MessageLog) PrependOlder(older []clawcontrol.Message) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(l.messages))
	for _, msg := range l.messages {
		seen[msg.ID] = struct{}{}
	}

	fresh := make([]clawcontrol.Message, 0, len(older))
	for _, msg := range older {
		if _, dup := seen[msg.ID]; dup {
			continue
		}
		seen[msg.ID] = struct{}{}
		fresh = append(fresh, msg)
	}

	if len(fresh) == 0 {
		return 0
	}
	l.messages = append(fresh, l.messages...)
	return len(fresh)
}

// List returns a copy of the window, oldest first.
func (l *MessageLog) List() []clawcontrol.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]clawcontrol.Message(nil), l.messages...)
}

// Len returns the number of messages held.
func (l *MessageLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Capacity returns the live window bound.
func (l *MessageLog) Capacity() int {
	return l.capacity
}
