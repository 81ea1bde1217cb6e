// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"time"
)

// ConnectionState represents the state of the event stream connection.
type ConnectionState int

const (
	// ConnectionStateDisconnected indicates the stream is not connected.
	ConnectionStateDisconnected ConnectionState = iota
	// ConnectionStateConnecting indicates the stream is establishing a connection.
	ConnectionStateConnecting
	// ConnectionStateConnected indicates the stream is connected and delivering events.
	ConnectionStateConnected
	// ConnectionStateClosed indicates the stream is permanently closed.
	ConnectionStateClosed
)

// String returns the string representation of the connection state.
func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateDisconnected:
		return "disconnected"
	case ConnectionStateConnecting:
		return "connecting"
	case ConnectionStateConnected:
		return "connected"
	case ConnectionStateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Connected reports whether the state maps to the boolean connection
// flag surfaced to consumers.
func (s ConnectionState) Connected() bool {
	return s == ConnectionStateConnected
}

// ConnectionStateCallback is called when the stream connection state changes.
type ConnectionStateCallback func(oldState, newState ConnectionState)

// RetryConfig configures retry behavior for failed requests. It is
// opt-in: a client without one issues every request exactly once,
// which the task status mutation depends on.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts.
	MaxAttempts int
	// InitialDelay is the initial delay between retries.
	InitialDelay time.Duration
	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration
	// Multiplier is the exponential backoff multiplier.
	Multiplier float64
	// RetryableErrors defines which errors should trigger a retry.
	RetryableErrors func(error) bool
}

// DefaultRetryConfig returns a conservative retry configuration for
// callers that opt in via WithRetryConfig.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		RetryableErrors: func(err error) bool {
			return IsRetryableError(err)
		},
	}
}
