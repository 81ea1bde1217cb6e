// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Common errors.
var (
	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client is closed")

	// ErrStreamClosed is returned when reading from a closed stream.
	ErrStreamClosed = errors.New("stream is closed")

	// ErrInvalidResponse is returned when the server response is malformed.
	ErrInvalidResponse = errors.New("invalid server response")
)

// ValidationError represents a configuration or argument validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConnectionError represents a transport-level failure.
type ConnectionError struct {
	Operation string
	URL       string
	Err       error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error during %s to %s: %v", e.Operation, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-2xx response from the server.
type HTTPError struct {
	Operation  string
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s failed: HTTP %d from %s: %s", e.Operation, e.StatusCode, e.URL, e.Body)
}

// Retryable reports whether the status code indicates a transient
// server condition.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// IsRetryableError determines if an error should trigger a retry.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}

	return false
}
