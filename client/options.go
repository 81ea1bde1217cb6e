// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*options) error

// options holds all configuration for a Client.
type options struct {
	// Core configuration
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger

	// Connection settings
	timeout         time.Duration
	maxIdleConns    int
	maxConnsPerHost int

	// Retry configuration, nil by default
	retryConfig *RetryConfig

	// Interceptors
	interceptors []Interceptor

	// Stream configuration
	streamBufferSize        int
	streamRetryDelay        time.Duration
	onConnectionStateChange ConnectionStateCallback

	// Pagination
	messagePageSize int
}

// defaultOptions returns default client options.
func defaultOptions() *options {
	return &options{
		httpClient:       http.DefaultClient,
		userAgent:        "clawcontrol-go",
		logger:           slog.Default(),
		timeout:          30 * time.Second,
		maxIdleConns:     100,
		maxConnsPerHost:  10,
		streamBufferSize: 256,
		streamRetryDelay: 3 * time.Second,
		messagePageSize:  40,
	}
}

// WithBaseURL sets the base URL of the mission control API.
func WithBaseURL(url string) Option {
	return func(o *options) error {
		if url == "" {
			return &ValidationError{Field: "baseURL", Message: "base URL cannot be empty"}
		}
		o.baseURL = url
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		if client == nil {
			return &ValidationError{Field: "httpClient", Message: "HTTP client cannot be nil"}
		}
		o.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		if ua == "" {
			return &ValidationError{Field: "userAgent", Message: "user agent cannot be empty"}
		}
		o.userAgent = ua
		return nil
	}
}

// WithLogger sets the structured logger used by the client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &ValidationError{Field: "logger", Message: "logger cannot be nil"}
		}
		o.logger = logger
		return nil
	}
}

// WithTimeout sets the default timeout for REST requests. It does not
// apply to stream subscriptions, which stay open indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return &ValidationError{Field: "timeout", Message: "timeout must be positive"}
		}
		o.timeout = timeout
		return nil
	}
}

// WithRetryConfig opts in to request retries. Without it every request
// is issued exactly once.
func WithRetryConfig(config *RetryConfig) Option {
	return func(o *options) error {
		if config == nil {
			return &ValidationError{Field: "retryConfig", Message: "retry config cannot be nil"}
		}
		if config.MaxAttempts < 0 {
			return &ValidationError{Field: "retryConfig.MaxAttempts", Message: "max attempts must be non-negative"}
		}
		o.retryConfig = config
		return nil
	}
}

// WithInterceptor adds an interceptor to the client.
func WithInterceptor(interceptor Interceptor) Option {
	return func(o *options) error {
		if interceptor == nil {
			return &ValidationError{Field: "interceptor", Message: "interceptor cannot be nil"}
		}
		o.interceptors = append(o.interceptors, interceptor)
		return nil
	}
}

// WithConnectionStateCallback sets a callback for stream connection
// state changes.
func WithConnectionStateCallback(callback ConnectionStateCallback) Option {
	return func(o *options) error {
		o.onConnectionStateChange = callback
		return nil
	}
}

// WithStreamBufferSize sets the buffer size of the stream event channel.
func WithStreamBufferSize(size int) Option {
	return func(o *options) error {
		if size <= 0 {
			return &ValidationError{Field: "streamBufferSize", Message: "stream buffer size must be positive"}
		}
		o.streamBufferSize = size
		return nil
	}
}

// WithStreamRetryDelay sets the delay before the stream reconnects
// after a failure. A server retry hint overrides it per connection.
func WithStreamRetryDelay(delay time.Duration) Option {
	return func(o *options) error {
		if delay <= 0 {
			return &ValidationError{Field: "streamRetryDelay", Message: "stream retry delay must be positive"}
		}
		o.streamRetryDelay = delay
		return nil
	}
}

// WithMessagePageSize sets the page size used by ListMessages callers
// that page through history.
func WithMessagePageSize(size int) Option {
	return func(o *options) error {
		if size <= 0 {
			return &ValidationError{Field: "messagePageSize", Message: "message page size must be positive"}
		}
		o.messagePageSize = size
		return nil
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return &ValidationError{Field: "maxIdleConns", Message: "max idle connections must be non-negative"}
		}
		o.maxIdleConns = n
		return nil
	}
}

// WithMaxConnsPerHost sets the maximum number of connections per host.
func WithMaxConnsPerHost(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return &ValidationError{Field: "maxConnsPerHost", Message: "max connections per host must be positive"}
		}
		o.maxConnsPerHost = n
		return nil
	}
}
