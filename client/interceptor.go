// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Invoker executes an HTTP request.
type Invoker func(ctx context.Context, req *http.Request) (*http.Response, error)

// Interceptor wraps request execution, analogous to middleware.
type Interceptor func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error)

// chainInterceptors chains multiple interceptors together, first
// interceptor outermost.
func chainInterceptors(interceptors []Interceptor, invoker Invoker) Invoker {
	if len(interceptors) == 0 {
		return invoker
	}

	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor := interceptors[i]
		next := invoker
		invoker = func(ctx context.Context, req *http.Request) (*http.Response, error) {
			return interceptor(ctx, req, next)
		}
	}

	return invoker
}

// RequestIDInterceptor stamps every request with a unique X-Request-ID
// header for server-side correlation.
func RequestIDInterceptor() Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		if req.Header.Get("X-Request-ID") == "" {
			req.Header.Set("X-Request-ID", uuid.NewString())
		}
		return invoker(ctx, req)
	}
}

// HeaderInterceptor sets a static header on every request.
func HeaderInterceptor(key, value string) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		req.Header.Set(key, value)
		return invoker(ctx, req)
	}
}

// LoggingInterceptor logs each request and its outcome at debug level.
func LoggingInterceptor(logger *slog.Logger) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		start := time.Now()
		resp, err := invoker(ctx, req)
		attrs := []any{
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Duration("elapsed", time.Since(start)),
		}
		if err != nil {
			logger.DebugContext(ctx, "request failed", append(attrs, slog.Any("error", err))...)
			return resp, err
		}
		logger.DebugContext(ctx, "request completed", append(attrs, slog.Int("status", resp.StatusCode))...)
		return resp, nil
	}
}
