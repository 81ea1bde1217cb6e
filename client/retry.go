// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// retryableFunc is a function that can be retried.
type retryableFunc func(context.Context) error

// withRetry executes a function with retry logic.
func withRetry(ctx context.Context, config *RetryConfig, operation string, fn retryableFunc) error {
	if config == nil || config.MaxAttempts <= 0 {
		return fn(ctx)
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		if config.RetryableErrors != nil && !config.RetryableErrors(err) {
			return err
		}

		if attempt == config.MaxAttempts-1 {
			break
		}

		// Add jitter to delay (10% variance)
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.1)
		actualDelay := delay + jitter

		select {
		case <-time.After(actualDelay):
		case <-ctx.Done():
			return ctx.Err()
		}

		delay = time.Duration(float64(delay) * config.Multiplier)
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return fmt.Errorf("operation %s failed after %d attempts: %w", operation, config.MaxAttempts, lastErr)
}

// retryInterceptor creates an HTTP interceptor that adds retry logic.
// Installed only when the client is configured with a retry config.
func retryInterceptor(config *RetryConfig) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		var resp *http.Response

		err := withRetry(ctx, config, "HTTP request", func(ctx context.Context) error {
			var err error
			resp, err = invoker(ctx, req)
			if err != nil {
				return err
			}

			if resp.StatusCode >= 500 || resp.StatusCode == 429 {
				return &HTTPError{
					Operation:  "HTTP request",
					URL:        req.URL.String(),
					StatusCode: resp.StatusCode,
				}
			}

			return nil
		})

		return resp, err
	}
}
