// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"os"
)

// Base URL resolution.
const (
	// EnvAPIBaseURL is the environment variable naming the API base URL.
	EnvAPIBaseURL = "CLAW_API_URL"

	// DefaultBaseURL is used when nothing else is configured.
	DefaultBaseURL = "http://localhost:3001"
)

// ResolveBaseURL picks the API base URL: an explicit value wins, then
// the environment, then the default.
func ResolveBaseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvAPIBaseURL); env != "" {
		return env
	}
	return DefaultBaseURL
}
