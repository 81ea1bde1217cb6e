// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Package client provides an HTTP client for the Claw Control mission
// control API: REST snapshot fetchers, the task status mutation, and a
// self-reconnecting event stream subscription.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/tidwall/gjson"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
)

// API endpoint paths.
const (
	agentsPath   = "/api/agents"
	tasksPath    = "/api/tasks"
	messagesPath = "/api/messages"
	streamPath   = "/api/stream"
)

// Client is a mission control API client. It is safe for concurrent
// use. Every REST failure is returned as an error; nothing panics and
// no call retries unless the client was configured with a retry config.
type Client struct {
	opts    *options
	invoker Invoker

	closed  bool
	closeMu sync.Mutex
}

// New creates a new client with the given options. WithBaseURL is
// required.
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.baseURL == "" {
		return nil, &ValidationError{Field: "baseURL", Message: "base URL is required"}
	}

	if o.httpClient == http.DefaultClient {
		o.httpClient = &http.Client{
			Timeout: o.timeout,
			Transport: &http.Transport{
				MaxIdleConns:    o.maxIdleConns,
				MaxConnsPerHost: o.maxConnsPerHost,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}

	interceptors := o.interceptors
	if o.retryConfig != nil && o.retryConfig.MaxAttempts > 0 {
		interceptors = append([]Interceptor{retryInterceptor(o.retryConfig)}, interceptors...)
	}

	c := &Client{opts: o}
	c.invoker = chainInterceptors(interceptors, func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return o.httpClient.Do(req.WithContext(ctx))
	})

	return c, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.opts.baseURL
}

// MessagePageSize returns the page size used for message pagination.
func (c *Client) MessagePageSize() int {
	return c.opts.messagePageSize
}

// Close marks the client closed. Requests issued afterwards fail with
// ErrClientClosed.
func (c *Client) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	c.closed = true
	return nil
}

func (c *Client) checkClosed() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// ListAgents fetches the agent roster.
func (c *Client) ListAgents(ctx context.Context) ([]clawcontrol.Agent, error) {
	body, err := c.get(ctx, agentsPath, "list agents")
	if err != nil {
		return nil, err
	}

	agents := []clawcontrol.Agent{}
	for _, raw := range collectionItems(body, "agents") {
		agent, _, err := clawcontrol.TransformAgent([]byte(raw.Raw))
		if err != nil {
			c.opts.logger.DebugContext(ctx, "skipping malformed agent", "error", err)
			continue
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// GetAgent fetches a single agent, including its profile fields.
func (c *Client) GetAgent(ctx context.Context, id string) (clawcontrol.Agent, error) {
	if id == "" {
		return clawcontrol.Agent{}, &ValidationError{Field: "id", Message: "agent id cannot be empty"}
	}

	body, err := c.get(ctx, agentsPath+"/"+id, "get agent")
	if err != nil {
		return clawcontrol.Agent{}, err
	}

	// Some backends wrap the record in {"agent": {...}}.
	raw := body
	if wrapped := gjson.GetBytes(body, "agent"); wrapped.IsObject() {
		raw = []byte(wrapped.Raw)
	}

	agent, _, err := clawcontrol.TransformAgent(raw)
	if err != nil {
		return clawcontrol.Agent{}, fmt.Errorf("decode agent: %w", ErrInvalidResponse)
	}
	return agent, nil
}

// ListTasks fetches all tasks.
func (c *Client) ListTasks(ctx context.Context) ([]clawcontrol.Task, error) {
	body, err := c.get(ctx, tasksPath, "list tasks")
	if err != nil {
		return nil, err
	}

	tasks := []clawcontrol.Task{}
	for _, raw := range collectionItems(body, "tasks") {
		task, _, err := clawcontrol.TransformTask([]byte(raw.Raw))
		if err != nil {
			c.opts.logger.DebugContext(ctx, "skipping malformed task", "error", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ListMessages fetches one page of feed messages, newest page first.
func (c *Client) ListMessages(ctx context.Context, limit, offset int) ([]clawcontrol.Message, error) {
	if limit <= 0 {
		return nil, &ValidationError{Field: "limit", Message: "limit must be positive"}
	}
	if offset < 0 {
		return nil, &ValidationError{Field: "offset", Message: "offset must be non-negative"}
	}

	path := messagesPath + "?limit=" + strconv.Itoa(limit) + "&offset=" + strconv.Itoa(offset)
	body, err := c.get(ctx, path, "list messages")
	if err != nil {
		return nil, err
	}

	messages := []clawcontrol.Message{}
	for _, raw := range collectionItems(body, "messages") {
		msg, _, err := clawcontrol.TransformMessage([]byte(raw.Raw))
		if err != nil {
			c.opts.logger.DebugContext(ctx, "skipping malformed message", "error", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// UpdateTaskStatus moves a task to a new status. The request is issued
// exactly once unless the client opted in to retries.
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status clawcontrol.TaskStatus) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "task id cannot be empty"}
	}
	if !status.Valid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown task status %q", status)}
	}

	payload, err := json.Marshal(map[string]string{"status": status.String()})
	if err != nil {
		return fmt.Errorf("marshal status update: %w", err)
	}

	url := c.opts.baseURL + tasksPath + "/" + id
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := c.do(ctx, req, "update task status"); err != nil {
		return err
	}
	return nil
}

// get performs a GET against path and returns the response body.
func (c *Client) get(ctx context.Context, path, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.do(ctx, req, operation)
}

// do runs a request through the interceptor chain and returns the body
// of a 2xx response.
func (c *Client) do(ctx context.Context, req *http.Request, operation string) ([]byte, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.userAgent)

	resp, err := c.invoker(ctx, req)
	if err != nil {
		return nil, &ConnectionError{Operation: operation, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Operation: operation, URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			Operation:  operation,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}

// collectionItems extracts the items of a collection response that may
// be a bare array or an object wrapping the array under key. Anything
// else yields no items.
func collectionItems(body []byte, key string) []gjson.Result {
	if !gjson.ValidBytes(body) {
		return nil
	}
	payload := gjson.ParseBytes(body)
	if payload.IsArray() {
		return payload.Array()
	}
	if payload.IsObject() {
		if arr := payload.Get(key); arr.IsArray() {
			return arr.Array()
		}
	}
	return nil
}
