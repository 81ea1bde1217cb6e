// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboard wires the mission control client, the event
// stream, and the state containers into one controller. It owns the
// fetch/refresh lifecycle, the periodic message poll, and the
// optimistic task move. No failure is fatal: errors degrade to stale
// or empty data behind per-resource error strings.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
	"github.com/clawcontrol/clawcontrol-go/client"
	"github.com/clawcontrol/clawcontrol-go/state"
)

// DefaultPollInterval is how often the message feed is re-fetched.
// The poll overlaps with stream delivery on purpose; whichever source
// lands last wins.
const DefaultPollInterval = 5 * time.Second

// Option configures a Dashboard.
type Option func(*Dashboard) error

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		d.logger = logger
		return nil
	}
}

// WithPollInterval sets the message poll interval.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Dashboard) error {
		if interval <= 0 {
			return errors.New("poll interval must be positive")
		}
		d.pollInterval = interval
		return nil
	}
}

// WithMessageCapacity sets the live message window bound.
func WithMessageCapacity(capacity int) Option {
	return func(d *Dashboard) error {
		if capacity <= 0 {
			return errors.New("message capacity must be positive")
		}
		d.messages = state.NewMessageLogWithCapacity(capacity)
		return nil
	}
}

// Status is a snapshot of the controller's observable flags.
type Status struct {
	AgentsLoading   bool
	TasksLoading    bool
	MessagesLoading bool

	AgentsError   string
	TasksError    string
	MessagesError string

	LoadingMore bool
	HasMore     bool
	TotalLoaded int

	Connected bool
}

// Dashboard is the mission control controller. Create one per
// consumer; it holds no ambient global state and tears down
// synchronously.
type Dashboard struct {
	client       *client.Client
	logger       *slog.Logger
	pollInterval time.Duration
	pageSize     int

	agents   *state.AgentSet
	tasks    *state.TaskSet
	messages *state.MessageLog

	stream *client.Stream
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu              sync.Mutex
	started         bool
	stopped         bool
	agentsLoading   bool
	tasksLoading    bool
	messagesLoading bool
	agentsErr       string
	tasksErr        string
	messagesErr     string
	loadingMore     bool
	hasMore         bool
	totalLoaded     int
}

// New creates a dashboard over the given client.
func New(c *client.Client, opts ...Option) (*Dashboard, error) {
	if c == nil {
		return nil, errors.New("client cannot be nil")
	}

	d := &Dashboard{
		client:          c,
		logger:          slog.Default(),
		pollInterval:    DefaultPollInterval,
		pageSize:        c.MessagePageSize(),
		agents:          state.NewAgentSet(),
		tasks:           state.NewTaskSet(),
		messages:        state.NewMessageLog(),
		agentsLoading:   true,
		tasksLoading:    true,
		messagesLoading: true,
		hasMore:         true,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Agents returns the agent roster container.
func (d *Dashboard) Agents() *state.AgentSet {
	return d.agents
}

// Tasks returns the task container.
func (d *Dashboard) Tasks() *state.TaskSet {
	return d.tasks
}

// Messages returns the message feed container.
func (d *Dashboard) Messages() *state.MessageLog {
	return d.messages
}

// Board returns the kanban projection of the current tasks.
func (d *Dashboard) Board() clawcontrol.Board {
	return d.tasks.Board()
}

// Status returns the current flag snapshot.
func (d *Dashboard) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{
		AgentsLoading:   d.agentsLoading,
		TasksLoading:    d.tasksLoading,
		MessagesLoading: d.messagesLoading,
		AgentsError:     d.agentsErr,
		TasksError:      d.tasksErr,
		MessagesError:   d.messagesErr,
		LoadingMore:     d.loadingMore,
		HasMore:         d.hasMore,
		TotalLoaded:     d.totalLoaded,
		Connected:       d.stream != nil && d.stream.Connected(),
	}
}

// Start performs the initial snapshot fetches, opens the event stream,
// and begins the message poll. Fetch failures are recorded in Status,
// not returned; only a failure to open the subscription is an error.
func (d *Dashboard) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return errors.New("dashboard already started")
	}
	if d.stopped {
		d.mu.Unlock()
		return errors.New("dashboard is stopped")
	}
	d.started = true
	ctx, d.cancel = context.WithCancel(ctx)
	d.mu.Unlock()

	d.RefreshAgents(ctx)
	d.RefreshTasks(ctx)
	d.RefreshMessages(ctx)

	stream, err := d.client.Subscribe(ctx)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.stream = stream
	d.mu.Unlock()

	d.wg.Add(2)
	go d.eventLoop(stream)
	go d.pollLoop(ctx)

	return nil
}

// Stop tears the dashboard down. It is synchronous: once Stop
// returns, no event or late fetch completion writes state.
func (d *Dashboard) Stop() error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	stream := d.stream
	cancel := d.cancel
	d.mu.Unlock()

	if stream != nil {
		stream.Close()
	}
	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
	return nil
}

// inert reports whether the controller has been stopped. Late
// completions consult it before touching state.
func (d *Dashboard) inert() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

// RefreshAgents re-fetches the agent roster. On failure the error flag
// is set and prior data is kept.
func (d *Dashboard) RefreshAgents(ctx context.Context) {
	agents, err := d.client.ListAgents(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.agentsLoading = false
	if err != nil {
		d.agentsErr = err.Error()
		d.logger.WarnContext(ctx, "agent fetch failed", "error", err)
		return
	}
	d.agentsErr = ""
	d.agents.Replace(agents)
}

// RefreshTasks re-fetches the task set. On failure the error flag is
// set and prior data is kept.
func (d *Dashboard) RefreshTasks(ctx context.Context) {
	tasks, err := d.client.ListTasks(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.tasksLoading = false
	if err != nil {
		d.tasksErr = err.Error()
		d.logger.WarnContext(ctx, "task fetch failed", "error", err)
		return
	}
	d.tasksErr = ""
	d.tasks.Replace(tasks)
}

// RefreshMessages re-fetches the latest page of the feed, replacing
// the live window and resetting pagination.
func (d *Dashboard) RefreshMessages(ctx context.Context) {
	page, err := d.client.ListMessages(ctx, d.pageSize, 0)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.messagesLoading = false
	if err != nil {
		d.messagesErr = err.Error()
		d.logger.WarnContext(ctx, "message fetch failed", "error", err)
		return
	}
	d.messagesErr = ""
	d.messages.Replace(page)
	d.totalLoaded = len(page)
	d.hasMore = len(page) >= d.pageSize
}

// LoadMore fetches the next page of older messages and prepends it.
// A page shorter than the page size, or a failed load, stops further
// pages from being offered.
func (d *Dashboard) LoadMore(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped || d.loadingMore || !d.hasMore {
		d.mu.Unlock()
		return nil
	}
	d.loadingMore = true
	offset := d.totalLoaded
	d.mu.Unlock()

	page, err := d.client.ListMessages(ctx, d.pageSize, offset)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadingMore = false
	if d.stopped {
		return nil
	}
	if err != nil {
		d.messagesErr = err.Error()
		d.hasMore = false
		return err
	}
	d.messagesErr = ""
	if len(page) < d.pageSize {
		d.hasMore = false
	}
	if len(page) > 0 {
		d.messages.PrependOlder(page)
		d.totalLoaded += len(page)
	}
	return nil
}

// MoveTask optimistically moves a task to a new status, then issues
// the PATCH. An unknown id is a no-op. On transport failure the
// optimistic write is discarded by re-fetching the full task set; the
// mutation itself is never retried.
func (d *Dashboard) MoveTask(ctx context.Context, taskID string, newStatus clawcontrol.TaskStatus) error {
	if !newStatus.Valid() {
		return errors.New("unknown task status " + string(newStatus))
	}
	if _, ok := d.tasks.Get(taskID); !ok {
		return nil
	}

	d.tasks.SetStatus(taskID, newStatus)

	if err := d.client.UpdateTaskStatus(ctx, taskID, newStatus); err != nil {
		d.logger.WarnContext(ctx, "task move rejected, reverting", "task", taskID, "error", err)
		d.RefreshTasks(ctx)
		return err
	}
	return nil
}

// Connected reports whether the event stream currently holds an open
// connection.
func (d *Dashboard) Connected() bool {
	d.mu.Lock()
	stream := d.stream
	d.mu.Unlock()
	return stream != nil && stream.Connected()
}

func (d *Dashboard) eventLoop(stream *client.Stream) {
	defer d.wg.Done()
	for ev := range stream.Events() {
		if d.inert() {
			return
		}
		d.handleEvent(ev)
	}
}

// handleEvent applies one stream event to local state.
func (d *Dashboard) handleEvent(ev clawcontrol.StreamEvent) {
	switch ev := ev.(type) {
	case clawcontrol.InitEvent:
		// The init snapshot is authoritative for whichever collections
		// it carries.
		if ev.Snapshot.Agents != nil {
			d.agents.Replace(ev.Snapshot.Agents)
		}
		if ev.Snapshot.Tasks != nil {
			d.tasks.Replace(ev.Snapshot.Tasks)
		}
	case clawcontrol.AgentEvent:
		d.agents.Upsert(ev.Agent, ev.Fields)
	case clawcontrol.TaskEvent:
		d.tasks.Upsert(ev.Task, ev.Fields)
	case clawcontrol.TaskDeletedEvent:
		d.tasks.Delete(ev.ID)
	case clawcontrol.MessageEvent:
		d.messages.Append(ev.Message)
	}
}

func (d *Dashboard) pollLoop(ctx context.Context) {
	defer d.wg.Done()
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.RefreshMessages(ctx)
		}
	}
}
