// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	clawcontrol "github.com/clawcontrol/clawcontrol-go"
	"github.com/clawcontrol/clawcontrol-go/client/internal/sse"
)

// Stream is a live subscription to the mission control event stream.
// It reconnects on its own after any failure, flipping the connection
// state on every transition. Events arrive on the Events channel
// already parsed into domain events; frames that fail to parse are
// dropped without disturbing the connection.
type Stream struct {
	client  *Client
	invoker Invoker
	events  chan clawcontrol.StreamEvent

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	stateMu sync.Mutex
	state   ConnectionState

	retryMu    sync.Mutex
	retryDelay time.Duration

	closeOnce sync.Once
	eventOnce sync.Once
}

// Subscribe opens a stream subscription. The connection is established
// asynchronously; watch the connection state callback or Connected for
// progress. Canceling ctx stops the stream, but Close should still be
// called to release it.
func (c *Client) Subscribe(ctx context.Context) (*Stream, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Stream{
		client:     c,
		events:     make(chan clawcontrol.StreamEvent, c.opts.streamBufferSize),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		state:      ConnectionStateDisconnected,
		retryDelay: c.opts.streamRetryDelay,
	}

	// The stream bypasses the client's retry interceptor: reconnecting
	// is the stream's own job. Request timeouts would sever a healthy
	// long-lived subscription, so the streaming HTTP client carries
	// none.
	streamHTTP := &http.Client{Transport: c.opts.httpClient.Transport}
	s.invoker = chainInterceptors(c.opts.interceptors, func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return streamHTTP.Do(req.WithContext(ctx))
	})

	go s.readLoop()

	return s, nil
}

// Events returns the channel of parsed stream events. It is closed
// when the stream closes.
func (s *Stream) Events() <-chan clawcontrol.StreamEvent {
	return s.events
}

// State returns the current connection state.
func (s *Stream) State() ConnectionState {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

// Connected reports whether the stream currently holds an open
// connection.
func (s *Stream) Connected() bool {
	return s.State().Connected()
}

// Close tears the stream down. It is synchronous: once Close returns,
// no further events are delivered and no state callback fires.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		s.setState(ConnectionStateClosed)
	})
	s.eventOnce.Do(func() { close(s.events) })
	return nil
}

func (s *Stream) setState(state ConnectionState) {
	s.stateMu.Lock()
	old := s.state
	s.state = state
	s.stateMu.Unlock()

	if old != state && s.client.opts.onConnectionStateChange != nil {
		s.client.opts.onConnectionStateChange(old, state)
	}
}

// readLoop owns the connection: connect, drain events, and on any
// failure wait out the retry delay and connect again.
func (s *Stream) readLoop() {
	defer close(s.done)

	logger := s.client.opts.logger

	for {
		if s.ctx.Err() != nil {
			return
		}

		s.setState(ConnectionStateConnecting)

		resp, err := s.connect()
		if err != nil {
			logger.Debug("stream connect failed", "error", err)
			s.setState(ConnectionStateDisconnected)
			if !s.waitRetry() {
				return
			}
			continue
		}

		s.setState(ConnectionStateConnected)
		s.drain(resp)
		resp.Body.Close()

		if s.ctx.Err() != nil {
			s.setStateQuiet(ConnectionStateDisconnected)
			return
		}

		s.setState(ConnectionStateDisconnected)
		if !s.waitRetry() {
			return
		}
	}
}

// setStateQuiet records a state without firing the callback, for the
// teardown path where the consumer initiated the transition.
func (s *Stream) setStateQuiet(state ConnectionState) {
	s.stateMu.Lock()
	s.state = state
	s.stateMu.Unlock()
}

func (s *Stream) connect() (*http.Response, error) {
	url := s.client.opts.baseURL + streamPath
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", s.client.opts.userAgent)

	resp, err := s.invoker(s.ctx, req)
	if err != nil {
		return nil, &ConnectionError{Operation: "subscribe", URL: url, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &HTTPError{Operation: "subscribe", URL: url, StatusCode: resp.StatusCode}
	}
	return resp, nil
}

// drain decodes SSE frames until the connection fails or the stream is
// canceled.
func (s *Stream) drain(resp *http.Response) {
	logger := s.client.opts.logger
	decoder := sse.NewDecoder(resp.Body)

	for {
		frame, err := decoder.Decode()
		if err != nil {
			return
		}

		if frame.Retry > 0 {
			s.retryMu.Lock()
			s.retryDelay = time.Duration(frame.Retry) * time.Millisecond
			s.retryMu.Unlock()
		}

		if frame.Type == "" && frame.Data == "" {
			continue
		}

		event, err := clawcontrol.ParseStreamEvent(frame.Type, []byte(frame.Data))
		if err != nil {
			// One bad frame never takes the stream down.
			logger.Debug("dropping stream event", "event", frame.Type, "error", err)
			continue
		}

		select {
		case s.events <- event:
		case <-s.ctx.Done():
			return
		}
	}
}

// waitRetry sleeps out the retry delay. It returns false when the
// stream was canceled while waiting.
func (s *Stream) waitRetry() bool {
	s.retryMu.Lock()
	delay := s.retryDelay
	s.retryMu.Unlock()

	select {
	case <-time.After(delay):
		return true
	case <-s.ctx.Done():
		return false
	}
}
