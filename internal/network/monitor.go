// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/utils"
	"github.com/sethvargo/go-retry"
)

const (
	probeBackoffBase = 100 * time.Millisecond
	probeMaxRetries  = 2
)

type httpMonitor struct {
	client       *utils.HTTPClient
	probeURL     string
	probeTimeout time.Duration

	mu        sync.RWMutex
	state     State
	listeners map[uint64]func(Transition)
	nextID    uint64

	// delivery serialises state changes with their notifications so that
	// subscribers see transitions in order.
	delivery sync.Mutex

	now    func() time.Time
	logger *logger.Logger
}

// NewMonitor returns a [Monitor] probing cfg.ProbeURL. The initial state is
// [StateUnknown].
func NewMonitor(cfg config.ClientNetwork, logger *logger.Logger) Monitor {
	return &httpMonitor{
		client:       utils.NewHTTPClient("", cfg.ProbeTimeout),
		probeURL:     cfg.ProbeURL,
		probeTimeout: cfg.ProbeTimeout,
		state:        StateUnknown,
		listeners:    make(map[uint64]func(Transition)),
		now:          time.Now,
		logger:       logger,
	}
}

func (m *httpMonitor) IsOnline() bool {
	return m.State() == StateOnline
}

func (m *httpMonitor) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *httpMonitor) CheckNetworkStatus(ctx context.Context) bool {
	err := m.probe(ctx)
	if err != nil && ctx.Err() != nil {
		// caller gave up; the probe says nothing about the server
		return m.IsOnline()
	}

	if err != nil {
		m.logger.Debug().Err(err).Str("func", "httpMonitor.CheckNetworkStatus").Str("probe_url", m.probeURL).Msg("server unreachable")
		m.setState(StateOffline)
		return false
	}

	m.setState(StateOnline)
	return true
}

// probe issues GET probeURL with retries inside one probe timeout. Any HTTP
// response, whatever the status, proves the server is reachable.
func (m *httpMonitor) probe(ctx context.Context) error {
	if m.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.probeTimeout)
		defer cancel()
	}

	backoff := retry.WithMaxRetries(probeMaxRetries, retry.NewExponential(probeBackoffBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := m.client.R().SetContext(ctx).Get(m.probeURL)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return err
			}
			return retry.RetryableError(err)
		}
		m.logger.Debug().Str("func", "httpMonitor.probe").Int("status", resp.StatusCode()).Msg("probe answered")
		return nil
	})
}

func (m *httpMonitor) ReportOSState(online bool) {
	if online {
		// an interface coming up does not prove the server is reachable
		go m.CheckNetworkStatus(context.Background())
		return
	}
	m.setState(StateOffline)
}

func (m *httpMonitor) Subscribe(fn func(Transition)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

func (m *httpMonitor) Run(ctx context.Context, interval time.Duration) {
	m.CheckNetworkStatus(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Str("func", "httpMonitor.Run").Msg("network monitor stopped")
			return
		case <-ticker.C:
			m.CheckNetworkStatus(ctx)
		}
	}
}

func (m *httpMonitor) setState(next State) {
	m.delivery.Lock()
	defer m.delivery.Unlock()

	m.mu.Lock()
	prev := m.state
	m.state = next
	if prev == next {
		m.mu.Unlock()
		return
	}
	t := Transition{From: prev, To: next, At: m.now()}
	listeners := make([]func(Transition), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	m.logger.Info().Str("func", "httpMonitor.setState").Str("from", string(prev)).Str("to", string(next)).Msg("network state changed")

	for _, fn := range listeners {
		fn(t)
	}
}
