// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor(t *testing.T, probeURL string, timeout time.Duration) *httpMonitor {
	t.Helper()
	m := NewMonitor(config.ClientNetwork{ProbeURL: probeURL, ProbeTimeout: timeout}, logger.Nop())
	return m.(*httpMonitor)
}

func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL + "/health"
	srv.Close()
	return url
}

func TestMonitor_InitialStateUnknown(t *testing.T) {
	m := newTestMonitor(t, "http://localhost:1/health", time.Second)
	assert.Equal(t, StateUnknown, m.State())
	assert.False(t, m.IsOnline())
}

func TestCheckNetworkStatus_AnyResponseIsOnline(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			m := newTestMonitor(t, srv.URL+"/health", time.Second)
			assert.True(t, m.CheckNetworkStatus(context.Background()))
			assert.Equal(t, StateOnline, m.State())
		})
	}
}

func TestCheckNetworkStatus_Unreachable(t *testing.T) {
	m := newTestMonitor(t, unreachableURL(t), time.Second)

	assert.False(t, m.CheckNetworkStatus(context.Background()))
	assert.Equal(t, StateOffline, m.State())
}

func TestCheckNetworkStatus_TimeoutIsOffline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	m := newTestMonitor(t, srv.URL, 150*time.Millisecond)

	start := time.Now()
	assert.False(t, m.CheckNetworkStatus(context.Background()))
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, StateOffline, m.State())
}

func TestCheckNetworkStatus_RetriesTransportErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestMonitor(t, srv.URL, 2*time.Second)
	assert.True(t, m.CheckNetworkStatus(context.Background()))
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestCheckNetworkStatus_CancelledCallerKeepsState(t *testing.T) {
	m := newTestMonitor(t, unreachableURL(t), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, m.CheckNetworkStatus(ctx))
	assert.Equal(t, StateUnknown, m.State())
}

func TestSubscribe_ReceivesTransitionsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	m := newTestMonitor(t, srv.URL, time.Second)

	var (
		mu  sync.Mutex
		got []Transition
	)
	unsubscribe := m.Subscribe(func(tr Transition) {
		mu.Lock()
		got = append(got, tr)
		mu.Unlock()
	})

	m.CheckNetworkStatus(context.Background())
	m.CheckNetworkStatus(context.Background())
	m.ReportOSState(false)

	unsubscribe()
	unsubscribe()
	m.CheckNetworkStatus(context.Background())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, Transition{From: StateUnknown, To: StateOnline, At: got[0].At}, got[0])
	assert.False(t, got[0].CameOnline(), "the first probe is not a reconnect")
	assert.Equal(t, StateOnline, got[1].From)
	assert.Equal(t, StateOffline, got[1].To)
	assert.False(t, got[1].CameOnline())
}

func TestReportOSState_OnlineTriggersProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	m := newTestMonitor(t, srv.URL, time.Second)
	m.ReportOSState(false)
	require.Equal(t, StateOffline, m.State())

	m.ReportOSState(true)
	assert.Eventually(t, m.IsOnline, 2*time.Second, 10*time.Millisecond)
}

func TestRun_ProbesUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	m := newTestMonitor(t, srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 20*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, m.IsOnline())
}

func TestTransition_CameOnline(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{from: StateOffline, to: StateOnline, want: true},
		{from: StateUnknown, to: StateOnline, want: false},
		{from: StateUnknown, to: StateOffline, want: false},
		{from: StateOnline, to: StateOffline, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, Transition{From: tt.from, To: tt.to}.CameOnline())
		})
	}
}
