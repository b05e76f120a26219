// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-memo-sync/internal/config"
	"github.com/MKhiriev/go-memo-sync/internal/logger"
	"github.com/MKhiriev/go-memo-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// orderWorker records lifecycle calls into a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Start(context.Context) { *o.order = append(*o.order, "start "+o.id) }
func (o *orderWorker) Stop()                 { *o.order = append(*o.order, "stop "+o.id) }

func TestWorkers_Order(t *testing.T) {
	var order []string
	ws := &Workers{
		workers: []Worker{&orderWorker{id: "a", order: &order}, &orderWorker{id: "b", order: &order}},
		logger:  logger.Nop(),
	}

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, order)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}

	ws.Run(context.Background())
	ws.Stop()
}

func TestNewClientWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := mock.NewMockMonitor(ctrl)
	job := mock.NewMockClientSyncJob(ctrl)

	cfg := config.ClientConfig{}
	cfg.Network.PollInterval = time.Minute
	cfg.Workers.SyncInterval = 2 * time.Minute
	cfg.Workers.AutoSync = true

	running := make(chan struct{})
	monitor.EXPECT().Run(gomock.Any(), time.Minute).Do(func(ctx context.Context, _ time.Duration) {
		close(running)
		<-ctx.Done()
	})
	job.EXPECT().Start(gomock.Any(), 2*time.Minute)
	job.EXPECT().Stop()

	ws := NewClientWorkers(cfg, monitor, job, logger.Nop())
	ws.Run(context.Background())

	select {
	case <-running:
	case <-time.After(time.Second):
		t.Fatal("monitor poller did not start")
	}
	ws.Stop()
}

func TestNewClientWorkers_AutoSyncDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	ws := NewClientWorkers(config.ClientConfig{}, mock.NewMockMonitor(ctrl), mock.NewMockClientSyncJob(ctrl), logger.Nop())

	assert.Len(t, ws.workers, 1)
}

func TestMonitorWorker_DefaultsAndRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := mock.NewMockMonitor(ctrl)

	started := make(chan struct{}, 2)
	monitor.EXPECT().Run(gomock.Any(), defaultPollInterval).Times(2).Do(func(ctx context.Context, _ time.Duration) {
		started <- struct{}{}
		<-ctx.Done()
	})

	w := newMonitorWorker(monitor, 0, logger.Nop())
	w.Start(context.Background())
	<-started
	w.Start(context.Background())
	<-started
	w.Stop()
	w.Stop()
}

func TestMonitorWorker_ParentCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor := mock.NewMockMonitor(ctrl)
	monitor.EXPECT().Run(gomock.Any(), time.Second).Do(func(ctx context.Context, _ time.Duration) {
		<-ctx.Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	w := newMonitorWorker(monitor, time.Second, logger.Nop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after parent cancel")
	}
}
