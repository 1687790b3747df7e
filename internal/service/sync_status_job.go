// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/adapter"
)

type statusJob struct {
	engine adapter.SyncEngine
	status *SyncStatusService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatusJob creates a statusJob that refreshes the engine report and
// recomputes the derived state on a ticker. The job is idle until Start is
// called.
func NewStatusJob(engine adapter.SyncEngine, status *SyncStatusService) StatusJob {
	return &statusJob{engine: engine, status: status}
}

// Start implements StatusJob. It stops any previously running job, then
// launches a background goroutine that polls the engine every interval. If
// interval is zero or negative it defaults to 30 seconds. A failed poll still
// triggers a recomputation so the state can settle on offline. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *statusJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.engine.Refresh(jobCtx)
				j.status.UpdateStatus()
			}
		}
	}()
}

// Stop implements StatusJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *statusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
