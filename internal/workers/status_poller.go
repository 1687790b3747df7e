package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/service"
)

// StatusPoller adapts the background status job to the [Worker] interface so
// it can run alongside other workers in a [Workers] aggregate.
type StatusPoller struct {
	ctx      context.Context
	job      service.StatusJob
	interval time.Duration
}

// NewStatusPoller wraps the status job with the lifetime context and poll
// interval it should run with.
func NewStatusPoller(ctx context.Context, job service.StatusJob, interval time.Duration) *StatusPoller {
	return &StatusPoller{ctx: ctx, job: job, interval: interval}
}

// Run implements Worker. It starts the polling goroutine and returns
// immediately; the goroutine stops when the poller's context is cancelled or
// Stop is called.
func (p *StatusPoller) Run() {
	p.job.Start(p.ctx, p.interval)
}

// Stop blocks until the polling goroutine has exited.
func (p *StatusPoller) Stop() {
	p.job.Stop()
}
