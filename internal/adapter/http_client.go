package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/config"
	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/models"
	"github.com/go-resty/resty/v2"
)

const statusEndpoint = "/api/engine/status"

type httpEngineAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu        sync.RWMutex
	report    models.SyncReport
	hasReport bool

	subMu   sync.Mutex
	subs    map[int]func()
	subIDs  []int
	nextSub int
}

// NewHTTPEngineAdapter creates a SyncEngine backed by the engine's local HTTP
// status endpoint. The adapter holds the last observed report in memory; call
// Refresh (typically from a background job) to re-read the endpoint.
func NewHTTPEngineAdapter(cfg config.ClientEngine, log *logger.Logger) (SyncEngine, error) {
	if cfg.Address == "" {
		return nil, errors.New("engine address is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Address, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpEngineAdapter{
		client: cli,
		log:    log,
		subs:   make(map[int]func()),
	}, nil
}

// Report implements SyncEngine.
func (a *httpEngineAdapter) Report() (models.SyncReport, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.report, a.hasReport
}

// Refresh implements SyncEngine. A request failure is not terminal: the
// snapshot transitions to "no report available" and the next successful
// Refresh brings it back.
func (a *httpEngineAdapter) Refresh(ctx context.Context) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(statusEndpoint)
	if err != nil {
		a.setReport(models.SyncReport{}, false)
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		a.setReport(models.SyncReport{}, false)
		return fmt.Errorf("%w: status %d", ErrBadStatusResponse, resp.StatusCode())
	}

	var report models.SyncReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		a.setReport(models.SyncReport{}, false)
		return fmt.Errorf("%w: decode: %v", ErrBadStatusResponse, err)
	}

	a.setReport(report, true)
	return nil
}

// OnChange implements SyncEngine. Callbacks run synchronously inside the
// Refresh call that observed the change, in registration order.
func (a *httpEngineAdapter) OnChange(fn func()) func() {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.subIDs = append(a.subIDs, id)

	return func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()
		delete(a.subs, id)
		for i, sid := range a.subIDs {
			if sid == id {
				a.subIDs = append(a.subIDs[:i], a.subIDs[i+1:]...)
				break
			}
		}
	}
}

func (a *httpEngineAdapter) setReport(report models.SyncReport, ok bool) {
	a.mu.Lock()
	changed := a.hasReport != ok || !sameReport(a.report, report)
	a.report = report
	a.hasReport = ok
	a.mu.Unlock()

	if !changed {
		return
	}

	a.log.Debug().
		Bool("available", ok).
		Bool("connected", report.Connected).
		Bool("uploading", report.Uploading).
		Bool("downloading", report.Downloading).
		Msg("engine report changed")

	for _, fn := range a.snapshotSubs() {
		fn()
	}
}

func (a *httpEngineAdapter) snapshotSubs() []func() {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	out := make([]func(), 0, len(a.subIDs))
	for _, id := range a.subIDs {
		if fn, exists := a.subs[id]; exists {
			out = append(out, fn)
		}
	}
	return out
}

// sameReport compares two raw reports field by field; pointer timestamps are
// compared by value.
func sameReport(a, b models.SyncReport) bool {
	if a.Connected != b.Connected || a.Uploading != b.Uploading || a.Downloading != b.Downloading {
		return false
	}
	if (a.LastSyncedAt == nil) != (b.LastSyncedAt == nil) {
		return false
	}
	if a.LastSyncedAt != nil && !a.LastSyncedAt.Equal(*b.LastSyncedAt) {
		return false
	}
	return true
}
