// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-focus-keeper/internal/adapter"
	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/models"
)

// SyncStatusService collapses the engine's multi-field raw report into the
// single [models.SyncState] consumed by every display surface, so that all of
// them agree on what "syncing" means.
//
// It is an explicit subject/observer pair: State reads the derived state,
// Subscribe registers observers, and notification happens synchronously
// inside UpdateStatus, in subscription order. SetError and ClearError manage
// the upstream error slot without triggering notification — the slot is not
// part of the derivation.
type SyncStatusService struct {
	engine adapter.SyncEngine
	log    *logger.Logger

	mu    sync.RWMutex
	state models.SyncState

	subMu   sync.Mutex
	subs    map[int]func(models.SyncState)
	subIDs  []int
	nextSub int
}

// NewSyncStatusService creates a deriver reading from the given engine
// boundary. Before the first UpdateStatus the state reflects an absent
// report: offline, disconnected, no last-sync time.
func NewSyncStatusService(engine adapter.SyncEngine, log *logger.Logger) *SyncStatusService {
	return &SyncStatusService{
		engine: engine,
		log:    log,
		state:  models.SyncState{Status: models.SyncOffline},
		subs:   make(map[int]func(models.SyncState)),
	}
}

// UpdateStatus re-reads the current raw report and recomputes the full
// derived state. Call it from the engine's change notification or manually;
// repeated calls with an unchanged report produce an unchanged state.
// Derivation never fails: every report shape, including total absence, maps
// to a defined status.
func (s *SyncStatusService) UpdateStatus() {
	report, ok := s.engine.Report()

	s.mu.Lock()
	s.state.Status = deriveStatus(report, ok)
	s.state.IsConnected = ok && report.Connected
	if ok {
		s.state.LastSyncTime = report.LastSyncedAt
	} else {
		s.state.LastSyncTime = nil
	}
	state := s.state
	s.mu.Unlock()

	s.log.Debug().
		Stringer("status", state.Status).
		Bool("connected", state.IsConnected).
		Msg("sync status recomputed")

	s.notify(state)
}

// deriveStatus implements the priority-ordered derivation rule; first match
// wins.
func deriveStatus(report models.SyncReport, ok bool) models.SyncStatus {
	switch {
	case !ok:
		return models.SyncOffline
	case report.Uploading || report.Downloading:
		return models.SyncSyncing
	case report.Connected:
		return models.SyncSuccess
	default:
		return models.SyncOffline
	}
}

// Refresh polls the engine once and recomputes the derived state. The state
// is recomputed even when the poll fails, so it can settle on offline. The
// poll error is returned for the caller to surface.
func (s *SyncStatusService) Refresh(ctx context.Context) error {
	err := s.engine.Refresh(ctx)
	s.UpdateStatus()
	return err
}

// State returns a copy of the current derived state.
func (s *SyncStatusService) State() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetError stores an upstream-supplied error message in the state's error
// slot. Status, IsConnected and LastSyncTime are not touched; the slot is
// outside the derivation path.
func (s *SyncStatusService) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = message
}

// ClearError empties the error slot without touching any derived field.
func (s *SyncStatusService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// Subscribe registers a callback invoked with the fresh state after every
// recomputation. Callbacks run synchronously inside UpdateStatus, in
// subscription order. The returned function deregisters the callback;
// consumers must call it on teardown.
func (s *SyncStatusService) Subscribe(fn func(models.SyncState)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subIDs = append(s.subIDs, id)

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
		for i, sid := range s.subIDs {
			if sid == id {
				s.subIDs = append(s.subIDs[:i], s.subIDs[i+1:]...)
				break
			}
		}
	}
}

func (s *SyncStatusService) notify(state models.SyncState) {
	s.subMu.Lock()
	callbacks := make([]func(models.SyncState), 0, len(s.subIDs))
	for _, id := range s.subIDs {
		if fn, exists := s.subs[id]; exists {
			callbacks = append(callbacks, fn)
		}
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}
