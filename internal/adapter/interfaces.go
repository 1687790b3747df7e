// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the boundary to the external local-first sync
// engine. The engine itself (its network, retry, and conflict-resolution
// logic) is out of scope; only its status-report interface is consumed.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-focus-keeper/models"
)

// SyncEngine is the status-report interface of the external sync engine.
//
// Consumers always combine the two halves the same way: a push-style change
// notification (payload-free — the observed report is re-read via Report,
// never trusted from the notification) and a pull-style accessor for the
// current report snapshot.
type SyncEngine interface {
	// Report returns the most recently observed raw status report.
	// ok is false when the engine is unreachable or has not been observed
	// yet; in that case the report value is meaningless.
	Report() (report models.SyncReport, ok bool)

	// Refresh re-reads the engine's status endpoint and updates the snapshot
	// returned by Report. Registered OnChange callbacks fire when the
	// observed report differs from the previous one, including transitions
	// to and from the unreachable state.
	Refresh(ctx context.Context) error

	// OnChange registers a payload-free change callback. The returned
	// function deregisters it; consumers must call it on teardown.
	OnChange(fn func()) (unsubscribe func())
}
