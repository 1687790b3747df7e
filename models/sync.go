// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the single enum-valued synchronization status shared by every
// display surface. It is always derived from the most recent [SyncReport] and
// never mutated independently.
type SyncStatus int

const (
	// SyncIdle means the engine is known but no activity has been observed yet.
	SyncIdle SyncStatus = iota
	// SyncSyncing means an upload or download is currently in flight.
	SyncSyncing
	// SyncSuccess means the engine is connected and has no pending activity.
	SyncSuccess
	// SyncError is reserved for an upstream-supplied error signal; the
	// derivation itself never produces it.
	SyncError
	// SyncOffline means the engine is unreachable or reports no connection.
	SyncOffline
)

// String implements fmt.Stringer for log output and badges.
func (s SyncStatus) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncSyncing:
		return "syncing"
	case SyncSuccess:
		return "success"
	case SyncError:
		return "error"
	case SyncOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// SyncReport is the raw, read-only status snapshot published by the external
// sync engine. The engine owns it; this application only reads it.
type SyncReport struct {
	// Connected reports whether the engine currently has a server connection.
	Connected bool `json:"connected"`

	// Uploading reports whether local changes are being pushed right now.
	Uploading bool `json:"uploading"`

	// Downloading reports whether remote changes are being pulled right now.
	Downloading bool `json:"downloading"`

	// LastSyncedAt is the engine's own record of the last completed
	// reconciliation. Nil when the engine has never completed one.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// SyncState is the derived synchronization state owned by the status service.
// Status, IsConnected and LastSyncTime are recomputed wholesale from the
// latest SyncReport on every update; Error is a manually managed slot that the
// derivation never touches.
type SyncState struct {
	Status       SyncStatus `json:"status"`
	IsConnected  bool       `json:"is_connected"`
	LastSyncTime *time.Time `json:"last_sync_time,omitempty"`
	Error        string     `json:"error,omitempty"`
}
