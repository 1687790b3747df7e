// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local persistence layer: an SQLite
// database holding tasks and recorded focus sessions. The schema is owned by
// the external sync engine's data model; this layer only reads and writes
// the local replica.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-focus-keeper/models"
)

// TaskRepository provides CRUD access to the locally stored task list.
type TaskRepository interface {
	// CreateTask persists a new task and returns it unchanged.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// GetAllTasks returns every stored task ordered by creation time.
	GetAllTasks(ctx context.Context) ([]models.Task, error)

	// DeleteTask removes the task with the given id.
	// Returns [ErrTaskNotFound] when no such task exists.
	DeleteTask(ctx context.Context, id string) error
}

// SessionRepository stores recorded focus sessions and aggregates them for
// reports.
type SessionRepository interface {
	// SaveSession persists one recorded focus session.
	SaveSession(ctx context.Context, session models.FocusSession) error

	// GetSessionsByRange returns every session started in [from, to),
	// ordered by start time.
	GetSessionsByRange(ctx context.Context, from, to time.Time) ([]models.FocusSession, error)

	// GetTotalsByRange returns per-task focus totals for sessions started
	// in [from, to), longest total first.
	GetTotalsByRange(ctx context.Context, from, to time.Time) ([]models.TaskTotal, error)
}
