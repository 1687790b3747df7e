// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's domain logic: task and session
// management over local storage, derivation of the synchronization state from
// the external engine's raw report, coordination of revealable list rows, and
// the pure timer presentation math. Everything here is UI-agnostic; the
// terminal layer only renders what these services produce.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-focus-keeper/models"
)

// TaskService defines the contract for managing the user's task list.
type TaskService interface {
	// CreateTask validates the title, assigns a new id, and persists the
	// task. Returns the stored task or [ErrEmptyTaskTitle] when the title is
	// blank after trimming.
	CreateTask(ctx context.Context, title string) (models.Task, error)

	// GetAllTasks returns every stored task, oldest first.
	GetAllTasks(ctx context.Context) ([]models.Task, error)

	// DeleteTask removes the task with the given id. Recorded sessions of
	// the task are kept; reports show them under an empty title.
	DeleteTask(ctx context.Context, id string) error
}

// SessionService defines the contract for recording finished focus sessions
// and aggregating them into daily reports.
type SessionService interface {
	// RecordSession persists one finished stretch of focus work. completed
	// marks whether the session reached its full target length.
	RecordSession(ctx context.Context, taskID string, startedAt time.Time, durationSeconds int, completed bool) error

	// DailyReport aggregates all sessions started on the calendar day
	// containing the given moment, in that moment's timezone.
	DailyReport(ctx context.Context, day time.Time) (models.DailyReport, error)
}

// StatusJob defines the contract for the background worker that keeps the
// derived sync state fresh by periodically polling the engine.
type StatusJob interface {
	// Start launches the polling goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
