// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FocusSession is one recorded stretch of focused work on a task. A session is
// written once when the timer stops and never updated afterwards.
type FocusSession struct {
	ID              string    `json:"id" db:"id"`
	TaskID          string    `json:"task_id" db:"task_id"`
	StartedAt       time.Time `json:"started_at" db:"started_at"`
	DurationSeconds int       `json:"duration_seconds" db:"duration_seconds"`
	Completed       bool      `json:"completed" db:"completed"`
}

// TaskTotal is the aggregated focus time of a single task within a reporting
// window. TaskTitle is empty when the task has been deleted since.
type TaskTotal struct {
	TaskID       string `json:"task_id"`
	TaskTitle    string `json:"task_title"`
	TotalSeconds int    `json:"total_seconds"`
}

// DailyReport summarizes one calendar day of focus work.
type DailyReport struct {
	// Date is midnight of the reported day in the local timezone.
	Date time.Time `json:"date"`

	// Totals holds per-task aggregates, longest first.
	Totals []TaskTotal `json:"totals"`

	// TotalSeconds is the sum across all tasks.
	TotalSeconds int `json:"total_seconds"`

	// CompletedSessions counts sessions that ran to their full target length.
	CompletedSessions int `json:"completed_sessions"`

	// AbandonedSessions counts sessions stopped before the target elapsed.
	AbandonedSessions int `json:"abandoned_sessions"`
}
