// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyTaskTitle is returned when a task is created with a title that
	// is empty after trimming whitespace.
	ErrEmptyTaskTitle = errors.New("task title is empty")

	// ErrInvalidSessionDuration is returned when a session is recorded with
	// a non-positive duration.
	ErrInvalidSessionDuration = errors.New("session duration must be positive")
)
