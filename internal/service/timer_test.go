// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── ProgressRatio ────────────────────────────────────────────────────────────

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		name           string
		elapsedSeconds int
		targetMinutes  int
		want           float64
	}{
		{name: "start of session", elapsedSeconds: 0, targetMinutes: 25, want: 0},
		{name: "halfway", elapsedSeconds: 750, targetMinutes: 25, want: 0.5},
		{name: "exactly at target", elapsedSeconds: 1500, targetMinutes: 25, want: 1.0},
		{name: "overshoot clamps to one", elapsedSeconds: 3000, targetMinutes: 25, want: 1.0},
		{name: "negative elapsed clamps to zero", elapsedSeconds: -10, targetMinutes: 25, want: 0},
		{name: "zero target reports full bar", elapsedSeconds: 0, targetMinutes: 0, want: 1.0},
		{name: "negative target reports full bar", elapsedSeconds: 100, targetMinutes: -5, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProgressRatio(tt.elapsedSeconds, tt.targetMinutes), 1e-9)
		})
	}
}

// ── ClockText ────────────────────────────────────────────────────────────────

func TestClockText(t *testing.T) {
	tests := []struct {
		name           string
		elapsedSeconds int
		want           string
	}{
		{name: "zero", elapsedSeconds: 0, want: "00:00"},
		{name: "minute and seconds", elapsedSeconds: 65, want: "01:05"},
		{name: "seconds pad", elapsedSeconds: 9, want: "00:09"},
		{name: "minutes are not capped at an hour", elapsedSeconds: 3605, want: "60:05"},
		{name: "three digit minutes", elapsedSeconds: 6000, want: "100:00"},
		{name: "negative treated as zero", elapsedSeconds: -5, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockText(tt.elapsedSeconds))
		})
	}
}

// ── DurationText ─────────────────────────────────────────────────────────────

func TestDurationText(t *testing.T) {
	tests := []struct {
		name         string
		totalSeconds int
		want         string
	}{
		{name: "zero", totalSeconds: 0, want: "0m"},
		{name: "standard pomodoro", totalSeconds: 1500, want: "25m"},
		{name: "exact hour keeps the minute field", totalSeconds: 3600, want: "1h 0m"},
		{name: "two exact hours", totalSeconds: 7200, want: "2h 0m"},
		{name: "hour and minute", totalSeconds: 3661, want: "1h 1m"},
		{name: "hour and a half", totalSeconds: 5400, want: "1h 30m"},
		{name: "sub-minute seconds dropped", totalSeconds: 59, want: "0m"},
		{name: "negative treated as zero", totalSeconds: -60, want: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationText(tt.totalSeconds))
		})
	}
}

// ── TimerView ────────────────────────────────────────────────────────────────

func TestTimerView(t *testing.T) {
	view := TimerView(65, 25)

	assert.InDelta(t, 65.0/1500.0, view.ProgressRatio, 1e-9)
	assert.Equal(t, "01:05", view.ClockText)
	assert.Equal(t, "25m", view.DurationText)
}

func TestTimerView_ZeroTarget(t *testing.T) {
	view := TimerView(0, 0)

	assert.InDelta(t, 1.0, view.ProgressRatio, 1e-9)
	assert.Equal(t, "00:00", view.ClockText)
	assert.Equal(t, "0m", view.DurationText)
}
