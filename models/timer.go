// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TimerDisplay bundles the three presentation values of a running focus
// timer. It is recomputed from scratch on every tick; nothing in it is
// stateful.
type TimerDisplay struct {
	// ProgressRatio is elapsed over target, clamped to [0, 1].
	ProgressRatio float64 `json:"progress_ratio"`

	// ClockText is the elapsed time as MM:SS; minutes may exceed two digits.
	ClockText string `json:"clock_text"`

	// DurationText is the target length in compact human form, e.g. "25m" or
	// "1h 30m".
	DurationText string `json:"duration_text"`
}
