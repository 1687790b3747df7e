// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-focus-keeper/models"
)

// ProgressRatio returns elapsed time over the target length as a value in
// [0, 1]. The timer keeps counting past the target, so overshoot clamps to 1;
// negative elapsed clamps to 0. A non-positive target reports a full bar,
// there is no meaningful fraction of a zero-length goal.
func ProgressRatio(elapsedSeconds, targetMinutes int) float64 {
	targetSeconds := targetMinutes * 60
	if targetSeconds <= 0 {
		return 1.0
	}

	ratio := float64(elapsedSeconds) / float64(targetSeconds)
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

// ClockText formats elapsed seconds as MM:SS. The minute field is not capped:
// an hour and five seconds renders as "60:05".
func ClockText(elapsedSeconds int) string {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", elapsedSeconds/60, elapsedSeconds%60)
}

// DurationText renders a duration in compact human form: "25m", "1h 0m", or
// "1h 30m". Once hours are present the minute field is always shown, so a
// whole hour is "1h 0m". Leftover seconds below a full minute are dropped.
func DurationText(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// TimerView recomputes the full timer presentation for one tick. It is a pure
// function of its inputs; the caller owns the actual elapsed counter.
func TimerView(elapsedSeconds, targetMinutes int) models.TimerDisplay {
	return models.TimerDisplay{
		ProgressRatio: ProgressRatio(elapsedSeconds, targetMinutes),
		ClockText:     ClockText(elapsedSeconds),
		DurationText:  DurationText(targetMinutes * 60),
	}
}
