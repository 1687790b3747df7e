// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/store"
	"github.com/MKhiriev/go-focus-keeper/internal/utils"
	"github.com/MKhiriev/go-focus-keeper/models"
)

type sessionService struct {
	storages *store.ClientStorages
	uuid     *utils.UUIDGenerator
	log      *logger.Logger
}

func NewSessionService(storages *store.ClientStorages, log *logger.Logger) SessionService {
	return &sessionService{
		storages: storages,
		uuid:     utils.NewUUIDGenerator(),
		log:      log,
	}
}

func (s *sessionService) RecordSession(ctx context.Context, taskID string, startedAt time.Time, durationSeconds int, completed bool) error {
	if durationSeconds <= 0 {
		return ErrInvalidSessionDuration
	}

	session := models.FocusSession{
		ID:              s.uuid.Generate(),
		TaskID:          taskID,
		StartedAt:       startedAt,
		DurationSeconds: durationSeconds,
		Completed:       completed,
	}

	if err := s.storages.SessionRepository.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save finished session: %w", err)
	}

	s.log.Debug().
		Str("session_id", session.ID).
		Str("task_id", taskID).
		Int("duration_seconds", durationSeconds).
		Bool("completed", completed).
		Msg("focus session recorded")
	return nil
}

// DailyReport aggregates sessions of one calendar day. Day boundaries follow
// the timezone of the passed moment, so "today" means the user's today.
func (s *sessionService) DailyReport(ctx context.Context, day time.Time) (models.DailyReport, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	nextDay := dayStart.AddDate(0, 0, 1)

	totals, err := s.storages.SessionRepository.GetTotalsByRange(ctx, dayStart, nextDay)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load daily totals: %w", err)
	}

	sessions, err := s.storages.SessionRepository.GetSessionsByRange(ctx, dayStart, nextDay)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load daily sessions: %w", err)
	}

	report := models.DailyReport{
		Date:   dayStart,
		Totals: totals,
	}
	for _, total := range totals {
		report.TotalSeconds += total.TotalSeconds
	}
	for _, session := range sessions {
		if session.Completed {
			report.CompletedSessions++
		} else {
			report.AbandonedSessions++
		}
	}

	return report, nil
}
