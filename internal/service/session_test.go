// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/mock"
	"github.com/MKhiriev/go-focus-keeper/internal/store"
	"github.com/MKhiriev/go-focus-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionSvc — хелпер для создания сервиса с моками
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (SessionService, *mock.MockSessionRepository) {
	t.Helper()
	mockRepo := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{
		SessionRepository: mockRepo,
	}
	svc := NewSessionService(storages, logger.Nop())
	return svc, mockRepo
}

// ── RecordSession ────────────────────────────────────────────────────────────

func TestSessionService_RecordSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	startedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		SaveSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session models.FocusSession) error {
			assert.NotEmpty(t, session.ID, "сервис должен сгенерировать id")
			assert.Equal(t, "t-1", session.TaskID)
			assert.True(t, startedAt.Equal(session.StartedAt))
			assert.Equal(t, 1500, session.DurationSeconds)
			assert.True(t, session.Completed)
			return nil
		})

	err := svc.RecordSession(ctx, "t-1", startedAt, 1500, true)
	require.NoError(t, err)
}

func TestSessionService_RecordSession_NonPositiveDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// нулевая и отрицательная длительность отклоняются без похода в базу
	err := svc.RecordSession(ctx, "t-1", time.Now(), 0, false)
	assert.ErrorIs(t, err, ErrInvalidSessionDuration)

	err = svc.RecordSession(ctx, "t-1", time.Now(), -5, true)
	assert.ErrorIs(t, err, ErrInvalidSessionDuration)
}

func TestSessionService_RecordSession_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("db error"))

	err := svc.RecordSession(ctx, "t-1", time.Now(), 900, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save finished session")
}

// ── DailyReport ──────────────────────────────────────────────────────────────

func TestSessionService_DailyReport_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	moment := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	nextDay := dayStart.AddDate(0, 0, 1)

	totals := []models.TaskTotal{
		{TaskID: "t-1", TaskTitle: "Чтение", TotalSeconds: 3000},
		{TaskID: "t-2", TaskTitle: "Письмо", TotalSeconds: 900},
	}
	sessions := []models.FocusSession{
		{ID: "s-1", TaskID: "t-1", Completed: true},
		{ID: "s-2", TaskID: "t-1", Completed: true},
		{ID: "s-3", TaskID: "t-2", Completed: false},
	}

	mockRepo.EXPECT().GetTotalsByRange(ctx, dayStart, nextDay).Return(totals, nil)
	mockRepo.EXPECT().GetSessionsByRange(ctx, dayStart, nextDay).Return(sessions, nil)

	report, err := svc.DailyReport(ctx, moment)

	require.NoError(t, err)
	assert.True(t, dayStart.Equal(report.Date))
	assert.Equal(t, totals, report.Totals)
	assert.Equal(t, 3900, report.TotalSeconds)
	assert.Equal(t, 2, report.CompletedSessions)
	assert.Equal(t, 1, report.AbandonedSessions)
}

func TestSessionService_DailyReport_EmptyDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTotalsByRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().GetSessionsByRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

	report, err := svc.DailyReport(ctx, time.Now())

	require.NoError(t, err)
	assert.Empty(t, report.Totals)
	assert.Zero(t, report.TotalSeconds)
	assert.Zero(t, report.CompletedSessions)
	assert.Zero(t, report.AbandonedSessions)
}

// TestSessionService_DailyReport_LocalTimezone проверяет, что границы дня
// берутся в таймзоне переданного момента, а не в UTC.
func TestSessionService_DailyReport_LocalTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	zone := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2026, 3, 14, 1, 15, 0, 0, zone)
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, zone)
	nextDay := dayStart.AddDate(0, 0, 1)

	mockRepo.EXPECT().GetTotalsByRange(ctx, dayStart, nextDay).Return(nil, nil)
	mockRepo.EXPECT().GetSessionsByRange(ctx, dayStart, nextDay).Return(nil, nil)

	report, err := svc.DailyReport(ctx, moment)

	require.NoError(t, err)
	assert.True(t, dayStart.Equal(report.Date))
}

func TestSessionService_DailyReport_TotalsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTotalsByRange(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := svc.DailyReport(ctx, time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load daily totals")
}

func TestSessionService_DailyReport_SessionsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTotalsByRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().GetSessionsByRange(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := svc.DailyReport(ctx, time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load daily sessions")
}
