// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine — простой мок SyncEngine, не требует mockgen.
type stubEngine struct {
	report     models.SyncReport
	ok         bool
	refreshErr error
}

func (e *stubEngine) Report() (models.SyncReport, bool) { return e.report, e.ok }

func (e *stubEngine) Refresh(_ context.Context) error { return e.refreshErr }

func (e *stubEngine) OnChange(_ func()) func() { return func() {} }

func newTestStatusSvc(engine *stubEngine) *SyncStatusService {
	return NewSyncStatusService(engine, logger.Nop())
}

// ── derivation table ─────────────────────────────────────────────────────────

// TestUpdateStatus_DerivationTable перебирает все комбинации
// connected/uploading/downloading плюс отдельный случай отсутствия отчёта.
func TestUpdateStatus_DerivationTable(t *testing.T) {
	tests := []struct {
		name       string
		ok         bool
		report     models.SyncReport
		wantStatus models.SyncStatus
	}{
		{
			name:       "report absent",
			ok:         false,
			wantStatus: models.SyncOffline,
		},
		{
			name:       "disconnected idle",
			ok:         true,
			report:     models.SyncReport{},
			wantStatus: models.SyncOffline,
		},
		{
			name:       "disconnected uploading",
			ok:         true,
			report:     models.SyncReport{Uploading: true},
			wantStatus: models.SyncSyncing,
		},
		{
			name:       "disconnected downloading",
			ok:         true,
			report:     models.SyncReport{Downloading: true},
			wantStatus: models.SyncSyncing,
		},
		{
			name:       "disconnected uploading and downloading",
			ok:         true,
			report:     models.SyncReport{Uploading: true, Downloading: true},
			wantStatus: models.SyncSyncing,
		},
		{
			name:       "connected idle",
			ok:         true,
			report:     models.SyncReport{Connected: true},
			wantStatus: models.SyncSuccess,
		},
		{
			name:       "connected uploading",
			ok:         true,
			report:     models.SyncReport{Connected: true, Uploading: true},
			wantStatus: models.SyncSyncing,
		},
		{
			name:       "connected downloading",
			ok:         true,
			report:     models.SyncReport{Connected: true, Downloading: true},
			wantStatus: models.SyncSyncing,
		},
		{
			name:       "connected uploading and downloading",
			ok:         true,
			report:     models.SyncReport{Connected: true, Uploading: true, Downloading: true},
			wantStatus: models.SyncSyncing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestStatusSvc(&stubEngine{report: tt.report, ok: tt.ok})

			svc.UpdateStatus()

			state := svc.State()
			assert.Equal(t, tt.wantStatus, state.Status)
			assert.Equal(t, tt.ok && tt.report.Connected, state.IsConnected)
		})
	}
}

// ── UpdateStatus ─────────────────────────────────────────────────────────────

func TestUpdateStatus_InitialStateIsOffline(t *testing.T) {
	svc := newTestStatusSvc(&stubEngine{})

	state := svc.State()
	assert.Equal(t, models.SyncOffline, state.Status)
	assert.False(t, state.IsConnected)
	assert.Nil(t, state.LastSyncTime)
}

func TestUpdateStatus_Idempotent(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)

	svc.UpdateStatus()
	first := svc.State()
	svc.UpdateStatus()
	svc.UpdateStatus()

	assert.Equal(t, first, svc.State(), "повторные вызовы при неизменном отчёте не меняют состояние")
}

func TestUpdateStatus_LastSyncTimeFromReport(t *testing.T) {
	syncedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	engine := &stubEngine{
		report: models.SyncReport{Connected: true, LastSyncedAt: &syncedAt},
		ok:     true,
	}
	svc := newTestStatusSvc(engine)

	svc.UpdateStatus()

	state := svc.State()
	require.NotNil(t, state.LastSyncTime)
	assert.True(t, syncedAt.Equal(*state.LastSyncTime))
}

// TestUpdateStatus_LastSyncTimeNotCarriedForward проверяет, что метка
// последней синхронизации перезаписывается из отчёта каждый раз и не
// переносится из прошлого состояния.
func TestUpdateStatus_LastSyncTimeNotCarriedForward(t *testing.T) {
	syncedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	engine := &stubEngine{
		report: models.SyncReport{Connected: true, LastSyncedAt: &syncedAt},
		ok:     true,
	}
	svc := newTestStatusSvc(engine)
	svc.UpdateStatus()

	// новый отчёт без метки — поле должно опустеть
	engine.report = models.SyncReport{Connected: true}
	svc.UpdateStatus()

	assert.Nil(t, svc.State().LastSyncTime)
}

func TestUpdateStatus_ReportLost_GoesOffline(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)
	svc.UpdateStatus()
	require.Equal(t, models.SyncSuccess, svc.State().Status)

	engine.ok = false
	svc.UpdateStatus()

	state := svc.State()
	assert.Equal(t, models.SyncOffline, state.Status)
	assert.False(t, state.IsConnected)
	assert.Nil(t, state.LastSyncTime)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_PollsEngineAndRecomputes(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)

	err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SyncSuccess, svc.State().Status)
}

func TestRefresh_PollError_StillRecomputes(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)
	svc.UpdateStatus()
	require.Equal(t, models.SyncSuccess, svc.State().Status)

	// движок упал: опрос вернул ошибку, отчёт пропал
	engine.refreshErr = assert.AnError
	engine.ok = false
	err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.SyncOffline, svc.State().Status, "состояние пересчитано даже при ошибке опроса")
}

// ── SetError / ClearError ────────────────────────────────────────────────────

func TestSetError_DoesNotTouchDerivedFields(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)
	svc.UpdateStatus()

	svc.SetError("конфликт версий")

	state := svc.State()
	assert.Equal(t, "конфликт версий", state.Error)
	assert.Equal(t, models.SyncSuccess, state.Status)
	assert.True(t, state.IsConnected)
}

func TestClearError_OnlyClearsError(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)
	svc.UpdateStatus()
	svc.SetError("что-то пошло не так")

	svc.ClearError()

	state := svc.State()
	assert.Empty(t, state.Error)
	assert.Equal(t, models.SyncSuccess, state.Status)
	assert.True(t, state.IsConnected)
}

func TestClearError_NoError_NoOp(t *testing.T) {
	svc := newTestStatusSvc(&stubEngine{})

	assert.NotPanics(t, svc.ClearError)
	assert.Empty(t, svc.State().Error)
}

// TestUpdateStatus_PreservesErrorSlot проверяет, что деривация не трогает
// слот ошибки.
func TestUpdateStatus_PreservesErrorSlot(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)
	svc.SetError("старая ошибка")

	svc.UpdateStatus()

	assert.Equal(t, "старая ошибка", svc.State().Error)
}

// ── Subscribe / notify ───────────────────────────────────────────────────────

func TestSubscribe_NotifiedOnEveryUpdate(t *testing.T) {
	engine := &stubEngine{report: models.SyncReport{Connected: true}, ok: true}
	svc := newTestStatusSvc(engine)

	var got []models.SyncState
	svc.Subscribe(func(state models.SyncState) { got = append(got, state) })

	svc.UpdateStatus()
	svc.UpdateStatus()

	require.Len(t, got, 2)
	assert.Equal(t, models.SyncSuccess, got[0].Status)
}

func TestSubscribe_NotificationOrder(t *testing.T) {
	svc := newTestStatusSvc(&stubEngine{})

	var order []string
	svc.Subscribe(func(models.SyncState) { order = append(order, "first") })
	svc.Subscribe(func(models.SyncState) { order = append(order, "second") })
	svc.Subscribe(func(models.SyncState) { order = append(order, "third") })

	svc.UpdateStatus()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	svc := newTestStatusSvc(&stubEngine{})

	calls := 0
	unsub := svc.Subscribe(func(models.SyncState) { calls++ })
	unsub()

	svc.UpdateStatus()

	assert.Zero(t, calls, "после отписки уведомлений быть не должно")
}

func TestSubscribe_SetErrorDoesNotNotify(t *testing.T) {
	svc := newTestStatusSvc(&stubEngine{})

	calls := 0
	svc.Subscribe(func(models.SyncState) { calls++ })

	svc.SetError("ошибка")
	svc.ClearError()

	assert.Zero(t, calls, "уведомление происходит только из UpdateStatus")
}
