package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── copiedMsg ────────────────────────────────────────────────────────────────

func TestUpdate_CopiedMsg_Success(t *testing.T) {
	m := appModel{list: newListModel(), report: newReportModel()}

	updated, cmd := m.Update(copiedMsg{})

	result, ok := updated.(appModel)
	require.True(t, ok)
	assert.Equal(t, "Скопировано!", result.report.status)
	assert.False(t, result.showError)
	assert.NotNil(t, cmd, "статус должен сброситься по таймеру")
}

func TestUpdate_CopiedMsg_Error(t *testing.T) {
	m := appModel{list: newListModel(), report: newReportModel()}

	updated, _ := m.Update(copiedMsg{err: assert.AnError})

	result, ok := updated.(appModel)
	require.True(t, ok)
	// сбой копирования показывается оверлеем, а не статусом отчёта
	assert.True(t, result.showError)
	assert.Equal(t, assert.AnError.Error(), result.errorOverlay.message)
	assert.Empty(t, result.report.status)
}
