package tui

import (
	"time"

	"github.com/MKhiriev/go-focus-keeper/models"
)

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

type sessionSavedMsg struct {
	err error
}

type reportLoadedMsg struct {
	report models.DailyReport
	err    error
}

type syncStateMsg struct {
	state models.SyncState
}

type syncRefreshedMsg struct {
	err error
}

type timerTickMsg time.Time

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
