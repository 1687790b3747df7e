package tui

import "github.com/MKhiriev/go-focus-keeper/models"

// renderStatusBadge formats the derived sync state for the header line.
func renderStatusBadge(state models.SyncState) string {
	var label string
	switch state.Status {
	case models.SyncSyncing:
		label = "⇅ синхронизация..."
	case models.SyncSuccess:
		label = "✓ синхронизировано"
	case models.SyncError:
		label = "! ошибка синхронизации"
	case models.SyncIdle:
		label = "ожидание"
	default:
		label = "⊘ офлайн"
	}

	if state.LastSyncTime != nil {
		label += " · " + state.LastSyncTime.Local().Format("15:04")
	}
	if state.Error != "" {
		label += " · " + state.Error
	}

	return badgeStyle.Render(label)
}
