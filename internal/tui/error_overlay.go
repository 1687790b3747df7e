package tui

// errorOverlayModel blocks the current screen with a failure message until
// the user dismisses it.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Не получилось\n\n" + m.message + "\n\nenter / esc вернуться"
	return overlayBoxStyle.Render(content)
}
