package tui

// confirmModel asks before a task is removed. Deleting a task does not erase
// its recorded focus sessions, the overlay says so up front.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Удалить задачу \"" + m.message + "\"?\n"
	content += "Записанное время останется в отчётах.\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
