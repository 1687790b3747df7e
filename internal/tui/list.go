package tui

import (
	"fmt"

	"github.com/MKhiriev/go-focus-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type listModel struct {
	tasks   []models.Task
	idx     int
	loading bool
	status  string

	adding bool
	input  textinput.Model

	// revealed keeps the action row of at most one task open. It is a map so
	// the close callbacks registered with the reveal registry keep working
	// across bubbletea's value copies of the model.
	revealed map[string]bool
}

func newListModel() listModel {
	input := textinput.New()
	input.Width = 40
	input.Placeholder = "Название задачи"
	return listModel{
		input:    input,
		loading:  true,
		revealed: map[string]bool{},
	}
}

func (m listModel) current() (models.Task, bool) {
	if len(m.tasks) == 0 || m.idx < 0 || m.idx >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.idx], true
}

func (m listModel) View() string {
	out := titleStyle.Render("Задачи") + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.tasks) == 0 && !m.adding {
		out += "Нет задач. Нажмите n чтобы добавить первую.\n"
	} else {
		for i, task := range m.tasks {
			cursor := "  "
			if i == m.idx && !m.adding {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s\n", cursor, task.Title)
			if m.revealed[task.ID] {
				out += "      s старт таймера   d удалить\n"
			}
		}
	}

	if m.adding {
		out += "\nНовая задача: [" + m.input.View() + "]\n"
		out += helpStyle.Render("enter сохранить  esc отмена")
		return out
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n новая  s старт  d удалить  enter действия  r отчёт  u статус  q выход")
	return out
}
