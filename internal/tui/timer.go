package tui

import (
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/service"
	"github.com/MKhiriev/go-focus-keeper/models"
	"github.com/charmbracelet/bubbles/progress"
)

type timerModel struct {
	task           models.Task
	targetMinutes  int
	elapsedSeconds int
	running        bool
	startedAt      time.Time
	bar            progress.Model
}

func newTimerModel(task models.Task, targetMinutes int) timerModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	return timerModel{
		task:          task,
		targetMinutes: targetMinutes,
		running:       true,
		startedAt:     time.Now(),
		bar:           bar,
	}
}

func (m timerModel) targetReached() bool {
	return m.elapsedSeconds >= m.targetMinutes*60
}

func (m timerModel) View() string {
	display := service.TimerView(m.elapsedSeconds, m.targetMinutes)

	out := titleStyle.Render("Фокус: "+m.task.Title) + "\n\n"
	out += "  " + display.ClockText + " / " + display.DurationText + "\n\n"
	out += "  " + m.bar.ViewAs(display.ProgressRatio) + "\n"

	if m.targetReached() {
		out += "\n  Цель достигнута! Можно остановиться и сделать перерыв.\n"
	}
	if !m.running {
		out += "\n  Пауза\n"
	}

	out += "\n" + helpStyle.Render("p пауза  s стоп и сохранить  esc отменить без сохранения")
	return out
}
