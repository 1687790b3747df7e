package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-focus-keeper/internal/service"
	"github.com/MKhiriev/go-focus-keeper/models"
)

type reportModel struct {
	report  models.DailyReport
	loading bool
	status  string
}

func newReportModel() reportModel {
	return reportModel{loading: true}
}

// formatReport renders the daily report as plain text, the same form that
// goes to the clipboard.
func formatReport(report models.DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Отчёт за %s\n", report.Date.Format("02.01.2006"))
	fmt.Fprintf(&b, "Всего в фокусе: %s\n", service.DurationText(report.TotalSeconds))
	fmt.Fprintf(&b, "Сессий завершено: %d, прервано: %d\n", report.CompletedSessions, report.AbandonedSessions)

	if len(report.Totals) > 0 {
		b.WriteString("\n")
		for _, total := range report.Totals {
			title := total.TaskTitle
			if title == "" {
				title = "(удалённая задача)"
			}
			fmt.Fprintf(&b, "- %s: %s\n", title, service.DurationText(total.TotalSeconds))
		}
	}

	return b.String()
}

func (m reportModel) View() string {
	out := titleStyle.Render("Отчёт за день") + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if m.report.TotalSeconds == 0 {
		out += "Сегодня фокус-сессий ещё не было\n"
	} else {
		out += formatReport(m.report)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c копировать  esc назад")
	return out
}
