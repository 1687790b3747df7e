package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/config"
	"github.com/MKhiriev/go-focus-keeper/internal/service"
	"github.com/MKhiriev/go-focus-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenTimer
	screenReport
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	cfg           *config.ClientConfig
	currentScreen screen

	list   listModel
	timer  timerModel
	report reportModel

	syncState models.SyncState

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, cfg *config.ClientConfig) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		cfg:           cfg,
		currentScreen: screenList,
		list:          newListModel(),
		report:        newReportModel(),
		syncState:     services.StatusService.State(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadTasks()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				if openID, ok := m.services.Reveal.OpenID(); ok && openID == m.pendingDelete {
					m.services.Reveal.CloseCurrent()
				}
				return m, m.cmdDeleteTask(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case syncStateMsg:
		m.syncState = msg.state
		return m, nil
	case syncRefreshedMsg:
		m.syncState = m.services.StatusService.State()
		if msg.err != nil {
			m.list.status = humanizeEngineError(msg.err)
		} else {
			m.list.status = "Статус обновлён"
		}
		return m, cmdClearStatus()
	case tasksLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.tasks = msg.tasks
		if m.list.idx >= len(m.list.tasks) {
			m.list.idx = len(m.list.tasks) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case taskSavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.adding = false
		m.list.input.Reset()
		return m, m.cmdLoadTasks()
	case taskDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		return m, m.cmdLoadTasks()
	case sessionSavedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Сессия сохранена"
		return m, cmdClearStatus()
	case reportLoadedMsg:
		m.report.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.report.report = msg.report
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.report.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.report.status = ""
		m.list.status = ""
		return m, nil
	case timerTickMsg:
		if m.currentScreen == screenTimer && m.timer.running {
			m.timer.elapsedSeconds++
			return m, cmdTick()
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenTimer:
		return m.updateTimer(msg)
	case screenReport:
		return m.updateReport(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	header := titleStyle.Render("FocusKeeper") + "  " + renderStatusBadge(m.syncState)

	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenTimer:
		body = m.timer.View()
	case screenReport:
		body = m.report.View()
	}

	out := header + "\n\n" + body

	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// toggleReveal opens the action row of the task, closing whichever other row
// was open. The close callback works through the shared revealed map, so it
// stays valid no matter how many times bubbletea copies the model.
func (m *appModel) toggleReveal(id string) {
	if m.list.revealed[id] {
		m.services.Reveal.CloseCurrent()
		return
	}

	revealed := m.list.revealed
	revealed[id] = true
	m.services.Reveal.RegisterOpen(id, func() { delete(revealed, id) })
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.adding {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.adding = false
			m.list.input.Reset()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			title := strings.TrimSpace(m.list.input.Value())
			if title == "" {
				m.showErrorf("Название задачи обязательно")
				return m, nil
			}
			return m, m.cmdCreateTask(title)
		}

		var cmd tea.Cmd
		m.list.input, cmd = m.list.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.tasks)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.toggleReveal(task.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.list.adding = true
		m.list.input.Reset()
		m.list.input.Focus()
	case key.Matches(keyMsg, keys.start):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		// открытая строка действий закрывается при уходе с экрана
		m.services.Reveal.CloseCurrent()
		m.timer = newTimerModel(task, m.cfg.Timer.TargetMinutes)
		m.currentScreen = screenTimer
		return m, cmdTick()
	case key.Matches(keyMsg, keys.delete):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = task.Title
		m.pendingDelete = task.ID
	case key.Matches(keyMsg, keys.report):
		m.services.Reveal.CloseCurrent()
		m.report = newReportModel()
		m.currentScreen = screenReport
		return m, m.cmdLoadReport()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefreshStatus()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.pause):
		m.timer.running = !m.timer.running
		if m.timer.running {
			return m, cmdTick()
		}
	case key.Matches(keyMsg, keys.stop):
		if m.timer.elapsedSeconds <= 0 {
			m.currentScreen = screenList
			return m, nil
		}
		m.timer.running = false
		return m, m.cmdSaveSession(m.timer)
	case key.Matches(keyMsg, keys.esc):
		// отмена без записи
		m.currentScreen = screenList
		return m, nil
	}

	return m, nil
}

func (m appModel) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.report.loading {
			return m, nil
		}
		return m, cmdCopyToClipboard(formatReport(m.report.report))
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdLoadTasks() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		tasks, err := svc.GetAllTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m appModel) cmdCreateTask(title string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		_, err := svc.CreateTask(ctx, title)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTask(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		err := svc.DeleteTask(ctx, id)
		return taskDeletedMsg{err: err}
	}
}

func (m appModel) cmdSaveSession(timer timerModel) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	completed := timer.targetReached()
	return func() tea.Msg {
		err := svc.RecordSession(ctx, timer.task.ID, timer.startedAt, timer.elapsedSeconds, completed)
		return sessionSavedMsg{err: err}
	}
}

func (m appModel) cmdLoadReport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		report, err := svc.DailyReport(ctx, time.Now())
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m appModel) cmdRefreshStatus() tea.Cmd {
	ctx := m.ctx
	status := m.services.StatusService
	return func() tea.Msg {
		err := status.Refresh(ctx)
		return syncRefreshedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
