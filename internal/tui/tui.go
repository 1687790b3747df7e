package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-focus-keeper/internal/config"
	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/service"
	"github.com/MKhiriev/go-focus-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	cfg      *config.ClientConfig
	log      *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, log *logger.Logger) *TUI {
	return &TUI{services: services, cfg: cfg, log: log}
}

// Run drives the whole terminal session. Sync state changes are pushed into
// the event loop via the status service subscription, so the header badge
// updates without the user doing anything.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())

	unsubscribe := t.services.StatusService.Subscribe(func(state models.SyncState) {
		program.Send(syncStateMsg{state: state})
	})
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		t.log.Info().Msg("user quit")
		return nil
	}
	return result.err
}
