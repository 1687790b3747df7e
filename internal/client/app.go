package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-focus-keeper/internal/adapter"
	"github.com/MKhiriev/go-focus-keeper/internal/config"
	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/service"
	"github.com/MKhiriev/go-focus-keeper/internal/tui"
	"github.com/MKhiriev/go-focus-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	engine   adapter.SyncEngine
	tui      *tui.TUI
	cfg      *config.ClientConfig
	log      *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, engine adapter.SyncEngine, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || engine == nil || ui == nil || cfg == nil {
		return nil, errors.New("client app: missing dependencies")
	}
	return &App{services: services, engine: engine, tui: ui, cfg: cfg, log: log}, nil
}

// Run wires the sync engine to the status service, starts the background
// poller, and hands the terminal over to the TUI until the user exits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// first poll before the UI starts so the badge is accurate immediately
	if err := a.services.StatusService.Refresh(ctx); err != nil {
		a.log.Warn().Err(err).Msg("initial engine poll failed")
	}

	// every engine change notification recomputes the derived state; the
	// ticker below only covers engines that never notify
	unsubscribe := a.engine.OnChange(func() {
		a.services.StatusService.UpdateStatus()
	})
	defer unsubscribe()

	poller := workers.NewStatusPoller(ctx, a.services.StatusJob, a.cfg.Workers.StatusPollInterval)
	workers.NewWorkers(poller).Run()
	defer poller.Stop()

	return a.tui.Run(ctx)
}
