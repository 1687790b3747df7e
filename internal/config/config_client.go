package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown on the welcome header.
	Version string
}

// ClientTimer holds the focus timer defaults used by the timer screen.
type ClientTimer struct {
	// TargetMinutes is the default focus target duration in minutes.
	TargetMinutes int
	// BreakMinutes is the default break duration in minutes.
	BreakMinutes int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientEngine holds network settings for the sync engine status endpoint.
type ClientEngine struct {
	// Address is the base URL of the engine's local status endpoint.
	Address string
	// RequestTimeout is the timeout for a single status request.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// StatusPollInterval defines how often the status poll job runs.
	StatusPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Timer contains focus timer defaults.
	Timer ClientTimer
	// Storage contains client storage settings.
	Storage ClientStorage
	// Engine contains sync engine endpoint settings.
	Engine ClientEngine
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Timer: ClientTimer{
			TargetMinutes: cfg.Timer.TargetMinutes,
			BreakMinutes:  cfg.Timer.BreakMinutes,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Engine: ClientEngine{
			Address:        cfg.Engine.Address,
			RequestTimeout: cfg.Engine.RequestTimeout,
		},
		Workers: ClientWorkers{StatusPollInterval: cfg.Workers.StatusPollInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

// applyDefaults fills in safe defaults for every unset field so the client
// can start without any configuration at all.
func (cfg *ClientConfig) applyDefaults() {
	if cfg.Timer.TargetMinutes == 0 {
		cfg.Timer.TargetMinutes = 25
	}
	if cfg.Timer.BreakMinutes == 0 {
		cfg.Timer.BreakMinutes = 5
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "focuskeeper.db"
	}
	if cfg.Engine.Address == "" {
		cfg.Engine.Address = "http://localhost:8337"
	}
	if cfg.Engine.RequestTimeout == 0 {
		cfg.Engine.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.StatusPollInterval == 0 {
		cfg.Workers.StatusPollInterval = 30 * time.Second
	}
}
