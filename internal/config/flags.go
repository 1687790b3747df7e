package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-engine-address sync engine status endpoint base URL
//	-engine-timeout status request timeout (e.g., "15s")
//	-target-minutes default focus target in minutes
//	-break-minutes default break duration in minutes
//	-poll-interval background status poll interval (e.g., "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var engineAddress string
	var engineTimeout time.Duration
	var targetMinutes int
	var breakMinutes int
	var pollInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN (SQLite file path)")
	flag.StringVar(&engineAddress, "engine-address", "", "Sync engine status endpoint base URL")
	flag.DurationVar(&engineTimeout, "engine-timeout", 0, "Status request timeout (e.g., 15s)")
	flag.IntVar(&targetMinutes, "target-minutes", 0, "Default focus target in minutes")
	flag.IntVar(&breakMinutes, "break-minutes", 0, "Default break duration in minutes")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Status poll interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Timer: Timer{
			TargetMinutes: targetMinutes,
			BreakMinutes:  breakMinutes,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Engine: Engine{
			Address:        engineAddress,
			RequestTimeout: engineTimeout,
		},
		Workers: Workers{
			StatusPollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
