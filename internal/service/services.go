// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-focus-keeper/internal/adapter"
	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/store"
)

type ClientServices struct {
	TaskService    TaskService
	SessionService SessionService
	StatusService  *SyncStatusService
	StatusJob      StatusJob
	Reveal         *RevealRegistry
}

func NewClientServices(storages *store.ClientStorages, engine adapter.SyncEngine, log *logger.Logger) *ClientServices {
	statusSvc := NewSyncStatusService(engine, log)

	return &ClientServices{
		TaskService:    NewTaskService(storages, log),
		SessionService: NewSessionService(storages, log),
		StatusService:  statusSvc,
		StatusJob:      NewStatusJob(engine, statusSvc),
		Reveal:         NewRevealRegistry(),
	}
}
