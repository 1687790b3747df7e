// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/internal/store"
	"github.com/MKhiriev/go-focus-keeper/internal/utils"
	"github.com/MKhiriev/go-focus-keeper/models"
)

type taskService struct {
	storages *store.ClientStorages
	uuid     *utils.UUIDGenerator
	log      *logger.Logger
}

func NewTaskService(storages *store.ClientStorages, log *logger.Logger) TaskService {
	return &taskService{
		storages: storages,
		uuid:     utils.NewUUIDGenerator(),
		log:      log,
	}
}

func (s *taskService) CreateTask(ctx context.Context, title string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTaskTitle
	}

	task := models.Task{
		ID:        s.uuid.Generate(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.storages.TaskRepository.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("save created task: %w", err)
	}

	s.log.Debug().Str("task_id", created.ID).Msg("task created")
	return created, nil
}

func (s *taskService) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.storages.TaskRepository.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.storages.TaskRepository.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.Debug().Str("task_id", id).Msg("task deleted")
	return nil
}
