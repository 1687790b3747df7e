// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/models"
)

// taskRepository is the SQLite-backed implementation of [TaskRepository].
// Queries are built with squirrel using "?" placeholders (SQLite style).
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask implements TaskRepository.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := sq.Insert("tasks").
		Columns("id", "title", "created_at").
		Values(task.ID, task.Title, task.CreatedAt).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*taskRepository.CreateTask").Msg("insert task failed")
		return models.Task{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return task, nil
}

// GetAllTasks implements TaskRepository.
func (r *taskRepository) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	query, args, err := sq.Select("id", "title", "created_at").
		From("tasks").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*taskRepository.GetAllTasks").Msg("select tasks failed")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err = rows.Scan(&task.ID, &task.Title, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// DeleteTask implements TaskRepository.
func (r *taskRepository) DeleteTask(ctx context.Context, id string) error {
	query, args, err := sq.Delete("tasks").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("delete task failed")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
