// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-focus-keeper/internal/logger"
	"github.com/MKhiriev/go-focus-keeper/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession implements SessionRepository.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.FocusSession) error {
	query, args, err := sq.Insert("focus_sessions").
		Columns("id", "task_id", "started_at", "duration_seconds", "completed").
		Values(session.ID, session.TaskID, session.StartedAt, session.DurationSeconds, session.Completed).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("insert session failed")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotSaved
	}

	return nil
}

// GetSessionsByRange implements SessionRepository.
func (r *sessionRepository) GetSessionsByRange(ctx context.Context, from, to time.Time) ([]models.FocusSession, error) {
	query, args, err := sq.Select("id", "task_id", "started_at", "duration_seconds", "completed").
		From("focus_sessions").
		Where(sq.GtOrEq{"started_at": from}).
		Where(sq.Lt{"started_at": to}).
		OrderBy("started_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.GetSessionsByRange").Msg("select sessions failed")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var s models.FocusSession
		if err = rows.Scan(&s.ID, &s.TaskID, &s.StartedAt, &s.DurationSeconds, &s.Completed); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// GetTotalsByRange implements SessionRepository. Sessions whose task has been
// deleted keep their time under an empty title.
func (r *sessionRepository) GetTotalsByRange(ctx context.Context, from, to time.Time) ([]models.TaskTotal, error) {
	query, args, err := sq.Select(
		"s.task_id",
		"COALESCE(t.title, '') AS task_title",
		"SUM(s.duration_seconds) AS total_seconds",
	).
		From("focus_sessions s").
		LeftJoin("tasks t ON t.id = s.task_id").
		Where(sq.GtOrEq{"s.started_at": from}).
		Where(sq.Lt{"s.started_at": to}).
		GroupBy("s.task_id", "t.title").
		OrderBy("total_seconds DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.GetTotalsByRange").Msg("select totals failed")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var totals []models.TaskTotal
	for rows.Next() {
		var total models.TaskTotal
		if err = rows.Scan(&total.TaskID, &total.TaskTitle, &total.TotalSeconds); err != nil {
			return nil, err
		}
		totals = append(totals, total)
	}

	return totals, rows.Err()
}
