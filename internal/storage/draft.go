package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// SaveDraft stores the in-progress workout snapshot, replacing the previous
// one. Like the active cycle, at most one draft exists.
func (db *DB) SaveDraft(ctx context.Context, w models.LoggedWorkout) error {
	payload, err := marshalJSON(w)
	if err != nil {
		return err
	}

	_, err = db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO active_workout (id, payload) VALUES (1, ?)`, payload)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}

	db.watcher.notify(EntityDraft)
	return nil
}

// GetDraft retrieves the in-progress workout, or ErrNotFound if no workout
// is being logged.
func (db *DB) GetDraft(ctx context.Context) (*models.LoggedWorkout, error) {
	row := db.sql.QueryRowContext(ctx, `SELECT payload FROM active_workout WHERE id = 1`)

	var payload string
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying draft: %w", err)
	}

	var w models.LoggedWorkout
	if err := unmarshalJSON(payload, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ClearDraft discards the in-progress workout without logging it.
func (db *DB) ClearDraft(ctx context.Context) error {
	if _, err := db.sql.ExecContext(ctx, `DELETE FROM active_workout`); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	db.watcher.notify(EntityDraft)
	return nil
}
