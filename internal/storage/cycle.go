package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// SetActiveCycle stores the active cycle, replacing any existing one. At
// most one cycle exists system-wide; the row id is pinned to 1.
func (db *DB) SetActiveCycle(ctx context.Context, c models.ActiveCycle) error {
	sessions := c.CompletedSessions
	if sessions == nil {
		sessions = map[string]string{}
	}
	encoded, err := marshalJSON(sessions)
	if err != nil {
		return err
	}

	_, err = db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO active_cycle
		 (id, program_template_id, program_template_name, cycle_name, start_date, completed_sessions)
		 VALUES (1, ?, ?, ?, ?, ?)`,
		c.ProgramTemplateID, c.ProgramTemplateName, c.CycleName, c.StartDate, encoded)
	if err != nil {
		return fmt.Errorf("setting active cycle: %w", err)
	}

	db.watcher.notify(EntityCycle)
	return nil
}

// GetActiveCycle retrieves the active cycle, or ErrNotFound if none is
// running.
func (db *DB) GetActiveCycle(ctx context.Context) (*models.ActiveCycle, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT program_template_id, program_template_name, cycle_name, start_date, completed_sessions
		 FROM active_cycle WHERE id = 1`)

	var c models.ActiveCycle
	var sessions string
	err := row.Scan(&c.ProgramTemplateID, &c.ProgramTemplateName, &c.CycleName, &c.StartDate, &sessions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying active cycle: %w", err)
	}
	if err := unmarshalJSON(sessions, &c.CompletedSessions); err != nil {
		return nil, err
	}
	return &c, nil
}

// ClearActiveCycle ends the cycle by deleting the record. The cycle's
// history survives only through the logged workouts already written.
func (db *DB) ClearActiveCycle(ctx context.Context) error {
	if _, err := db.sql.ExecContext(ctx, `DELETE FROM active_cycle`); err != nil {
		return fmt.Errorf("clearing active cycle: %w", err)
	}
	db.watcher.notify(EntityCycle)
	return nil
}

// MarkSessionCompleted records that the given program session was fulfilled
// by a logged workout. Entries only ever accumulate during a cycle's life.
func (db *DB) MarkSessionCompleted(ctx context.Context, weekID, sessionID, loggedWorkoutID string) error {
	cycle, err := db.GetActiveCycle(ctx)
	if err != nil {
		return fmt.Errorf("marking session completed: %w", err)
	}

	if cycle.CompletedSessions == nil {
		cycle.CompletedSessions = map[string]string{}
	}
	cycle.CompletedSessions[models.SessionKey(weekID, sessionID)] = loggedWorkoutID

	return db.SetActiveCycle(ctx, *cycle)
}
