package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// UpsertWorkoutTemplate inserts or replaces a workout template.
func (db *DB) UpsertWorkoutTemplate(ctx context.Context, tpl models.WorkoutTemplate) error {
	exercises, err := marshalJSON(tpl.Exercises)
	if err != nil {
		return err
	}

	_, err = db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO workout_templates (id, name, description, exercises)
		 VALUES (?, ?, ?, ?)`,
		tpl.ID, tpl.Name, tpl.Description, exercises)
	if err != nil {
		return fmt.Errorf("upserting workout template: %w", err)
	}

	db.watcher.notify(EntityTemplates)
	return nil
}

// DeleteWorkoutTemplate removes a workout template by id.
func (db *DB) DeleteWorkoutTemplate(ctx context.Context, id string) error {
	if _, err := db.sql.ExecContext(ctx, `DELETE FROM workout_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting workout template: %w", err)
	}
	db.watcher.notify(EntityTemplates)
	return nil
}

// GetWorkoutTemplate retrieves a single workout template by id.
func (db *DB) GetWorkoutTemplate(ctx context.Context, id string) (*models.WorkoutTemplate, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, name, description, exercises FROM workout_templates WHERE id = ?`, id)

	tpl, err := scanWorkoutTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout template: %w", err)
	}
	return tpl, nil
}

// ListWorkoutTemplates retrieves all workout templates ordered by name.
func (db *DB) ListWorkoutTemplates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, name, description, exercises FROM workout_templates ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying workout templates: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutTemplate
	for rows.Next() {
		tpl, err := scanWorkoutTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout template: %w", err)
		}
		result = append(result, *tpl)
	}
	return result, rows.Err()
}

func scanWorkoutTemplate(row interface{ Scan(dest ...any) error }) (*models.WorkoutTemplate, error) {
	var tpl models.WorkoutTemplate
	var exercises string
	if err := row.Scan(&tpl.ID, &tpl.Name, &tpl.Description, &exercises); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(exercises, &tpl.Exercises); err != nil {
		return nil, err
	}
	return &tpl, nil
}
