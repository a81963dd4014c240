package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// UpsertExercise inserts or replaces a library exercise.
func (db *DB) UpsertExercise(ctx context.Context, ex models.Exercise) error {
	muscles, err := marshalJSON(ex.TargetMuscles)
	if err != nil {
		return err
	}
	equipment, err := marshalJSON(ex.Equipment)
	if err != nil {
		return err
	}

	_, err = db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO exercises
		 (id, name, target_muscles, equipment, preferred_rep_range, notes, video_link)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ex.ID, ex.Name, muscles, equipment, ex.PreferredRepRange, ex.Notes, ex.VideoLink)
	if err != nil {
		return fmt.Errorf("upserting exercise: %w", err)
	}

	db.watcher.notify(EntityExercises)
	return nil
}

// DeleteExercise removes a library exercise by id.
func (db *DB) DeleteExercise(ctx context.Context, id string) error {
	if _, err := db.sql.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	db.watcher.notify(EntityExercises)
	return nil
}

// GetExercise retrieves a single exercise by id.
func (db *DB) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, name, target_muscles, equipment, preferred_rep_range, notes, video_link
		 FROM exercises WHERE id = ?`, id)

	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise: %w", err)
	}
	return ex, nil
}

// ListExercises retrieves the full exercise library ordered by name.
func (db *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, name, target_muscles, equipment, preferred_rep_range, notes, video_link
		 FROM exercises ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, *ex)
	}
	return result, rows.Err()
}

func scanExercise(row interface{ Scan(dest ...any) error }) (*models.Exercise, error) {
	var ex models.Exercise
	var muscles, equipment string
	if err := row.Scan(&ex.ID, &ex.Name, &muscles, &equipment,
		&ex.PreferredRepRange, &ex.Notes, &ex.VideoLink); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(muscles, &ex.TargetMuscles); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(equipment, &ex.Equipment); err != nil {
		return nil, err
	}
	return &ex, nil
}
