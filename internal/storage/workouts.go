package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// InsertLoggedWorkout inserts or replaces a logged workout.
func (db *DB) InsertLoggedWorkout(ctx context.Context, w models.LoggedWorkout) error {
	exercises, err := marshalJSON(w.Exercises)
	if err != nil {
		return err
	}

	_, err = db.sql.ExecContext(ctx, insertLoggedWorkoutSQL,
		w.ID, w.Date, w.Name, w.OverallComments, w.DurationMinutes,
		w.Bodyweight, w.WeightUnit, exercises, w.TemplateID)
	if err != nil {
		return fmt.Errorf("inserting logged workout: %w", err)
	}

	db.watcher.notify(EntityWorkouts)
	return nil
}

const insertLoggedWorkoutSQL = `INSERT OR REPLACE INTO logged_workouts
	(id, date, name, overall_comments, duration_minutes, bodyweight, weight_unit, exercises, template_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// GetLoggedWorkout retrieves a single logged workout by id.
func (db *DB) GetLoggedWorkout(ctx context.Context, id string) (*models.LoggedWorkout, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, date, name, overall_comments, duration_minutes, bodyweight, weight_unit, exercises, template_id
		 FROM logged_workouts WHERE id = ?`, id)

	w, err := scanLoggedWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying logged workout: %w", err)
	}
	return w, nil
}

// ListLoggedWorkouts retrieves the full workout history, most recent first.
func (db *DB) ListLoggedWorkouts(ctx context.Context) ([]models.LoggedWorkout, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, date, name, overall_comments, duration_minutes, bodyweight, weight_unit, exercises, template_id
		 FROM logged_workouts ORDER BY date DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying logged workouts: %w", err)
	}
	defer rows.Close()

	var result []models.LoggedWorkout
	for rows.Next() {
		w, err := scanLoggedWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning logged workout: %w", err)
		}
		result = append(result, *w)
	}
	return result, rows.Err()
}

// LatestWorkoutWithBodyweight returns the most recent logged workout that
// has a bodyweight recorded, or ErrNotFound if none exists.
func (db *DB) LatestWorkoutWithBodyweight(ctx context.Context) (*models.LoggedWorkout, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, date, name, overall_comments, duration_minutes, bodyweight, weight_unit, exercises, template_id
		 FROM logged_workouts
		 WHERE bodyweight IS NOT NULL
		 ORDER BY date DESC, rowid DESC
		 LIMIT 1`)

	w, err := scanLoggedWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest bodyweight workout: %w", err)
	}
	return w, nil
}

// CompleteWorkout persists a finished workout, its new-or-improved personal
// records, and clears the in-progress draft in one transaction. Record
// upserts are keyed by deterministic ids, so a retry after failure is safe.
func (db *DB) CompleteWorkout(ctx context.Context, w models.LoggedWorkout, records []models.PersonalRecord) error {
	exercises, err := marshalJSON(w.Exercises)
	if err != nil {
		return err
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertLoggedWorkoutSQL,
		w.ID, w.Date, w.Name, w.OverallComments, w.DurationMinutes,
		w.Bodyweight, w.WeightUnit, exercises, w.TemplateID); err != nil {
		return fmt.Errorf("inserting logged workout: %w", err)
	}

	for _, pr := range records {
		if _, err := tx.ExecContext(ctx, upsertPersonalRecordSQL,
			pr.ID, pr.ExerciseID, pr.ExerciseName, pr.Date, pr.LoggedWorkoutID,
			pr.Type, pr.WeightUnit, pr.Reps, pr.Weight, pr.DurationSecs); err != nil {
			return fmt.Errorf("upserting personal record %s: %w", pr.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM active_workout`); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing workout completion: %w", err)
	}

	db.watcher.notify(EntityWorkouts, EntityRecords, EntityDraft)
	return nil
}

func scanLoggedWorkout(row interface{ Scan(dest ...any) error }) (*models.LoggedWorkout, error) {
	var w models.LoggedWorkout
	var exercises string
	if err := row.Scan(&w.ID, &w.Date, &w.Name, &w.OverallComments, &w.DurationMinutes,
		&w.Bodyweight, &w.WeightUnit, &exercises, &w.TemplateID); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(exercises, &w.Exercises); err != nil {
		return nil, err
	}
	return &w, nil
}
