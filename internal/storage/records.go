package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/liftlog/internal/models"
)

const upsertPersonalRecordSQL = `INSERT OR REPLACE INTO personal_records
	(id, exercise_id, exercise_name, date, logged_workout_id, type, weight_unit, reps, weight, duration_secs)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// UpsertPersonalRecord inserts or replaces a personal record. The record id
// is deterministic, so replaying the same upsert is a no-op in effect.
func (db *DB) UpsertPersonalRecord(ctx context.Context, pr models.PersonalRecord) error {
	_, err := db.sql.ExecContext(ctx, upsertPersonalRecordSQL,
		pr.ID, pr.ExerciseID, pr.ExerciseName, pr.Date, pr.LoggedWorkoutID,
		pr.Type, pr.WeightUnit, pr.Reps, pr.Weight, pr.DurationSecs)
	if err != nil {
		return fmt.Errorf("upserting personal record: %w", err)
	}

	db.watcher.notify(EntityRecords)
	return nil
}

// RecordsForExercises retrieves all stored personal records for the given
// exercise ids.
func (db *DB) RecordsForExercises(ctx context.Context, exerciseIDs []string) ([]models.PersonalRecord, error) {
	if len(exerciseIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(exerciseIDs)), ",")
	args := make([]any, len(exerciseIDs))
	for i, id := range exerciseIDs {
		args[i] = id
	}

	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, exercise_id, exercise_name, date, logged_workout_id, type, weight_unit, reps, weight, duration_secs
		 FROM personal_records WHERE exercise_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying personal records: %w", err)
	}
	defer rows.Close()

	return scanPersonalRecords(rows)
}

// ListPersonalRecords retrieves all personal records, most recent first.
func (db *DB) ListPersonalRecords(ctx context.Context) ([]models.PersonalRecord, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, exercise_id, exercise_name, date, logged_workout_id, type, weight_unit, reps, weight, duration_secs
		 FROM personal_records ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying personal records: %w", err)
	}
	defer rows.Close()

	return scanPersonalRecords(rows)
}

func scanPersonalRecords(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.PersonalRecord, error) {
	var result []models.PersonalRecord
	for rows.Next() {
		var pr models.PersonalRecord
		if err := rows.Scan(&pr.ID, &pr.ExerciseID, &pr.ExerciseName, &pr.Date, &pr.LoggedWorkoutID,
			&pr.Type, &pr.WeightUnit, &pr.Reps, &pr.Weight, &pr.DurationSecs); err != nil {
			return nil, fmt.Errorf("scanning personal record: %w", err)
		}
		result = append(result, pr)
	}
	return result, rows.Err()
}
