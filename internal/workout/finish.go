package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// Finisher turns the in-progress draft into a permanent logged workout:
// missing bodyweight is carried forward from history, the workout is stamped
// with the current display unit, and new personal records are detected and
// upserted. Workout and record writes commit in one transaction, after which
// the draft is gone and no further edits are possible.
type Finisher struct {
	db  *storage.DB
	log *slog.Logger
}

// NewFinisher creates a workout completion service.
func NewFinisher(db *storage.DB, log *slog.Logger) *Finisher {
	return &Finisher{db: db, log: log}
}

// Finish completes the current draft and returns the finished workout along
// with the personal records this workout set or improved.
func (f *Finisher) Finish(ctx context.Context) (*models.LoggedWorkout, []models.PersonalRecord, error) {
	draft, err := f.db.GetDraft(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrNoActiveWorkout
	}
	if err != nil {
		return nil, nil, fmt.Errorf("finishing workout: %w", err)
	}

	// Carry bodyweight forward from the most recent workout that has one.
	if draft.Bodyweight == nil || *draft.Bodyweight <= 0 {
		prev, err := f.db.LatestWorkoutWithBodyweight(ctx)
		switch {
		case err == nil:
			draft.Bodyweight = prev.Bodyweight
		case errors.Is(err, storage.ErrNotFound):
			// no history, bodyweight stays unset
		default:
			return nil, nil, fmt.Errorf("finishing workout: %w", err)
		}
	}

	// Label the performance values with the currently selected display
	// unit. No value conversion happens here.
	unit, err := f.db.WeightUnit(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("finishing workout: %w", err)
	}
	draft.WeightUnit = &unit

	existing, err := f.db.RecordsForExercises(ctx, draft.ExerciseIDs())
	if err != nil {
		return nil, nil, fmt.Errorf("finishing workout: %w", err)
	}

	newRecords := DetectNewRecords(draft, existing)

	if err := f.db.CompleteWorkout(ctx, *draft, newRecords); err != nil {
		return nil, nil, fmt.Errorf("finishing workout: %w", err)
	}

	f.log.Info("workout finished", "workout_id", draft.ID, "date", draft.Date,
		"unit", unit, "new_records", len(newRecords))
	return draft, newRecords, nil
}
