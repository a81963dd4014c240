package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// Logger manages the single in-progress workout draft. The draft lives in
// storage so an interrupted session survives a process restart; edits go
// through the pure editor functions and the result replaces the stored
// snapshot.
type Logger struct {
	db  *storage.DB
	log *slog.Logger
}

// NewLogger creates a workout logging service.
func NewLogger(db *storage.DB, log *slog.Logger) *Logger {
	return &Logger{db: db, log: log}
}

// Start instantiates a new draft from the given template, replacing any
// draft already in progress.
func (l *Logger) Start(ctx context.Context, templateID string) (*models.LoggedWorkout, error) {
	tpl, err := l.db.GetWorkoutTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("starting workout: %w", err)
	}

	draft := FromTemplate(tpl, time.Now())
	if err := l.db.SaveDraft(ctx, *draft); err != nil {
		return nil, fmt.Errorf("starting workout: %w", err)
	}

	l.log.Info("workout started", "workout_id", draft.ID, "template", tpl.Name,
		"exercises", len(draft.Exercises))
	return draft, nil
}

// Active returns the current draft, or storage.ErrNotFound when no workout
// is being logged.
func (l *Logger) Active(ctx context.Context) (*models.LoggedWorkout, error) {
	return l.db.GetDraft(ctx)
}

// UpdateSet records performance text for one set of the draft.
func (l *Logger) UpdateSet(ctx context.Context, exerciseID, setID, repsText, weightText string) (*models.LoggedWorkout, error) {
	draft, err := l.db.GetDraft(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating set: %w", err)
	}

	updated := UpdateSet(draft, exerciseID, setID, repsText, weightText)
	if err := l.db.SaveDraft(ctx, *updated); err != nil {
		return nil, fmt.Errorf("updating set: %w", err)
	}
	return updated, nil
}

// UpdateBodyweight records bodyweight text on the draft.
func (l *Logger) UpdateBodyweight(ctx context.Context, text string) (*models.LoggedWorkout, error) {
	draft, err := l.db.GetDraft(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating bodyweight: %w", err)
	}

	updated := UpdateBodyweight(draft, text)
	if err := l.db.SaveDraft(ctx, *updated); err != nil {
		return nil, fmt.Errorf("updating bodyweight: %w", err)
	}
	return updated, nil
}

// Discard throws away the draft without logging it.
func (l *Logger) Discard(ctx context.Context) error {
	if err := l.db.ClearDraft(ctx); err != nil {
		return fmt.Errorf("discarding workout: %w", err)
	}
	l.log.Info("workout discarded")
	return nil
}

// ErrNoActiveWorkout reports a finish or edit with nothing in progress.
var ErrNoActiveWorkout = errors.New("no workout in progress")
