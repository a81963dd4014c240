package analytics

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

func intP(v int) *int           { return &v }
func floatP(v float64) *float64 { return &v }

func setOf(n int) []models.LoggedSet {
	sets := make([]models.LoggedSet, n)
	for i := range sets {
		sets[i] = models.LoggedSet{ID: "s", Reps: intP(10), Weight: floatP(60)}
	}
	return sets
}

func TestWindowStart(t *testing.T) {
	// 2026-08-28 is a Friday.
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		window Window
		want   string
	}{
		{WindowCalendarWeek, "2026-08-24"}, // Monday of that week
		{WindowTrailing7, "2026-08-22"},
		{WindowCalendarMonth, "2026-08-01"},
		{WindowTrailing30, "2026-07-30"},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			start, err := tt.window.Start(now)
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			if got := start.Format(models.DateFormat); got != tt.want {
				t.Errorf("start = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWindowStartOnMonday(t *testing.T) {
	// A Monday is its own week start.
	now := time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC)
	start, err := WindowCalendarWeek.Start(now)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := start.Format(models.DateFormat); got != "2026-08-24" {
		t.Errorf("start = %s, want 2026-08-24", got)
	}
}

func TestWindowStartUnknown(t *testing.T) {
	if _, err := Window("fortnight").Start(time.Now()); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func TestFilterByWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	workouts := []models.LoggedWorkout{
		{ID: "in-today", Date: "2026-08-28"},
		{ID: "in-edge", Date: "2026-08-22"},
		{ID: "out-before", Date: "2026-08-21"},
		{ID: "out-future", Date: "2026-08-29"},
	}

	got, err := FilterByWindow(workouts, WindowTrailing7, now)
	if err != nil {
		t.Fatalf("FilterByWindow: %v", err)
	}

	if len(got) != 2 || got[0].ID != "in-today" || got[1].ID != "in-edge" {
		t.Errorf("filtered = %+v, want in-today and in-edge", got)
	}
}

func TestFilterByProgramWeek(t *testing.T) {
	week := &models.ProgramWeek{
		ID: "week1",
		Sessions: []models.ProgramSession{
			{ID: "sess1"}, {ID: "sess2"},
		},
	}
	cycle := &models.ActiveCycle{
		CompletedSessions: map[string]string{
			"week1_sess1": "w-1",
			"week2_sess1": "w-2", // other week, must not leak in
		},
	}
	workouts := []models.LoggedWorkout{
		{ID: "w-1"}, {ID: "w-2"}, {ID: "w-3"},
	}

	got := FilterByProgramWeek(workouts, cycle, week)

	if len(got) != 1 || got[0].ID != "w-1" {
		t.Errorf("filtered = %+v, want only w-1", got)
	}

	if got := FilterByProgramWeek(workouts, nil, week); got != nil {
		t.Errorf("nil cycle should produce no workouts, got %+v", got)
	}
}

func TestVolumeBySetsDoubleCountsMuscleGroups(t *testing.T) {
	exercises := []models.Exercise{
		{ID: "bench", TargetMuscles: []models.MuscleGroup{models.Chest, models.Triceps}},
		{ID: "squat", TargetMuscles: []models.MuscleGroup{models.Quads}},
	}
	workouts := []models.LoggedWorkout{
		{ID: "w-1", Exercises: []models.LoggedExercise{
			{ID: "le-1", ExerciseID: "bench", Sets: setOf(3)},
		}},
		{ID: "w-2", Exercises: []models.LoggedExercise{
			{ID: "le-2", ExerciseID: "squat", Sets: setOf(2)},
			{ID: "le-3", ExerciseID: "bench", Sets: setOf(1)},
		}},
	}

	got := VolumeBySets(workouts, exercises)

	// Each bench set counts fully toward both chest and triceps.
	if got[models.Chest] != 4 || got[models.Triceps] != 4 {
		t.Errorf("chest = %d, triceps = %d, want 4 and 4", got[models.Chest], got[models.Triceps])
	}
	if got[models.Quads] != 2 {
		t.Errorf("quads = %d, want 2", got[models.Quads])
	}
	if _, present := got[models.Back]; present {
		t.Error("untrained muscle group must be absent, not zero")
	}
}

func TestVolumeBySetsUnknownExercise(t *testing.T) {
	workouts := []models.LoggedWorkout{
		{ID: "w-1", Exercises: []models.LoggedExercise{
			{ID: "le-1", ExerciseID: "ghost", Sets: setOf(5)},
		}},
	}

	if got := VolumeBySets(workouts, nil); len(got) != 0 {
		t.Errorf("exercise without muscle groups contributes nothing, got %+v", got)
	}
}
