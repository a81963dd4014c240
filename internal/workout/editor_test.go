package workout

import (
	"reflect"
	"testing"

	"github.com/claude/liftlog/internal/models"
)

func draftWorkout() *models.LoggedWorkout {
	return &models.LoggedWorkout{
		ID:   "w-1",
		Date: "2026-08-28",
		Exercises: []models.LoggedExercise{
			{ID: "e-1", ExerciseID: "bench", ExerciseName: "Bench Press", Sets: []models.LoggedSet{
				{ID: "s-1"}, {ID: "s-2"},
			}},
			{ID: "e-2", ExerciseID: "row", ExerciseName: "Barbell Row", Sets: []models.LoggedSet{
				{ID: "s-3"},
			}},
		},
	}
}

func TestUpdateSetTargetsOnlyOneSet(t *testing.T) {
	original := draftWorkout()
	updated := UpdateSet(original, "e-1", "s-2", "10", "82.5")

	target := updated.Exercises[0].Sets[1]
	if target.Reps == nil || *target.Reps != 10 {
		t.Errorf("reps = %v, want 10", target.Reps)
	}
	if target.Weight == nil || *target.Weight != 82.5 {
		t.Errorf("weight = %v, want 82.5", target.Weight)
	}

	// Everything else is untouched, including the prior snapshot.
	if updated.Exercises[0].Sets[0].Reps != nil || updated.Exercises[1].Sets[0].Reps != nil {
		t.Error("update leaked into other sets")
	}
	if !reflect.DeepEqual(original, draftWorkout()) {
		t.Error("original snapshot was mutated")
	}
	if updated.ID != original.ID || updated.Date != original.Date {
		t.Error("workout-level fields changed")
	}
}

func TestUpdateSetIdempotent(t *testing.T) {
	once := UpdateSet(draftWorkout(), "e-1", "s-1", "8", "100")
	twice := UpdateSet(once, "e-1", "s-1", "8", "100")

	if !reflect.DeepEqual(once, twice) {
		t.Error("reapplying the same update changed the snapshot")
	}
}

func TestUpdateSetTolerantParsing(t *testing.T) {
	tests := []struct {
		name       string
		reps       string
		weight     string
		wantReps   *int
		wantWeight *float64
	}{
		{"empty unsets", "", "", nil, nil},
		{"garbage unsets", "abc", "9..5", nil, nil},
		{"valid", "5", "100.5", intP(5), floatP(100.5)},
		{"mixed", "x", "60", nil, floatP(60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := UpdateSet(draftWorkout(), "e-1", "s-1", tt.reps, tt.weight)
			set := updated.Exercises[0].Sets[0]
			if !reflect.DeepEqual(set.Reps, tt.wantReps) {
				t.Errorf("reps = %v, want %v", set.Reps, tt.wantReps)
			}
			if !reflect.DeepEqual(set.Weight, tt.wantWeight) {
				t.Errorf("weight = %v, want %v", set.Weight, tt.wantWeight)
			}
		})
	}
}

func TestUpdateBodyweight(t *testing.T) {
	original := draftWorkout()

	updated := UpdateBodyweight(original, "70.5")
	if updated.Bodyweight == nil || *updated.Bodyweight != 70.5 {
		t.Errorf("bodyweight = %v, want 70.5", updated.Bodyweight)
	}

	cleared := UpdateBodyweight(updated, "not a number")
	if cleared.Bodyweight != nil {
		t.Errorf("invalid text should unset bodyweight, got %v", *cleared.Bodyweight)
	}

	if original.Bodyweight != nil {
		t.Error("original snapshot was mutated")
	}
}

func intP(v int) *int           { return &v }
func floatP(v float64) *float64 { return &v }
