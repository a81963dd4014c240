package models

import "testing"

func TestRecordIDs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"weight for reps", MaxWeightForRepsID("ex1", 10), "max_weight_for_reps_ex1_10"},
		{"reps at whole weight", MaxRepsAtWeightID("ex1", 100), "max_reps_at_weight_ex1_100"},
		{"reps at fractional weight", MaxRepsAtWeightID("ex1", 82.5), "max_reps_at_weight_ex1_82.5"},
		{"duration", DurationID("ex1"), "duration_ex1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("week1", "sess2"); got != "week1_sess2" {
		t.Errorf("SessionKey = %q, want %q", got, "week1_sess2")
	}
}

func TestExerciseIDsDeduplicates(t *testing.T) {
	w := &LoggedWorkout{
		Exercises: []LoggedExercise{
			{ID: "a", ExerciseID: "squat"},
			{ID: "b", ExerciseID: "bench"},
			{ID: "c", ExerciseID: "squat"},
		},
	}

	ids := w.ExerciseIDs()
	want := []string{"squat", "bench"}
	if len(ids) != len(want) {
		t.Fatalf("ExerciseIDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ExerciseIDs[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
