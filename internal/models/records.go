package models

import "strconv"

// PRType is the dimension along which a personal record is tracked.
type PRType string

const (
	MaxWeightForReps PRType = "MAX_WEIGHT_FOR_REPS"
	MaxRepsAtWeight  PRType = "MAX_REPS_AT_WEIGHT"
	Duration         PRType = "DURATION"
)

// PersonalRecord is the best recorded performance for an exercise along one
// PR dimension. The id doubles as the upsert key, so its construction must
// stay deterministic (see the ID builders below).
type PersonalRecord struct {
	ID              string   `json:"id"`
	ExerciseID      string   `json:"exercise_id"`
	ExerciseName    string   `json:"exercise_name"`
	Date            string   `json:"date"`
	LoggedWorkoutID string   `json:"logged_workout_id"`
	Type            PRType   `json:"type"`
	WeightUnit      *string  `json:"weight_unit,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	DurationSecs    *int     `json:"duration_secs,omitempty"`
}

// MaxWeightForRepsID keys a max-weight record, discriminated by rep count.
func MaxWeightForRepsID(exerciseID string, reps int) string {
	return "max_weight_for_reps_" + exerciseID + "_" + strconv.Itoa(reps)
}

// MaxRepsAtWeightID keys a max-reps record, discriminated by weight value.
// The weight is rendered in its shortest exact decimal form so the same
// weight always yields the same id.
func MaxRepsAtWeightID(exerciseID string, weight float64) string {
	return "max_reps_at_weight_" + exerciseID + "_" + strconv.FormatFloat(weight, 'f', -1, 64)
}

// DurationID keys the single duration record per exercise.
func DurationID(exerciseID string) string {
	return "duration_" + exerciseID
}
