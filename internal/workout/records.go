package workout

import "github.com/claude/liftlog/internal/models"

// DetectNewRecords compares a finished workout against the stored personal
// records for its exercises and returns the records that are new or improved
// by this workout.
//
// Every set produces up to three candidates: max-weight-for-reps and
// max-reps-at-weight (both gated on reps > 0 and weight > 0 — the two share
// one guard), and duration (gated on secs > 0). Candidates are merged with
// the existing records by id; higher weight, reps, or duration wins per
// type, and a tie keeps the standing record. Only winners dated this
// workout's date are returned, so records that survived unbeaten from an
// earlier date are not re-emitted.
func DetectNewRecords(w *models.LoggedWorkout, existing []models.PersonalRecord) []models.PersonalRecord {
	var candidates []models.PersonalRecord

	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			if set.Reps != nil && set.Weight != nil && *set.Reps > 0 && *set.Weight > 0 {
				candidates = append(candidates, models.PersonalRecord{
					ID:              models.MaxWeightForRepsID(ex.ExerciseID, *set.Reps),
					ExerciseID:      ex.ExerciseID,
					ExerciseName:    ex.ExerciseName,
					Date:            w.Date,
					LoggedWorkoutID: w.ID,
					Type:            models.MaxWeightForReps,
					WeightUnit:      w.WeightUnit,
					Reps:            set.Reps,
					Weight:          set.Weight,
				})
				candidates = append(candidates, models.PersonalRecord{
					ID:              models.MaxRepsAtWeightID(ex.ExerciseID, *set.Weight),
					ExerciseID:      ex.ExerciseID,
					ExerciseName:    ex.ExerciseName,
					Date:            w.Date,
					LoggedWorkoutID: w.ID,
					Type:            models.MaxRepsAtWeight,
					WeightUnit:      w.WeightUnit,
					Reps:            set.Reps,
					Weight:          set.Weight,
				})
			}

			if set.Secs != nil && *set.Secs > 0 {
				candidates = append(candidates, models.PersonalRecord{
					ID:              models.DurationID(ex.ExerciseID),
					ExerciseID:      ex.ExerciseID,
					ExerciseName:    ex.ExerciseName,
					Date:            w.Date,
					LoggedWorkoutID: w.ID,
					Type:            models.Duration,
					WeightUnit:      w.WeightUnit,
					DurationSecs:    set.Secs,
				})
			}
		}
	}

	// Existing records go in first so a candidate must strictly beat the
	// standing best to replace it.
	best := make(map[string]models.PersonalRecord)
	var order []string
	for _, pr := range append(existing, candidates...) {
		current, ok := best[pr.ID]
		if !ok {
			best[pr.ID] = pr
			order = append(order, pr.ID)
			continue
		}
		if beats(pr, current) {
			best[pr.ID] = pr
		}
	}

	var improved []models.PersonalRecord
	for _, id := range order {
		if pr := best[id]; pr.Date == w.Date {
			improved = append(improved, pr)
		}
	}
	return improved
}

func beats(pr, current models.PersonalRecord) bool {
	switch pr.Type {
	case models.MaxWeightForReps:
		return floatOrZero(pr.Weight) > floatOrZero(current.Weight)
	case models.MaxRepsAtWeight:
		return intOrZero(pr.Reps) > intOrZero(current.Reps)
	case models.Duration:
		return intOrZero(pr.DurationSecs) > intOrZero(current.DurationSecs)
	}
	return false
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
