package workout

import (
	"strconv"

	"github.com/claude/liftlog/internal/models"
)

// The editor applies replace-on-write updates to a draft snapshot: every
// edit returns a new workout value that reuses all unaffected substructures,
// so a reader holding the previous snapshot keeps a consistent view.

// UpdateSet replaces the reps/weight of the set addressed by
// (exerciseID, setID), leaving every other set and all ordering untouched.
// Malformed or empty text parses to unset, never to an error.
func UpdateSet(w *models.LoggedWorkout, exerciseID, setID, repsText, weightText string) *models.LoggedWorkout {
	updated := *w
	updated.Exercises = make([]models.LoggedExercise, len(w.Exercises))
	copy(updated.Exercises, w.Exercises)

	for i, ex := range updated.Exercises {
		if ex.ID != exerciseID {
			continue
		}
		sets := make([]models.LoggedSet, len(ex.Sets))
		copy(sets, ex.Sets)
		for j, set := range sets {
			if set.ID != setID {
				continue
			}
			set.Reps = parseOptionalInt(repsText)
			set.Weight = parseOptionalFloat(weightText)
			sets[j] = set
		}
		updated.Exercises[i].Sets = sets
	}

	return &updated
}

// UpdateBodyweight replaces the draft's bodyweight with the tolerant-parsed
// value of text.
func UpdateBodyweight(w *models.LoggedWorkout, text string) *models.LoggedWorkout {
	updated := *w
	updated.Bodyweight = parseOptionalFloat(text)
	return &updated
}

func parseOptionalInt(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
