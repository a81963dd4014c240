package analytics

import (
	"sort"

	"github.com/claude/liftlog/internal/models"
)

// BodyweightPoint is one bodyweight observation, normalized to kg.
type BodyweightPoint struct {
	Date       string  `json:"date"`
	Bodyweight float64 `json:"bodyweight_kg"`
}

// BodyweightTrend extracts the bodyweight series from the workout history,
// oldest first. Each value is converted to kg using the unit the workout was
// recorded in; workouts without a bodyweight are skipped.
func BodyweightTrend(workouts []models.LoggedWorkout) []BodyweightPoint {
	var points []BodyweightPoint
	for _, w := range workouts {
		if w.Bodyweight == nil {
			continue
		}
		points = append(points, BodyweightPoint{
			Date:       w.Date,
			Bodyweight: models.ToKg(*w.Bodyweight, w.WeightUnit),
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// E1RMPoint is the best estimated one-rep max achieved for an exercise in
// one workout, normalized to kg.
type E1RMPoint struct {
	Date            string  `json:"date"`
	LoggedWorkoutID string  `json:"logged_workout_id"`
	E1RM            float64 `json:"e1rm_kg"`
}

// E1RMProgression computes, per workout, the best Epley e1RM logged for the
// given exercise, oldest first. Sets without positive reps and weight are
// skipped.
func E1RMProgression(workouts []models.LoggedWorkout, exerciseID string) []E1RMPoint {
	var points []E1RMPoint
	for _, w := range workouts {
		best := 0.0
		for _, ex := range w.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			for _, set := range ex.Sets {
				if set.Reps == nil || set.Weight == nil || *set.Reps < 1 || *set.Weight <= 0 {
					continue
				}
				weightKg := models.ToKg(*set.Weight, w.WeightUnit)
				e1rm, err := models.EstimateOneRepMax(weightKg, *set.Reps)
				if err != nil {
					continue
				}
				if e1rm > best {
					best = e1rm
				}
			}
		}
		if best > 0 {
			points = append(points, E1RMPoint{Date: w.Date, LoggedWorkoutID: w.ID, E1RM: best})
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
