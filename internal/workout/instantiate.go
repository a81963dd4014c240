package workout

import (
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
)

// FromTemplate builds a fresh draft workout from a template: one logged
// exercise per template exercise, one empty set per planned set. Performance
// fields start unset; the planned rep target is carried in the set notes so
// it stays visible while logging. Every id is newly generated — the draft
// shares no identity with the template.
func FromTemplate(tpl *models.WorkoutTemplate, now time.Time) *models.LoggedWorkout {
	exercises := make([]models.LoggedExercise, 0, len(tpl.Exercises))
	for _, tplEx := range tpl.Exercises {
		sets := make([]models.LoggedSet, 0, len(tplEx.Sets))
		for _, tplSet := range tplEx.Sets {
			var notes *string
			if tplSet.TargetReps != nil {
				n := "Target: " + *tplSet.TargetReps
				notes = &n
			}
			sets = append(sets, models.LoggedSet{
				ID:    uuid.NewString(),
				Notes: notes,
			})
		}
		exercises = append(exercises, models.LoggedExercise{
			ID:           uuid.NewString(),
			ExerciseID:   tplEx.ExerciseID,
			ExerciseName: tplEx.ExerciseName,
			Sets:         sets,
		})
	}

	name := tpl.Name
	templateID := tpl.ID
	return &models.LoggedWorkout{
		ID:         uuid.NewString(),
		Date:       now.Format(models.DateFormat),
		Name:       &name,
		Exercises:  exercises,
		TemplateID: &templateID,
	}
}
