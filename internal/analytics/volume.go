package analytics

import (
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// Window is a predefined time window anchored to "now" for volume
// aggregation.
type Window string

const (
	// WindowCalendarWeek covers the current calendar week, starting Monday.
	WindowCalendarWeek Window = "week"
	// WindowTrailing7 covers today and the 6 days before it.
	WindowTrailing7 Window = "7d"
	// WindowCalendarMonth covers the current calendar month.
	WindowCalendarMonth Window = "month"
	// WindowTrailing30 covers today and the 29 days before it.
	WindowTrailing30 Window = "30d"
)

// Start returns the window's first day. The window always ends at now,
// inclusive.
func (w Window) Start(now time.Time) (time.Time, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case WindowCalendarWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset), nil
	case WindowTrailing7:
		return day.AddDate(0, 0, -6), nil
	case WindowCalendarMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case WindowTrailing30:
		return day.AddDate(0, 0, -29), nil
	}
	return time.Time{}, fmt.Errorf("unknown volume window %q", w)
}

// FilterByWindow returns the workouts whose date falls within [window
// start, now], inclusive. Dates are yyyy-MM-dd strings, which compare
// lexicographically in date order.
func FilterByWindow(workouts []models.LoggedWorkout, w Window, now time.Time) ([]models.LoggedWorkout, error) {
	start, err := w.Start(now)
	if err != nil {
		return nil, err
	}
	startStr := start.Format(models.DateFormat)
	endStr := now.Format(models.DateFormat)

	var filtered []models.LoggedWorkout
	for _, workout := range workouts {
		if workout.Date >= startStr && workout.Date <= endStr {
			filtered = append(filtered, workout)
		}
	}
	return filtered, nil
}

// FilterByProgramWeek returns the workouts that fulfilled sessions of the
// given week in the active cycle: completed-session entries whose composite
// key carries the week's id name the logged workouts to keep.
func FilterByProgramWeek(workouts []models.LoggedWorkout, cycle *models.ActiveCycle, week *models.ProgramWeek) []models.LoggedWorkout {
	if cycle == nil || week == nil {
		return nil
	}

	completed := make(map[string]bool)
	for _, session := range week.Sessions {
		if workoutID, ok := cycle.CompletedSessions[models.SessionKey(week.ID, session.ID)]; ok {
			completed[workoutID] = true
		}
	}

	var filtered []models.LoggedWorkout
	for _, workout := range workouts {
		if completed[workout.ID] {
			filtered = append(filtered, workout)
		}
	}
	return filtered
}

// VolumeBySets totals the logged set count per muscle group across the given
// workouts. Every set counts fully toward each muscle group its exercise
// targets; a muscle group with no sets in range is absent from the result.
func VolumeBySets(workouts []models.LoggedWorkout, exercises []models.Exercise) map[models.MuscleGroup]int {
	byID := make(map[string]models.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}

	volume := make(map[models.MuscleGroup]int)
	for _, workout := range workouts {
		for _, logged := range workout.Exercises {
			setCount := len(logged.Sets)
			if setCount == 0 {
				continue
			}
			for _, group := range byID[logged.ExerciseID].TargetMuscles {
				volume[group] += setCount
			}
		}
	}
	return volume
}
