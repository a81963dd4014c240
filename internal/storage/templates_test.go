package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/claude/liftlog/internal/models"
)

func TestWorkoutTemplateRoundtrip(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	target := "8-12"
	tpl := models.WorkoutTemplate{
		ID:   "tpl-1",
		Name: "Push Day",
		Exercises: []models.TemplateExercise{
			{ID: "te-1", ExerciseID: "bench", ExerciseName: "Bench Press", Order: 0,
				Sets: []models.TemplateSet{{ID: "ts-1", TargetReps: &target}, {ID: "ts-2"}}},
			{ID: "te-2", ExerciseID: "ohp", ExerciseName: "Overhead Press", Order: 1,
				Sets: []models.TemplateSet{{ID: "ts-3"}}},
		},
	}
	if err := db.UpsertWorkoutTemplate(ctx, tpl); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	got, err := db.GetWorkoutTemplate(ctx, "tpl-1")
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	if len(got.Exercises) != 2 || len(got.Exercises[0].Sets) != 2 {
		t.Fatalf("nested structure lost: %+v", got)
	}
	if got.Exercises[0].Sets[0].TargetReps == nil || *got.Exercises[0].Sets[0].TargetReps != "8-12" {
		t.Errorf("target reps = %v, want 8-12", got.Exercises[0].Sets[0].TargetReps)
	}
	if got.Exercises[1].Order != 1 {
		t.Errorf("order = %d, want 1", got.Exercises[1].Order)
	}

	if _, err := db.GetWorkoutTemplate(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing template: err = %v, want ErrNotFound", err)
	}
}

func TestProgramTemplateRoundtrip(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)

	p := models.ProgramTemplate{
		ID:   "prog-1",
		Name: "Hypertrophy Block",
		Weeks: []models.ProgramWeek{
			{ID: "week1", Label: "Week 1: RIR 3", Order: 0, Sessions: []models.ProgramSession{
				{ID: "sess1", Name: "Day 1: Push", WorkoutTemplateID: "tpl-1", Order: 0},
				{ID: "sess2", Name: "Day 2: Pull", WorkoutTemplateID: "tpl-2", Order: 1},
			}},
			{ID: "week2", Label: "Week 2: RIR 2", Order: 1},
		},
	}
	if err := db.UpsertProgramTemplate(ctx, p); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	got, err := db.GetProgramTemplate(ctx, "prog-1")
	if err != nil {
		t.Fatalf("getting: %v", err)
	}
	if len(got.Weeks) != 2 || len(got.Weeks[0].Sessions) != 2 {
		t.Fatalf("nested structure lost: %+v", got)
	}
	if got.Weeks[0].Sessions[1].WorkoutTemplateID != "tpl-2" {
		t.Errorf("session template link = %q, want tpl-2", got.Weeks[0].Sessions[1].WorkoutTemplateID)
	}

	all, err := db.ListProgramTemplates(ctx)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("programs = %d, want 1", len(all))
	}
}
