package workout

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

func strPtr(s string) *string { return &s }

func testTemplate() *models.WorkoutTemplate {
	return &models.WorkoutTemplate{
		ID:   "tpl-1",
		Name: "Push Day",
		Exercises: []models.TemplateExercise{
			{
				ID: "te-1", ExerciseID: "bench", ExerciseName: "Bench Press", Order: 0,
				Sets: []models.TemplateSet{
					{ID: "ts-1", TargetReps: strPtr("8-12")},
					{ID: "ts-2", TargetReps: strPtr("8-12")},
					{ID: "ts-3"},
				},
			},
			{
				ID: "te-2", ExerciseID: "ohp", ExerciseName: "Overhead Press", Order: 1,
				Sets: []models.TemplateSet{
					{ID: "ts-4", TargetReps: strPtr("10")},
				},
			},
		},
	}
}

func TestFromTemplateShape(t *testing.T) {
	tpl := testTemplate()
	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)

	draft := FromTemplate(tpl, now)

	if draft.Date != "2026-08-28" {
		t.Errorf("date = %q, want 2026-08-28", draft.Date)
	}
	if draft.Name == nil || *draft.Name != "Push Day" {
		t.Errorf("name not copied from template: %v", draft.Name)
	}
	if draft.TemplateID == nil || *draft.TemplateID != "tpl-1" {
		t.Errorf("template id not recorded: %v", draft.TemplateID)
	}
	if draft.WeightUnit != nil {
		t.Errorf("weight unit should stay unset on a draft, got %q", *draft.WeightUnit)
	}

	if len(draft.Exercises) != len(tpl.Exercises) {
		t.Fatalf("exercises = %d, want %d", len(draft.Exercises), len(tpl.Exercises))
	}
	for i, ex := range draft.Exercises {
		tplEx := tpl.Exercises[i]
		if ex.ExerciseID != tplEx.ExerciseID || ex.ExerciseName != tplEx.ExerciseName {
			t.Errorf("exercise %d: got (%s, %s), want (%s, %s)",
				i, ex.ExerciseID, ex.ExerciseName, tplEx.ExerciseID, tplEx.ExerciseName)
		}
		if len(ex.Sets) != len(tplEx.Sets) {
			t.Fatalf("exercise %d: sets = %d, want %d", i, len(ex.Sets), len(tplEx.Sets))
		}
		for j, set := range ex.Sets {
			if set.Reps != nil || set.Weight != nil {
				t.Errorf("exercise %d set %d: performance fields must start unset", i, j)
			}
		}
	}

	// First set carries the rep target in its notes, the target-less set none.
	first := draft.Exercises[0].Sets[0]
	if first.Notes == nil || *first.Notes != "Target: 8-12" {
		t.Errorf("set notes = %v, want Target: 8-12", first.Notes)
	}
	if draft.Exercises[0].Sets[2].Notes != nil {
		t.Errorf("set without target reps should have no notes")
	}
}

func TestFromTemplateGeneratesFreshIDs(t *testing.T) {
	tpl := testTemplate()
	draft := FromTemplate(tpl, time.Now())

	templateIDs := map[string]bool{"tpl-1": true, "te-1": true, "te-2": true,
		"ts-1": true, "ts-2": true, "ts-3": true, "ts-4": true}

	seen := map[string]bool{}
	check := func(id string) {
		t.Helper()
		if templateIDs[id] {
			t.Errorf("draft reused template id %q", id)
		}
		if seen[id] {
			t.Errorf("duplicate id %q in draft", id)
		}
		seen[id] = true
	}

	check(draft.ID)
	for _, ex := range draft.Exercises {
		check(ex.ID)
		for _, set := range ex.Sets {
			check(set.ID)
		}
	}
}
