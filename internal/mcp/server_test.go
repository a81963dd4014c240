package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeDataSource serves canned data so handlers can be exercised without a
// database.
type fakeDataSource struct {
	exercises []models.Exercise
	workouts  []models.LoggedWorkout
	records   []models.PersonalRecord
	cycle     *models.ActiveCycle
	program   *models.ProgramTemplate
}

func (f *fakeDataSource) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeDataSource) ListLoggedWorkouts(ctx context.Context) ([]models.LoggedWorkout, error) {
	return f.workouts, nil
}

func (f *fakeDataSource) ListPersonalRecords(ctx context.Context) ([]models.PersonalRecord, error) {
	return f.records, nil
}

func (f *fakeDataSource) GetActiveCycle(ctx context.Context) (*models.ActiveCycle, error) {
	if f.cycle == nil {
		return nil, storage.ErrNotFound
	}
	return f.cycle, nil
}

func (f *fakeDataSource) GetProgramTemplate(ctx context.Context, id string) (*models.ProgramTemplate, error) {
	if f.program == nil || f.program.ID != id {
		return nil, storage.ErrNotFound
	}
	return f.program, nil
}

func (f *fakeDataSource) WeightUnit(ctx context.Context) (string, error) {
	return models.UnitKg, nil
}

func testHandlers(ds DataSource) *handlers {
	return &handlers{ds: ds, log: slog.New(slog.DiscardHandler)}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestGetActiveCycleNoneRunning(t *testing.T) {
	h := testHandlers(&fakeDataSource{})

	result, err := h.getActiveCycle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if got := resultText(t, result); got != `{"active": false}` {
		t.Errorf("text = %q, want active:false marker", got)
	}
}

func TestGetPersonalRecordsFilter(t *testing.T) {
	h := testHandlers(&fakeDataSource{
		records: []models.PersonalRecord{
			{ID: "duration_plank", ExerciseID: "plank", Type: models.Duration},
			{ID: "duration_hang", ExerciseID: "hang", Type: models.Duration},
		},
	})

	result, err := h.getPersonalRecords(context.Background(),
		callRequest(map[string]any{"exercise_id": "plank"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []models.PersonalRecord
	if err := json.Unmarshal([]byte(resultText(t, result)), &records); err != nil {
		t.Fatalf("parsing result: %v", err)
	}
	if len(records) != 1 || records[0].ExerciseID != "plank" {
		t.Errorf("records = %+v, want only plank", records)
	}
}

func TestGetVolumeProgramWeek(t *testing.T) {
	reps := 5
	ds := &fakeDataSource{
		exercises: []models.Exercise{
			{ID: "squat", Name: "Squat", TargetMuscles: []models.MuscleGroup{models.Quads, models.Glutes}},
		},
		workouts: []models.LoggedWorkout{
			{ID: "w1", Date: "2026-08-24", Exercises: []models.LoggedExercise{
				{ID: "le1", ExerciseID: "squat", Sets: []models.LoggedSet{{ID: "s1", Reps: &reps}, {ID: "s2", Reps: &reps}}},
			}},
			{ID: "w2", Date: "2026-08-25", Exercises: []models.LoggedExercise{
				{ID: "le2", ExerciseID: "squat", Sets: []models.LoggedSet{{ID: "s3", Reps: &reps}}},
			}},
		},
		cycle: &models.ActiveCycle{
			ProgramTemplateID: "prog",
			CompletedSessions: map[string]string{
				models.SessionKey("week1", "sess1"): "w1",
			},
		},
		program: &models.ProgramTemplate{
			ID: "prog", Name: "Block",
			Weeks: []models.ProgramWeek{
				{ID: "week1", Sessions: []models.ProgramSession{{ID: "sess1"}}},
			},
		},
	}
	h := testHandlers(ds)

	result, err := h.getVolume(context.Background(),
		callRequest(map[string]any{"week_id": "week1"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var volume map[models.MuscleGroup]int
	if err := json.Unmarshal([]byte(resultText(t, result)), &volume); err != nil {
		t.Fatalf("parsing result: %v", err)
	}
	// Only w1 fulfilled a session of week1; both its sets count for both
	// muscle groups.
	if volume[models.Quads] != 2 || volume[models.Glutes] != 2 {
		t.Errorf("volume = %v, want quads=2 glutes=2", volume)
	}
}

func TestGetVolumeUnknownWeek(t *testing.T) {
	h := testHandlers(&fakeDataSource{
		cycle:   &models.ActiveCycle{ProgramTemplateID: "prog"},
		program: &models.ProgramTemplate{ID: "prog", Name: "Block"},
	})

	result, err := h.getVolume(context.Background(),
		callRequest(map[string]any{"week_id": "missing"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unknown week")
	}
	if text := resultText(t, result); !strings.Contains(text, "missing") {
		t.Errorf("error text = %q, want week id mentioned", text)
	}
}

func TestRecentWorkoutsResource(t *testing.T) {
	h := testHandlers(&fakeDataSource{
		workouts: []models.LoggedWorkout{{ID: "w1", Date: "1999-01-01"}},
	})

	var req mcp.ReadResourceRequest
	req.Params.URI = "liftlog://recent_workouts"

	contents, err := h.recentWorkouts(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents type %T, want TextResourceContents", contents[0])
	}
	if tc.URI != "liftlog://recent_workouts" || tc.MIMEType != "application/json" {
		t.Errorf("uri/mime = %q/%q", tc.URI, tc.MIMEType)
	}

	// A workout from 1999 falls outside the trailing 30 days.
	var workouts []models.LoggedWorkout
	if err := json.Unmarshal([]byte(tc.Text), &workouts); err != nil {
		t.Fatalf("parsing result: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("workouts = %d, want 0", len(workouts))
	}
}
