package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise library with target muscle groups, equipment, and preferred rep ranges."),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Logged workout history, most recent first. Each workout includes its exercises and sets (reps, weight, RIR, duration)."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of workouts to return. Defaults to 20.")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records across all exercises: max weight for a rep count, max reps at a weight, and longest duration."),
	mcp.WithString("exercise_id", mcp.Description("Filter to a single exercise id")),
)

var toolGetVolume = mcp.NewTool("get_volume",
	mcp.WithDescription("Training volume as logged set count per muscle group. Select either a time window anchored to today, or one week of the active program cycle."),
	mcp.WithString("window", mcp.Description("Time window. Defaults to 'week' (current calendar week, Monday start)."), mcp.Enum("week", "7d", "month", "30d")),
	mcp.WithString("week_id", mcp.Description("Program-week mode: id of a week in the active cycle's program. Overrides window.")),
)

var toolGetBodyweightTrend = mcp.NewTool("get_bodyweight_trend",
	mcp.WithDescription("Bodyweight series from the workout history, oldest first, normalized to kg."),
)

var toolGetExerciseProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Per-workout best estimated one-rep max (Epley) for an exercise, oldest first, normalized to kg."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id to chart")),
)

var toolGetActiveCycle = mcp.NewTool("get_active_cycle",
	mcp.WithDescription("The currently running program cycle, including which program sessions have been completed."),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	workouts, err := h.ds.ListLoggedWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := h.ds.ListPersonalRecords(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if exerciseID := req.GetString("exercise_id", ""); exerciseID != "" {
		var filtered []models.PersonalRecord
		for _, pr := range records {
			if pr.ExerciseID == exerciseID {
				filtered = append(filtered, pr)
			}
		}
		records = filtered
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListLoggedWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_volume workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp get_volume exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if weekID := req.GetString("week_id", ""); weekID != "" {
		filtered, err := h.programWeekWorkouts(ctx, workouts, weekID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := mcp.NewToolResultJSON(analytics.VolumeBySets(filtered, exercises))
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	window := analytics.Window(req.GetString("window", string(analytics.WindowCalendarWeek)))
	filtered, err := analytics.FilterByWindow(workouts, window, time.Now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analytics.VolumeBySets(filtered, exercises))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) programWeekWorkouts(ctx context.Context, workouts []models.LoggedWorkout, weekID string) ([]models.LoggedWorkout, error) {
	cycle, err := h.ds.GetActiveCycle(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errors.New("no active program cycle")
	}
	if err != nil {
		h.log.Error("mcp get_volume cycle", "error", err)
		return nil, fmt.Errorf("query failed: %w", err)
	}

	program, err := h.ds.GetProgramTemplate(ctx, cycle.ProgramTemplateID)
	if err != nil {
		h.log.Error("mcp get_volume program", "error", err)
		return nil, fmt.Errorf("query failed: %w", err)
	}

	for i := range program.Weeks {
		if program.Weeks[i].ID == weekID {
			return analytics.FilterByProgramWeek(workouts, cycle, &program.Weeks[i]), nil
		}
	}
	return nil, fmt.Errorf("week %q not found in program %q", weekID, program.Name)
}

func (h *handlers) getBodyweightTrend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListLoggedWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_bodyweight_trend", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analytics.BodyweightTrend(workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	workouts, err := h.ds.ListLoggedWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_exercise_progression", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(analytics.E1RMProgression(workouts, exerciseID))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getActiveCycle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cycle, err := h.ds.GetActiveCycle(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultText(`{"active": false}`), nil
	}
	if err != nil {
		h.log.Error("mcp get_active_cycle", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(cycle)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
