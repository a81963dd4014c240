package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/mark3labs/mcp-go/mcp"
)

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) weeklyVolume(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workouts, err := h.ds.ListLoggedWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := analytics.FilterByWindow(workouts, analytics.WindowCalendarWeek, time.Now())
	if err != nil {
		return nil, err
	}

	return jsonResource(req.Params.URI, analytics.VolumeBySets(filtered, exercises))
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	workouts, err := h.ds.ListLoggedWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := analytics.FilterByWindow(workouts, analytics.WindowTrailing30, time.Now())
	if err != nil {
		return nil, err
	}

	return jsonResource(req.Params.URI, filtered)
}

func (h *handlers) personalRecords(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	records, err := h.ds.ListPersonalRecords(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, records)
}
