package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered. It is
// served over stdio by cmd/liftlog-mcp; the workout log never leaves the
// device.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog workout tracker. Query the exercise library, logged workout history, personal records, muscle-group volume, and bodyweight trend for the local user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetVolume, Handler: h.getVolume},
		server.ServerTool{Tool: toolGetBodyweightTrend, Handler: h.getBodyweightTrend},
		server.ServerTool{Tool: toolGetExerciseProgression, Handler: h.getExerciseProgression},
		server.ServerTool{Tool: toolGetActiveCycle, Handler: h.getActiveCycle},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklyVolume, Handler: h.weeklyVolume},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resPersonalRecords, Handler: h.personalRecords},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWeeklyVolume = mcp.NewResource(
	"liftlog://weekly_volume",
	"Weekly Volume",
	mcp.WithResourceDescription("Logged set count per muscle group for the current calendar week (Monday start)"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"liftlog://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Logged workouts from the trailing 30 days"),
	mcp.WithMIMEType("application/json"),
)

var resPersonalRecords = mcp.NewResource(
	"liftlog://personal_records",
	"Personal Records",
	mcp.WithResourceDescription("All personal records (weight-for-reps, reps-at-weight, duration), most recent first"),
	mcp.WithMIMEType("application/json"),
)
