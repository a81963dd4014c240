package mcp

import (
	"context"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// DataSource abstracts the store for MCP tool/resource handlers.
type DataSource interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	ListLoggedWorkouts(ctx context.Context) ([]models.LoggedWorkout, error)
	ListPersonalRecords(ctx context.Context) ([]models.PersonalRecord, error)
	GetActiveCycle(ctx context.Context) (*models.ActiveCycle, error)
	GetProgramTemplate(ctx context.Context, id string) (*models.ProgramTemplate, error)
	WeightUnit(ctx context.Context) (string, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
