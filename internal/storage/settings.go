package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

const weightUnitKey = "weight_unit"

// WeightUnit returns the display weight unit preference, defaulting to kg
// when it has never been set.
func (db *DB) WeightUnit(ctx context.Context) (string, error) {
	row := db.sql.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, weightUnitKey)

	var unit string
	err := row.Scan(&unit)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UnitKg, nil
	}
	if err != nil {
		return "", fmt.Errorf("querying weight unit: %w", err)
	}
	return unit, nil
}

// SetWeightUnit stores the display weight unit preference.
func (db *DB) SetWeightUnit(ctx context.Context, unit string) error {
	if unit != models.UnitKg && unit != models.UnitLb {
		return fmt.Errorf("setting weight unit: unknown unit %q", unit)
	}

	_, err := db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, weightUnitKey, unit)
	if err != nil {
		return fmt.Errorf("setting weight unit: %w", err)
	}

	db.watcher.notify(EntitySettings)
	return nil
}
