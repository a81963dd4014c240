package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// UpsertProgramTemplate inserts or replaces a program blueprint.
func (db *DB) UpsertProgramTemplate(ctx context.Context, p models.ProgramTemplate) error {
	weeks, err := marshalJSON(p.Weeks)
	if err != nil {
		return err
	}

	_, err = db.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO program_templates (id, name, description, weeks)
		 VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, weeks)
	if err != nil {
		return fmt.Errorf("upserting program template: %w", err)
	}

	db.watcher.notify(EntityPrograms)
	return nil
}

// DeleteProgramTemplate removes a program blueprint by id.
func (db *DB) DeleteProgramTemplate(ctx context.Context, id string) error {
	if _, err := db.sql.ExecContext(ctx, `DELETE FROM program_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting program template: %w", err)
	}
	db.watcher.notify(EntityPrograms)
	return nil
}

// GetProgramTemplate retrieves a single program blueprint by id.
func (db *DB) GetProgramTemplate(ctx context.Context, id string) (*models.ProgramTemplate, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, name, description, weeks FROM program_templates WHERE id = ?`, id)

	p, err := scanProgramTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying program template: %w", err)
	}
	return p, nil
}

// ListProgramTemplates retrieves all program blueprints ordered by name.
func (db *DB) ListProgramTemplates(ctx context.Context) ([]models.ProgramTemplate, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, name, description, weeks FROM program_templates ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying program templates: %w", err)
	}
	defer rows.Close()

	var result []models.ProgramTemplate
	for rows.Next() {
		p, err := scanProgramTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program template: %w", err)
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func scanProgramTemplate(row interface{ Scan(dest ...any) error }) (*models.ProgramTemplate, error) {
	var p models.ProgramTemplate
	var weeks string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &weeks); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(weeks, &p.Weeks); err != nil {
		return nil, err
	}
	return &p, nil
}
