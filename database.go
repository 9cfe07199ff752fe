package zipstat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/zipstat/domain/model"
	_ "modernc.org/sqlite" // Register the "sqlite" driver
)

// tableRows pairs a schema with the rows to insert into it.
type tableRows struct {
	schema model.Schema
	rows   [][]any
}

// tables returns the three tables in a fixed order. Datasets that were not
// loaded yield empty tables.
func (d *Dataset) tables() []tableRows {
	populations := make([][]any, 0, len(d.Populations))
	for _, p := range d.Populations {
		populations = append(populations, p.Values())
	}
	vaccinations := make([][]any, 0, len(d.Vaccinations))
	for _, v := range d.Vaccinations {
		vaccinations = append(vaccinations, v.Values())
	}
	properties := make([][]any, 0, len(d.Properties))
	for _, p := range d.Properties {
		properties = append(properties, p.Values())
	}

	return []tableRows{
		{schema: model.PopulationSchema, rows: populations},
		{schema: model.VaccinationSchema, rows: vaccinations},
		{schema: model.PropertySchema, rows: properties},
	}
}

// OpenDB loads the dataset into an in-memory SQLite database with the tables
// "population", "vaccination" and "property". Unknown property measures are
// NULL. The caller closes the returned database.
func (d *Dataset) OpenDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := d.writeTables(ctx, db); err != nil {
		_ = db.Close() // Ignore close error
		return nil, err
	}
	return db, nil
}

// ExportSQLite writes the tables OpenDB creates to a new SQLite file. An
// existing file is not overwritten.
func (d *Dataset) ExportSQLite(ctx context.Context, path string) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return NewErrorContext("export", path).Error(os.ErrExist)
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return NewErrorContext("export", path).Error(statErr)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return NewErrorContext("export", path).Error(err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = NewErrorContext("export", path).Error(closeErr)
		}
	}()

	if err := d.writeTables(ctx, db); err != nil {
		return NewErrorContext("export", path).Error(err)
	}
	return nil
}

// writeTables creates and fills every table in one transaction.
func (d *Dataset) writeTables(ctx context.Context, db *sql.DB) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // Ignore rollback error
		}
	}()

	for _, t := range d.tables() {
		if err := createTable(ctx, tx, t.schema); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.schema.Table, err)
		}
		if err := insertRows(ctx, tx, t.schema, t.rows); err != nil {
			return fmt.Errorf("failed to fill table %s: %w", t.schema.Table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// createTable creates a SQLite table from a schema
func createTable(ctx context.Context, tx *sql.Tx, schema model.Schema) error {
	columns := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		columns = append(columns, fmt.Sprintf(`"%s" %s`, col.Name, col.Type.String()))
	}

	query := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS "%s" (%s)`,
		schema.Table,
		strings.Join(columns, ", "),
	)

	_, err := tx.ExecContext(ctx, query)
	return err
}

// insertRows inserts rows using a prepared statement
func insertRows(ctx context.Context, tx *sql.Tx, schema model.Schema, rows [][]any) error {
	placeholders := make([]string, len(schema.Columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := fmt.Sprintf(
		`INSERT INTO "%s" VALUES (%s)`,
		schema.Table,
		strings.Join(placeholders, ", "),
	)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer func() {
		_ = stmt.Close() // Ignore close error
	}()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}
	return nil
}
