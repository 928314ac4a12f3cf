package sqltable

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"spot-guide/models"
)

// SQLiteFetcher liest die Spot-Tabelle aus einer SQLite-Datei.
type SQLiteFetcher struct {
	DB     *sql.DB
	Table  string
	Logger *zap.Logger
}

// OpenSQLite öffnet eine SQLite-Datenbank über den reinen Go-Treiber.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

// NewSQLiteFetcher erstellt einen Fetcher für die angegebene Tabelle.
func NewSQLiteFetcher(db *sql.DB, table string, logger *zap.Logger) *SQLiteFetcher {
	return &SQLiteFetcher{DB: db, Table: table, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *SQLiteFetcher) Name() string {
	return "sqlite"
}

// Load liest alle Zeilen der Tabelle.
func (f *SQLiteFetcher) Load(ctx context.Context) (*models.RawTable, error) {
	rows, err := f.DB.QueryContext(ctx, "SELECT * FROM "+quoteIdent(f.Table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", f.Table, err)
	}
	table, err := TableFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Table, err)
	}
	f.Logger.Debug("Tabelle aus SQLite gelesen", zap.String("table", f.Table), zap.Int("rows", len(table.Records)))
	return table, nil
}
