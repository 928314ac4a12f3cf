package sqltable

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"spot-guide/config"
	"spot-guide/models"
)

// PostgresFetcher liest die Spot-Tabelle aus PostgreSQL. Es wird nur gelesen.
type PostgresFetcher struct {
	DB     *gorm.DB
	Table  string
	Logger *zap.Logger
}

// OpenPostgres öffnet die Verbindung wie in der restlichen Anwendung über gorm.
func OpenPostgres(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// NewPostgresFetcher erstellt einen Fetcher für SPOTS_TABLE.
func NewPostgresFetcher(db *gorm.DB, table string, logger *zap.Logger) *PostgresFetcher {
	return &PostgresFetcher{DB: db, Table: table, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *PostgresFetcher) Name() string {
	return "postgres"
}

// Load liest alle Spalten der Tabelle in Einfügereihenfolge der Datenbank.
func (f *PostgresFetcher) Load(ctx context.Context) (*models.RawTable, error) {
	rows, err := f.DB.WithContext(ctx).Table(f.Table).Select("*").Rows()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", f.Table, err)
	}
	table, err := TableFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Table, err)
	}
	f.Logger.Debug("Tabelle aus PostgreSQL gelesen", zap.String("table", f.Table), zap.Int("rows", len(table.Records)))
	return table, nil
}
