package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"spot-guide/models"
)

// Fetcher liest die Spot-Tabelle aus einer lokalen CSV/TSV-Datei.
type Fetcher struct {
	Path      string
	Delimiter rune
	Logger    *zap.Logger
}

// NewFetcher erstellt einen Datei-Fetcher. Für .tsv-Dateien ohne Vorgabe wird Tab verwendet.
func NewFetcher(path string, delimiter rune, logger *zap.Logger) *Fetcher {
	if delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		delimiter = '\t'
	}
	return &Fetcher{Path: path, Delimiter: delimiter, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "file"
}

// Load liest und parst die Datei.
func (f *Fetcher) Load(ctx context.Context) (*models.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(f.Path), err)
	}
	defer file.Close()

	table, err := ParseTable(file, f.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(f.Path), err)
	}
	f.Logger.Debug("Tabelle gelesen", zap.String("path", f.Path), zap.Int("rows", len(table.Records)), zap.Strings("columns", table.Columns))
	return table, nil
}
