package sqltable

import (
	"database/sql"
	"fmt"
	"strings"

	"spot-guide/models"
)

// TableFromRows liest alle Zeilen eines Ergebnisses als Rohtabelle. NULL wird zu "".
func TableFromRows(rows *sql.Rows) (*models.RawTable, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, models.ErrNoColumns
	}

	table := &models.RawTable{Columns: columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(table.Records)+1, err)
		}
		rec := make(models.RawRecord, len(columns))
		for i, v := range values {
			if v.Valid {
				rec[i] = v.String
			}
		}
		table.Records = append(table.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return table, nil
}

// quoteIdent quotet einen Tabellennamen für SQL (auch schema.tabelle).
func quoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}
