package models

import "errors"

// ErrNoColumns signalisiert eine strukturell ungültige Tabelle (keine Spalten).
var ErrNoColumns = errors.New("table has no columns")

// RawRecord ist eine eingelesene Zeile; die Zellen stehen in derselben Reihenfolge wie RawTable.Columns.
type RawRecord []string

// Value liefert die Zelle an Position i oder "" bei zu kurzen Zeilen.
func (r RawRecord) Value(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// RawTable ist die unveränderte Tabelle, wie sie ein Loader liefert.
type RawTable struct {
	Columns []string    `json:"columns"`
	Records []RawRecord `json:"-"`
}

// Validate prüft die einzige harte Vorbedingung: mindestens eine Spalte.
func (t *RawTable) Validate() error {
	if t == nil || len(t.Columns) == 0 {
		return ErrNoColumns
	}
	return nil
}
