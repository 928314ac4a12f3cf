package models

import "fmt"

// FieldRole bezeichnet die semantische Bedeutung einer Spalte.
type FieldRole string

const (
	RoleName        FieldRole = "name"
	RoleAddress     FieldRole = "address"
	RoleLatitude    FieldRole = "latitude"
	RoleLongitude   FieldRole = "longitude"
	RoleTags        FieldRole = "tags"
	RoleLink        FieldRole = "link"
	RoleDescription FieldRole = "description"
)

// AllRoles in der Reihenfolge, in der sie aufgelöst und ausgegeben werden.
var AllRoles = []FieldRole{
	RoleName,
	RoleAddress,
	RoleLatitude,
	RoleLongitude,
	RoleTags,
	RoleLink,
	RoleDescription,
}

// ParseFieldRole akzeptiert nur die bekannten Rollennamen.
func ParseFieldRole(s string) (FieldRole, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown field role %q", s)
}

// Column verweist auf eine Spalte der Eingabetabelle.
type Column struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// Schema ist die pro Tabelle aufgelöste Zuordnung Rolle -> Spalte.
// Nicht aufgelöste Rollen fehlen in der Map.
type Schema map[FieldRole]Column

// Lookup liefert die Spalte einer Rolle, falls vorhanden.
func (s Schema) Lookup(role FieldRole) (Column, bool) {
	c, ok := s[role]
	return c, ok
}

// Labels gibt die Rolle -> Spaltenname Sicht für Ausgaben zurück.
func (s Schema) Labels() map[FieldRole]string {
	out := make(map[FieldRole]string, len(s))
	for role, col := range s {
		out[role] = col.Label
	}
	return out
}
