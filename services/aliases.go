package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spot-guide/models"
)

// RoleRule beschreibt, wie eine Rolle einer Spalte zugeordnet wird.
// Exact wird in Spaltenreihenfolge geprüft, Contains in Prioritätsreihenfolge der Begriffe,
// Fallback ist eine feste Spaltenposition.
type RoleRule struct {
	Exact    []string `yaml:"exact,omitempty" json:"exact,omitempty"`
	Contains []string `yaml:"contains,omitempty" json:"contains,omitempty"`
	Fallback *int     `yaml:"fallback,omitempty" json:"fallback,omitempty"`
}

// AliasRules ist die vollständige Regel-Konfiguration des Schema-Resolvers.
type AliasRules map[models.FieldRole]RoleRule

func position(i int) *int { return &i }

// DefaultAliasRules liefert die eingebauten Regeln.
func DefaultAliasRules() AliasRules {
	return AliasRules{
		models.RoleName:        {Exact: []string{"name", "nom"}, Fallback: position(0)},
		models.RoleAddress:     {Exact: []string{"address", "adresse"}, Fallback: position(1)},
		models.RoleLatitude:    {Exact: []string{"lat", "latitude"}, Contains: []string{"lat"}},
		models.RoleLongitude:   {Exact: []string{"lon", "longitude"}, Contains: []string{"lon"}},
		models.RoleTags:        {Exact: []string{"tags", "tag"}, Contains: []string{"tag"}},
		models.RoleLink:        {Contains: []string{"map", "lien", "geo"}},
		models.RoleDescription: {Contains: []string{"desc"}},
	}
}

// LoadAliasRules liest Regeln aus einer YAML-Datei. Rollen, die in der Datei fehlen,
// behalten ihre eingebauten Regeln; ohne eigenes fallback bleibt die eingebaute Position.
//
//	link:
//	  contains: [map, lien, geo, url]
func LoadAliasRules(path string) (AliasRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	var raw map[string]RoleRule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}
	rules := DefaultAliasRules()
	for key, rule := range raw {
		role, err := models.ParseFieldRole(key)
		if err != nil {
			return nil, fmt.Errorf("alias file %s: %w", path, err)
		}
		if rule.Fallback == nil {
			rule.Fallback = rules[role].Fallback
		}
		rules[role] = rule
	}
	return rules, nil
}
