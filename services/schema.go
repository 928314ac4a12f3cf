package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"spot-guide/models"
)

// linkCoordinatePattern erkennt "@<lat>,<lon>" wie in Google-Maps-Links.
var linkCoordinatePattern = regexp.MustCompile(`@([+-]?\d+(?:\.\d+)?),([+-]?\d+(?:\.\d+)?)`)

// decimalPattern lässt nur vorzeichenbehaftete Dezimalzahlen zu (keine Hex-, Exponent- oder Inf-Schreibweise).
var decimalPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)$`)

// SchemaResolver ordnet beliebige Spaltennamen den kanonischen Rollen zu.
type SchemaResolver struct {
	rules AliasRules
}

// NewSchemaResolver erstellt einen Resolver; nil bedeutet eingebaute Regeln.
func NewSchemaResolver(rules AliasRules) *SchemaResolver {
	if rules == nil {
		rules = DefaultAliasRules()
	}
	return &SchemaResolver{rules: rules}
}

// ResolveSchema ist deterministisch und schlägt nie fehl. Bei mehreren Treffern gewinnt
// die erste Spalte in Tabellenreihenfolge.
func (r *SchemaResolver) ResolveSchema(columnLabels []string) models.Schema {
	normalized := make([]string, len(columnLabels))
	for i, label := range columnLabels {
		normalized[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(label, "\ufeff")))
	}

	schema := make(models.Schema, len(models.AllRoles))
	for _, role := range models.AllRoles {
		rule, ok := r.rules[role]
		if !ok {
			continue
		}
		if idx := matchRule(normalized, rule); idx >= 0 {
			schema[role] = models.Column{Index: idx, Label: columnLabels[idx]}
		}
	}
	return schema
}

func matchRule(labels []string, rule RoleRule) int {
	for i, label := range labels {
		for _, alias := range rule.Exact {
			if label == strings.ToLower(alias) {
				return i
			}
		}
	}
	for _, term := range rule.Contains {
		term = strings.ToLower(term)
		if term == "" {
			continue
		}
		for i, label := range labels {
			if strings.Contains(label, term) {
				return i
			}
		}
	}
	if rule.Fallback != nil && *rule.Fallback >= 0 && *rule.Fallback < len(labels) {
		return *rule.Fallback
	}
	return -1
}

// NormalizeCoordinate akzeptiert Komma als Dezimaltrenner. Nicht parsebare oder
// nicht endliche Werte ergeben ok == false.
func NormalizeCoordinate(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// RefineFromLink extrahiert Koordinaten aus einem Kartenlink.
func RefineFromLink(link *string) (*models.Coordinates, bool) {
	if link == nil {
		return nil, false
	}
	m := linkCoordinatePattern.FindStringSubmatch(*link)
	if m == nil {
		return nil, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, false
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, false
	}
	return &models.Coordinates{Latitude: lat, Longitude: lon}, true
}
