package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"spot-guide/models"
)

// cleanCell entfernt Leerraum und ein BOM und bringt den Text in NFC-Form.
func cleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return norm.NFC.String(strings.TrimSpace(v))
}

// ParseTags zerlegt eine Tag-Zelle an Kommas. Leere Stücke entfallen, Duplikate fallen zusammen.
func ParseTags(raw string) models.TagSet {
	tags := make(models.TagSet)
	for _, piece := range strings.Split(raw, ",") {
		piece = cleanCell(piece)
		if piece == "" {
			continue
		}
		tags[piece] = struct{}{}
	}
	return tags
}

func optionalCell(rec models.RawRecord, schema models.Schema, role models.FieldRole) *string {
	col, ok := schema.Lookup(role)
	if !ok {
		return nil
	}
	v := cleanCell(rec.Value(col.Index))
	if v == "" {
		return nil
	}
	return &v
}

func cell(rec models.RawRecord, schema models.Schema, role models.FieldRole) string {
	if v := optionalCell(rec, schema, role); v != nil {
		return *v
	}
	return ""
}

// NormalizeRecord erzeugt einen Spot aus einer Rohzeile. Link-Koordinaten haben Vorrang
// vor den Tabellenwerten.
func NormalizeRecord(id int, rec models.RawRecord, schema models.Schema) models.Spot {
	spot := models.Spot{
		ID:          id,
		Name:        cell(rec, schema, models.RoleName),
		Address:     cell(rec, schema, models.RoleAddress),
		Tags:        ParseTags(cell(rec, schema, models.RoleTags)),
		Link:        optionalCell(rec, schema, models.RoleLink),
		Description: optionalCell(rec, schema, models.RoleDescription),
	}

	if coords, ok := RefineFromLink(spot.Link); ok {
		spot.Coordinates = coords
		spot.CoordinateSource = models.CoordinatesFromLink
		return spot
	}
	lat, latOK := NormalizeCoordinate(cell(rec, schema, models.RoleLatitude))
	lon, lonOK := NormalizeCoordinate(cell(rec, schema, models.RoleLongitude))
	if latOK && lonOK {
		spot.Coordinates = &models.Coordinates{Latitude: lat, Longitude: lon}
		spot.CoordinateSource = models.CoordinatesFromTable
	}
	return spot
}

// Normalize löst das Schema der Tabelle auf und normalisiert alle Zeilen in Eingabereihenfolge.
func (r *SchemaResolver) Normalize(table *models.RawTable) (models.Schema, []models.Spot, error) {
	if err := table.Validate(); err != nil {
		return nil, nil, err
	}
	schema := r.ResolveSchema(table.Columns)
	spots := make([]models.Spot, len(table.Records))
	for i, rec := range table.Records {
		spots[i] = NormalizeRecord(i, rec, schema)
	}
	return schema, spots, nil
}
