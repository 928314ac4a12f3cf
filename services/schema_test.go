package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spot-guide/models"
)

func TestResolveSchema_ExactAliases(t *testing.T) {
	r := NewSchemaResolver(nil)
	schema := r.ResolveSchema([]string{" Nom ", "Adresse", "Latitude", "LON", "Tags", "Lien Google Maps", "Description"})

	want := map[models.FieldRole]string{
		models.RoleName:        " Nom ",
		models.RoleAddress:     "Adresse",
		models.RoleLatitude:    "Latitude",
		models.RoleLongitude:   "LON",
		models.RoleTags:        "Tags",
		models.RoleLink:        "Lien Google Maps",
		models.RoleDescription: "Description",
	}
	assert.Equal(t, want, schema.Labels())
	assert.Equal(t, 3, schema[models.RoleLongitude].Index)
}

func TestResolveSchema_PositionalFallbacks(t *testing.T) {
	r := NewSchemaResolver(nil)
	schema := r.ResolveSchema([]string{"Spot", "Where", "Notes"})

	assert.Equal(t, models.Column{Index: 0, Label: "Spot"}, schema[models.RoleName])
	assert.Equal(t, models.Column{Index: 1, Label: "Where"}, schema[models.RoleAddress])
	for _, role := range []models.FieldRole{models.RoleLatitude, models.RoleLongitude, models.RoleTags, models.RoleLink, models.RoleDescription} {
		_, ok := schema.Lookup(role)
		assert.False(t, ok, "role %s should be unresolved", role)
	}
}

func TestResolveSchema_SubstringTier(t *testing.T) {
	r := NewSchemaResolver(nil)
	schema := r.ResolveSchema([]string{"name", "address", "gps_lat", "gps_long", "my tags", "short desc"})

	assert.Equal(t, "gps_lat", schema[models.RoleLatitude].Label)
	assert.Equal(t, "gps_long", schema[models.RoleLongitude].Label)
	assert.Equal(t, "my tags", schema[models.RoleTags].Label)
	assert.Equal(t, "short desc", schema[models.RoleDescription].Label)
}

func TestResolveSchema_ExactBeatsSubstring(t *testing.T) {
	r := NewSchemaResolver(nil)
	schema := r.ResolveSchema([]string{"name", "address", "lat_source", "lat"})
	assert.Equal(t, 3, schema[models.RoleLatitude].Index)
}

func TestResolveSchema_TiesPickFirstColumn(t *testing.T) {
	r := NewSchemaResolver(nil)
	schema := r.ResolveSchema([]string{"nom", "name", "adresse", "address"})
	assert.Equal(t, 0, schema[models.RoleName].Index)
	assert.Equal(t, 2, schema[models.RoleAddress].Index)
}

func TestResolveSchema_LinkPriority(t *testing.T) {
	r := NewSchemaResolver(nil)
	// "map" gewinnt gegen "lien", obwohl die lien-Spalte vorne steht.
	schema := r.ResolveSchema([]string{"name", "address", "lien", "geo url", "google maps"})
	assert.Equal(t, "google maps", schema[models.RoleLink].Label)

	schema = r.ResolveSchema([]string{"name", "address", "geo url", "lien"})
	assert.Equal(t, "lien", schema[models.RoleLink].Label)
}

func TestResolveSchema_Degenerate(t *testing.T) {
	r := NewSchemaResolver(nil)
	assert.Empty(t, r.ResolveSchema(nil))

	schema := r.ResolveSchema([]string{"only"})
	assert.Equal(t, "only", schema[models.RoleName].Label)
	_, ok := schema.Lookup(models.RoleAddress)
	assert.False(t, ok)
}

func TestNormalizeCoordinate(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"48.8566", 48.8566, true},
		{"48,8566", 48.8566, true},
		{" -2,35 ", -2.35, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,234,5", 0, false},
		{"0x1p4", 0, false},
		{"0x10", 0, false},
		{"1e5", 0, false},
		{"+Inf", 0, false},
		{"12.", 12, true},
		{",5", 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeCoordinate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestRefineFromLink(t *testing.T) {
	link := "https://www.google.com/maps/place/Caf%C3%A9+de+Flore/@48.8540,2.3325,17z/data=!3m1"
	coords, ok := RefineFromLink(&link)
	require.True(t, ok)
	assert.InDelta(t, 48.8540, coords.Latitude, 1e-9)
	assert.InDelta(t, 2.3325, coords.Longitude, 1e-9)

	neg := "https://maps.example/@-33.8688,+151.2093,12z"
	coords, ok = RefineFromLink(&neg)
	require.True(t, ok)
	assert.InDelta(t, -33.8688, coords.Latitude, 1e-9)
	assert.InDelta(t, 151.2093, coords.Longitude, 1e-9)

	_, ok = RefineFromLink(nil)
	assert.False(t, ok)

	plain := "https://maps.app.goo.gl/abc123"
	_, ok = RefineFromLink(&plain)
	assert.False(t, ok)
}
