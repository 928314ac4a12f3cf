package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spot-guide/models"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, models.NewTagSet("Bar", "Cosy", "bar"), ParseTags(" Bar, Cosy ,,bar"))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , ,"))
	assert.Equal(t, models.NewTagSet("cosy"), ParseTags("cosy, cosy"))
}

func TestNormalize(t *testing.T) {
	table := &models.RawTable{
		Columns: []string{"\ufeffname", "address", "lat", "lon", "tags", "maps", "desc"},
		Records: []models.RawRecord{
			{"Café de Flore", "172 Bd Saint-Germain", "48,85", "2,33", "cafe, terrasse", "https://maps.google.com/@48.8540,2.3325,17z", "Institution"},
			{"Le Petit Bar", "", "x", "2.3", "bar", "", ""},
			{"Short row"},
		},
	}
	r := NewSchemaResolver(nil)
	schema, spots, err := r.Normalize(table)
	require.NoError(t, err)
	require.Len(t, spots, 3)
	assert.Equal(t, models.Column{Index: 0, Label: "\ufeffname"}, schema[models.RoleName])

	flore := spots[0]
	assert.Equal(t, 0, flore.ID)
	assert.Equal(t, "Café de Flore", flore.Name)
	require.NotNil(t, flore.Coordinates)
	assert.Equal(t, models.CoordinatesFromLink, flore.CoordinateSource)
	assert.InDelta(t, 48.8540, flore.Coordinates.Latitude, 1e-9)
	require.NotNil(t, flore.Description)
	assert.Equal(t, "Institution", *flore.Description)
	assert.Equal(t, models.NewTagSet("cafe", "terrasse"), flore.Tags)

	bar := spots[1]
	assert.Nil(t, bar.Coordinates)
	assert.Empty(t, bar.CoordinateSource)
	assert.Nil(t, bar.Link)
	assert.Nil(t, bar.Description)
	assert.Equal(t, "", bar.Address)

	short := spots[2]
	assert.Equal(t, 2, short.ID)
	assert.Equal(t, "Short row", short.Name)
	assert.Empty(t, short.Tags)
}

func TestNormalize_TableCoordinatesWhenNoLink(t *testing.T) {
	table := &models.RawTable{
		Columns: []string{"name", "address", "latitude", "longitude"},
		Records: []models.RawRecord{{"A", "B", "45.76", "4,83"}},
	}
	_, spots, err := NewSchemaResolver(nil).Normalize(table)
	require.NoError(t, err)
	require.NotNil(t, spots[0].Coordinates)
	assert.Equal(t, models.CoordinatesFromTable, spots[0].CoordinateSource)
	assert.InDelta(t, 4.83, spots[0].Coordinates.Longitude, 1e-9)
}

func TestNormalize_LinkCoordinateWins(t *testing.T) {
	table := &models.RawTable{
		Columns: []string{"name", "address", "lat", "lon", "google maps"},
		Records: []models.RawRecord{{"A", "B", "10", "20", "https://www.google.com/maps/@48.1,2.2,15z"}},
	}
	_, spots, err := NewSchemaResolver(nil).Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, &models.Coordinates{Latitude: 48.1, Longitude: 2.2}, spots[0].Coordinates)
}

func TestNormalize_NoColumns(t *testing.T) {
	_, _, err := NewSchemaResolver(nil).Normalize(&models.RawTable{})
	assert.ErrorIs(t, err, models.ErrNoColumns)

	_, _, err = NewSchemaResolver(nil).Normalize(nil)
	assert.ErrorIs(t, err, models.ErrNoColumns)
}
