package services

import (
	"net/url"
	"strconv"

	geohash "github.com/TomiHiltunen/geohash-golang"

	"spot-guide/models"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// MapsURL liefert den Link für "Aller sur Maps": den Link aus der Tabelle, sonst eine
// Suche nach Koordinaten oder Adresse. Ohne beides ist das Ergebnis leer.
func MapsURL(spot models.Spot) string {
	if spot.Link != nil {
		return *spot.Link
	}
	if spot.Coordinates != nil {
		q := strconv.FormatFloat(spot.Coordinates.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(spot.Coordinates.Longitude, 'f', -1, 64)
		return mapsSearchURL + url.QueryEscape(q)
	}
	query := spot.Address
	if query == "" {
		return ""
	}
	if spot.Name != "" {
		query = spot.Name + ", " + query
	}
	return mapsSearchURL + url.QueryEscape(query)
}

// Feature ist ein GeoJSON-Punkt für die Kartenebene.
type Feature struct {
	Type       string          `json:"type"`
	Geometry   FeatureGeometry `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

type FeatureGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureCollection ist die GeoJSON-Wurzel.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection rendert alle Spots mit Position. Spots ohne Koordinaten fehlen auf der Karte.
func NewFeatureCollection(spots []models.Spot) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(spots))}
	for _, s := range spots {
		if s.Coordinates == nil {
			continue
		}
		lat, lon := s.Coordinates.Latitude, s.Coordinates.Longitude
		props := map[string]any{
			"id":       s.ID,
			"name":     s.Name,
			"address":  s.Address,
			"tags":     s.Tags.Sorted(),
			"maps_url": MapsURL(s),
			"geohash":  geohash.Encode(lat, lon),
		}
		if s.Description != nil {
			props["description"] = *s.Description
		}
		fc.Features = append(fc.Features, Feature{
			Type:       "Feature",
			Geometry:   FeatureGeometry{Type: "Point", Coordinates: [2]float64{lon, lat}},
			Properties: props,
		})
	}
	return fc
}
