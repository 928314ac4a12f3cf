package models

import (
	"encoding/json"
	"sort"
)

// Coordinates ist eine plottbare Position in Dezimalgrad.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Herkunft der Koordinaten eines Spots.
const (
	CoordinatesFromTable = "table"
	CoordinatesFromLink  = "link"
)

// TagSet ist eine Menge von Tags. Groß-/Kleinschreibung ist signifikant.
type TagSet map[string]struct{}

// NewTagSet baut eine Menge aus den übergebenen Werten; leere Werte werden verworfen.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted liefert die Tags aufsteigend sortiert.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON serialisiert als sortiertes Array, damit Ausgaben reproduzierbar sind.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}

// Spot ist ein normalisierter Datensatz. Er wird beim Laden einmal erzeugt und danach nicht mehr verändert.
type Spot struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Address          string       `json:"address"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
	CoordinateSource string       `json:"coordinate_source,omitempty"`
	Tags             TagSet       `json:"tags"`
	Link             *string      `json:"link,omitempty"`
	Description      *string      `json:"description,omitempty"`
}

// HasPosition meldet, ob der Spot auf einer Karte dargestellt werden kann.
func (s Spot) HasPosition() bool {
	return s.Coordinates != nil
}
