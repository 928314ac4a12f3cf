package services

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"spot-guide/models"
)

// foldText bringt Text in eine vergleichbare Form (NFC + Unicode Case Folding).
// Akzente bleiben erhalten. cases.Caser ist nicht nebenläufig nutzbar, daher pro Aufruf.
func foldText(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// BuildVocabulary liefert alle Tags aller Spots, dedupliziert und aufsteigend sortiert.
func BuildVocabulary(spots []models.Spot) []string {
	seen := make(map[string]struct{})
	for _, s := range spots {
		for tag := range s.Tags {
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Matches verknüpft Textsuche und Tag-Auswahl mit UND. Innerhalb der Tags gilt ODER.
func Matches(spot models.Spot, query models.FilterQuery) bool {
	return matchesText(spot, foldText(query.Text)) && matchesTags(spot, normalizeSelection(query.SelectedTags))
}

// normalizeSelection bringt ausgewählte Tags in dieselbe NFC-Form wie ParseTags.
// Groß-/Kleinschreibung bleibt unverändert.
func normalizeSelection(selected models.TagSet) models.TagSet {
	clean := true
	for tag := range selected {
		if !norm.NFC.IsNormalString(tag) {
			clean = false
			break
		}
	}
	if clean {
		return selected
	}
	out := make(models.TagSet, len(selected))
	for tag := range selected {
		out[norm.NFC.String(tag)] = struct{}{}
	}
	return out
}

func matchesText(spot models.Spot, foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	if spot.Name == "" {
		return false
	}
	return strings.Contains(foldText(spot.Name), foldedQuery)
}

func matchesTags(spot models.Spot, selected models.TagSet) bool {
	if len(selected) == 0 {
		return true
	}
	// über die kleinere Menge iterieren
	small, large := spot.Tags, selected
	if len(small) > len(large) {
		small, large = large, small
	}
	for tag := range small {
		if large.Has(tag) {
			return true
		}
	}
	return false
}

// Filter gibt alle passenden Spots in Eingabereihenfolge zurück. Die Eingabe wird nicht verändert.
func Filter(spots []models.Spot, query models.FilterQuery) []models.Spot {
	folded := foldText(query.Text)
	selected := normalizeSelection(query.SelectedTags)
	out := make([]models.Spot, 0, len(spots))
	for _, s := range spots {
		if matchesText(s, folded) && matchesTags(s, selected) {
			out = append(out, s)
		}
	}
	return out
}
