package models

// FilterQuery ist die Eingabe der Filter-Engine: Freitext plus ausgewählte Tags.
type FilterQuery struct {
	Text         string `json:"text"`
	SelectedTags TagSet `json:"selected_tags"`
}

// NewFilterQuery ist eine Kurzform für Aufrufer mit Tag-Listen.
func NewFilterQuery(text string, tags ...string) FilterQuery {
	return FilterQuery{Text: text, SelectedTags: NewTagSet(tags...)}
}
