package models

// Draft is the in-progress blog editor buffer mirrored to storage by the
// autosaver.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Tags    string `json:"tags"`
}

// Empty reports whether the draft carries nothing worth saving. Excerpt and
// tags alone do not make a draft.
func (d Draft) Empty() bool {
	return d.Title == "" && d.Content == ""
}
