package domain

// Template prefills a new schedule item. It has no identity beyond its list position.
type Template struct {
	Category Category `json:"category,omitempty"`
	Activity string   `json:"activity,omitempty"`
	Time     string   `json:"time,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Apply fills the empty fields of item from the template.
func (t Template) Apply(item ScheduleItem) ScheduleItem {
	if item.Category == "" {
		item.Category = t.Category
	}
	if item.Activity == "" {
		item.Activity = t.Activity
	}
	if item.Time == "" {
		item.Time = t.Time
	}
	if item.Duration == "" {
		item.Duration = t.Duration
	}
	if item.Notes == "" {
		item.Notes = t.Notes
	}
	return item
}
