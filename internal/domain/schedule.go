package domain

import (
	"strings"
)

// Day is one of the seven fixed weekday keys of a Schedule.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists the weekday keys in their fixed Monday-first order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid reports whether d is one of the seven weekday keys.
func (d Day) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the Monday-based position of d, or -1 when d is not a weekday key.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// Title returns the capitalised day name, e.g. "Monday".
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseDay accepts full or three-letter day names in any case.
func ParseDay(input string) (Day, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, day := range Days {
		if string(day) == s || (len(s) == 3 && strings.HasPrefix(string(day), s)) {
			return day, true
		}
	}
	return "", false
}

// Category is the fixed tag set for schedule items.
type Category string

const (
	CategoryAnchor      Category = "anchor"
	CategorySchool      Category = "school"
	CategoryGym         Category = "gym"
	CategoryDeepWork    Category = "deepwork"
	CategoryMaintenance Category = "maintenance"
	CategoryRecovery    Category = "recovery"
	CategoryTransition  Category = "transition"
	CategoryPersonal    Category = "personal"
	CategorySocial      Category = "social"
	CategoryChurch      Category = "church"
	CategoryPlanning    Category = "planning"
)

// Categories lists every schedule category.
var Categories = []Category{
	CategoryAnchor, CategorySchool, CategoryGym, CategoryDeepWork, CategoryMaintenance,
	CategoryRecovery, CategoryTransition, CategoryPersonal, CategorySocial, CategoryChurch,
	CategoryPlanning,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Recurrence is how often a schedule item repeats in calendar exports.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// IsValid accepts the four recurrence kinds and the empty value, which means none.
func (r Recurrence) IsValid() bool {
	switch r {
	case "", RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// Repeats reports whether r is set to something other than none.
func (r Recurrence) Repeats() bool {
	return r != "" && r != RecurrenceNone
}

// ScheduleItem is one planned activity within a day.
type ScheduleItem struct {
	ID                string     `json:"id"`
	Time              string     `json:"time"`
	Duration          string     `json:"duration"`
	Category          Category   `json:"category"`
	Activity          string     `json:"activity"`
	Notes             string     `json:"notes"`
	Recurrence        Recurrence `json:"recurrence,omitempty"`
	RecurrenceEndDate string     `json:"recurrenceEndDate,omitempty"`
}

// Normalize drops a recurrence end date that has no recurrence to end.
func (i ScheduleItem) Normalize() ScheduleItem {
	if !i.Recurrence.Repeats() {
		i.RecurrenceEndDate = ""
	}
	return i
}

// IsValid checks the fields every stored item must carry.
func (i ScheduleItem) IsValid() bool {
	return strings.TrimSpace(i.Activity) != "" && i.Category.IsValid() && i.Recurrence.IsValid()
}

// Schedule maps each weekday to its ordered list of items.
type Schedule map[Day][]ScheduleItem

// NewSchedule returns a schedule with an empty list for every day.
func NewSchedule() Schedule {
	s := make(Schedule, len(Days))
	for _, day := range Days {
		s[day] = []ScheduleItem{}
	}
	return s
}

// Items returns the list for day, never nil.
func (s Schedule) Items(day Day) []ScheduleItem {
	if items, ok := s[day]; ok && items != nil {
		return items
	}
	return []ScheduleItem{}
}

// Clone deep-copies the schedule so callers can build a new value without touching s.
func (s Schedule) Clone() Schedule {
	out := NewSchedule()
	for day, items := range s {
		copied := make([]ScheduleItem, len(items))
		copy(copied, items)
		out[day] = copied
	}
	return out
}

// Find locates an item by id on day.
func (s Schedule) Find(day Day, id string) (ScheduleItem, int, bool) {
	for i, item := range s.Items(day) {
		if item.ID == id {
			return item, i, true
		}
	}
	return ScheduleItem{}, -1, false
}

// FindAnyDay locates an item by id across the whole week.
func (s Schedule) FindAnyDay(id string) (Day, ScheduleItem, bool) {
	for _, day := range Days {
		if item, _, ok := s.Find(day, id); ok {
			return day, item, true
		}
	}
	return "", ScheduleItem{}, false
}

// Count returns the total number of items across the week.
func (s Schedule) Count() int {
	total := 0
	for _, day := range Days {
		total += len(s.Items(day))
	}
	return total
}

// HasAllDays reports whether every weekday key is present.
func (s Schedule) HasAllDays() bool {
	for _, day := range Days {
		if _, ok := s[day]; !ok {
			return false
		}
	}
	return true
}
