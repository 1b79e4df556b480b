package timerange

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes is used when a free-form duration carries no hour or minute component.
const DefaultDurationMinutes = 60

var freeformDurationPattern = regexp.MustCompile(`(?:(\d+)h)?(?:(\d+)m)?`)

var vagueStarts = map[string]int{
	"morning":   9 * 60,
	"midday":    12 * 60,
	"afternoon": 14 * 60,
}

// ParseDuration extracts the optional "<n>h" and "<n>m" components of a free-form
// duration such as "1h30m". Strings carrying neither yield DefaultDurationMinutes.
func ParseDuration(text string) int {
	matches := freeformDurationPattern.FindStringSubmatch(text)
	if matches == nil {
		return DefaultDurationMinutes
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	if hours <= 0 && minutes <= 0 {
		return DefaultDurationMinutes
	}
	return hours*60 + minutes
}

// VagueStart maps the recognised vague labels (morning, midday, afternoon) to a start minute.
func VagueStart(label string) (int, bool) {
	start, ok := vagueStarts[strings.ToLower(label)]
	return start, ok
}

// ResolveSlot turns a schedule time and duration into a concrete interval.
// Strict ranges are used as-is; recognised vague labels start at their fixed minute and
// run for the parsed free-form duration, so End may pass midnight. Anything else is
// not resolvable.
func ResolveSlot(timeText, durationText string) (Range, bool) {
	if r, ok := Parse(timeText); ok {
		return r, true
	}

	start, ok := VagueStart(timeText)
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: start + ParseDuration(durationText)}, true
}
