// Package timerange models time-of-day intervals expressed in minutes since midnight.
package timerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

var strictRangePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})$`)

// Range is a half-open interval [Start, End) in minutes since midnight.
type Range struct {
	Start int
	End   int
}

// Parse converts a strict "H:MM-H:MM" string into a Range.
// The second return value is false for any other shape, including vague labels
// such as "Morning", and for ranges whose start is not before their end.
func Parse(text string) (Range, bool) {
	matches := strictRangePattern.FindStringSubmatch(text)
	if matches == nil {
		return Range{}, false
	}

	parts := make([]int, 4)
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return Range{}, false
		}
		parts[i] = n
	}

	r := Range{
		Start: parts[0]*60 + parts[1],
		End:   parts[2]*60 + parts[3],
	}
	// Ranges crossing midnight are not representable.
	if r.Start >= r.End {
		return Range{}, false
	}
	return r, true
}

// IsStrict reports whether text parses as a strict time range.
func IsStrict(text string) bool {
	_, ok := Parse(text)
	return ok
}

// Overlaps reports whether two half-open ranges intersect.
// Touching endpoints do not overlap.
func Overlaps(a, b Range) bool {
	return a.Start < b.End && b.Start < a.End
}

// Overlaps reports whether r intersects other.
func (r Range) Overlaps(other Range) bool {
	return Overlaps(r, other)
}

// Minutes returns the length of the range.
func (r Range) Minutes() int {
	return r.End - r.Start
}

// String renders the range back in "H:MM-H:MM" form.
func (r Range) String() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}

// FormatClock renders a minute-of-day as "H:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%d:%02d", minute/60, minute%60)
}

// FormatDuration renders minutes as "{h}h {m}m", dropping a zero hour or zero minute part.
// Zero and negative input render as "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}

	h := minutes / 60
	m := minutes % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	return strings.Join(parts, " ")
}
