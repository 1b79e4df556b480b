package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"weekplan/internal/calendar"
	"weekplan/internal/domain"
	"weekplan/internal/timerange"
)

const (
	ICSFilename    = "weekly-schedule.ics"
	ICSContentType = "text/calendar; charset=utf-8"

	icsTimeLayout = "20060102T150405Z"
	crlf          = "\r\n"
)

// ICSOptions configures calendar rendering.
type ICSOptions struct {
	ProductID string
	UIDDomain string
	// Location is the zone the plan's wall-clock times are in. Nil means UTC.
	Location *time.Location
	// Stamp is written as DTSTAMP on every event.
	Stamp time.Time
}

// Event is one schedule item anchored to absolute instants.
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Recurrence  domain.Recurrence
	Until       string
}

// BuildEvents anchors every exportable item to the week beginning at weekStart.
// Strict ranges use their own times; the labels morning, midday and afternoon
// use a fixed start with the item's free-form duration. Other items are skipped
// and counted.
func BuildEvents(schedule domain.Schedule, weekStart time.Time, loc *time.Location) ([]Event, int) {
	if loc == nil {
		loc = time.UTC
	}
	var events []Event
	skipped := 0

	for idx, day := range domain.Days {
		date := calendar.DayOfWeek(weekStart, idx)

		for _, item := range schedule.Items(day) {
			slot, ok := timerange.ResolveSlot(item.Time, item.Duration)
			if !ok {
				skipped++
				continue
			}
			event := Event{
				UID:         item.ID,
				Start:       wallClock(date, slot.Start, loc),
				End:         wallClock(date, slot.End, loc),
				Summary:     item.Activity,
				Description: item.Notes,
			}
			if item.Recurrence.Repeats() {
				event.Recurrence = item.Recurrence
				event.Until = item.RecurrenceEndDate
			}
			events = append(events, event)
		}
	}
	return events, skipped
}

// wallClock places minute-of-day on date in loc. Minutes past midnight roll into the next day.
func wallClock(date time.Time, minute int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, minute, 0, 0, loc)
}

// WriteICS writes a VCALENDAR with one VEVENT per event, CRLF separated.
func WriteICS(w io.Writer, events []Event, opts ICSOptions) error {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + opts.ProductID,
	}
	stamp := formatICSTime(opts.Stamp)

	for _, ev := range events {
		lines = append(lines,
			"BEGIN:VEVENT",
			"DTSTAMP:"+stamp,
			fmt.Sprintf("UID:%s@%s", ev.UID, opts.UIDDomain),
			"DTSTART:"+formatICSTime(ev.Start),
			"DTEND:"+formatICSTime(ev.End),
			"SUMMARY:"+escapeText(ev.Summary),
			"DESCRIPTION:"+escapeText(ev.Description),
		)
		if rule := recurrenceRule(ev); rule != "" {
			lines = append(lines, rule)
		}
		lines = append(lines, "END:VEVENT")
	}
	lines = append(lines, "END:VCALENDAR")

	_, err := io.WriteString(w, strings.Join(lines, crlf))
	return err
}

// RenderICS builds and writes the calendar for the week beginning at weekStart.
// It returns the number of items left out because their time could not be anchored.
func RenderICS(w io.Writer, schedule domain.Schedule, weekStart time.Time, opts ICSOptions) (int, error) {
	events, skipped := BuildEvents(schedule, weekStart, opts.Location)
	return skipped, WriteICS(w, events, opts)
}

func recurrenceRule(ev Event) string {
	if !ev.Recurrence.Repeats() {
		return ""
	}
	rule := "RRULE:FREQ=" + strings.ToUpper(string(ev.Recurrence))
	if until, err := calendar.ParseDateKey(ev.Until); err == nil {
		end := until.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		rule += ";UNTIL=" + formatICSTime(end)
	}
	return rule
}

func formatICSTime(t time.Time) string {
	return t.UTC().Format(icsTimeLayout)
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escapeText applies RFC 5545 TEXT escaping.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
