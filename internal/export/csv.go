// Package export renders the weekly plan into CSV and iCalendar text.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"weekplan/internal/calendar"
	"weekplan/internal/domain"
)

// CSVHeaders are the column titles of the schedule export.
var CSVHeaders = []string{"Day", "Time", "Duration", "Category", "Activity", "Notes"}

const CSVContentType = "text/csv; charset=utf-8"

// CSVFilename names an export taken on the UTC date of now.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("weekly-schedule-%s.csv", calendar.DateKey(now))
}

// quoteCell always wraps the value in double quotes, doubling inner quotes.
func quoteCell(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// CSVRows returns the header line followed by one quoted line per item,
// in weekday order and then list order.
func CSVRows(schedule domain.Schedule) []string {
	rows := []string{strings.Join(CSVHeaders, ",")}
	for _, day := range domain.Days {
		for _, item := range schedule.Items(day) {
			cells := []string{
				day.Title(),
				item.Time,
				item.Duration,
				string(item.Category),
				item.Activity,
				item.Notes,
			}
			for i := range cells {
				cells[i] = quoteCell(cells[i])
			}
			rows = append(rows, strings.Join(cells, ","))
		}
	}
	return rows
}

// WriteCSV writes the rows joined by newlines, without a trailing newline.
func WriteCSV(w io.Writer, schedule domain.Schedule) error {
	_, err := io.WriteString(w, strings.Join(CSVRows(schedule), "\n"))
	return err
}
