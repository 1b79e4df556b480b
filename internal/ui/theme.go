// Package ui holds the lipgloss styles shared by every wp command.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weekplan/internal/domain"
)

const (
	IconCalendar = "📅"
	IconDone     = "✅"
	IconOpen     = "⬜"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconBell     = "🔔"
	IconWarn     = "⚠️"
	IconBook     = "📓"
	IconChart    = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// categoryColors gives each category its card colour.
var categoryColors = map[domain.Category]lipgloss.Color{
	domain.CategoryAnchor:      lipgloss.Color("39"),
	domain.CategorySchool:      lipgloss.Color("33"),
	domain.CategoryGym:         lipgloss.Color("196"),
	domain.CategoryDeepWork:    lipgloss.Color("129"),
	domain.CategoryMaintenance: lipgloss.Color("214"),
	domain.CategoryRecovery:    lipgloss.Color("42"),
	domain.CategoryTransition:  lipgloss.Color("244"),
	domain.CategoryPersonal:    lipgloss.Color("205"),
	domain.CategorySocial:      lipgloss.Color("220"),
	domain.CategoryChurch:      lipgloss.Color("99"),
	domain.CategoryPlanning:    lipgloss.Color("30"),
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CategoryTag renders the category name in its colour. Unknown categories are muted.
func CategoryTag(c domain.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		return Muted.Render(string(c))
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(c))
}

func Check(done bool) string {
	if done {
		return IconDone
	}
	return IconOpen
}

// Bar draws a fixed-width progress bar for percent in [0,100].
func Bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
