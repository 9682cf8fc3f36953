package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timemap/internal/models"
)

// Color constants for timemap output
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Item content, day numbers
	ColorSecondaryText = "#B1B8C7" // Untagged chips, fallback type color
	ColorDisabledText  = "#6D7383" // Weekday header, dates, mood hints
	ColorHelpText      = "240"      // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Busy days on the calendar
	ColorAccentBright = "#A78BFA" // Headers, note items

	// State Colors
	ColorError   = "#EF4444" // Error prefix
	ColorSuccess = "#22C55E" // Confirmations, done checkboxes
	ColorWarning = "#F59E0B" // Todo items
)

// Per item type colors, also used in the calendar legend
var typeColors = map[models.ItemType]string{
	models.TypeFile:  "#38BDF8",
	models.TypeNote:  ColorAccentBright,
	models.TypeTodo:  ColorWarning,
	models.TypeDiary: "#F472B6",
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	markedDayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentMain))

	todayStyle = lipgloss.NewStyle().
			Reverse(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
)

// TypeStyle returns the style used for an item type label
func TypeStyle(t models.ItemType) lipgloss.Style {
	color, ok := typeColors[t]
	if !ok {
		color = ColorSecondaryText
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// TagChip renders a tag as "#name" in its own color
func TagChip(tag models.Tag) string {
	color := tag.Color
	if color == "" {
		color = ColorSecondaryText
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("#" + tag.Name)
}
