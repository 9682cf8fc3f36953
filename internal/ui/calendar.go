package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/timemap/internal/models"
)

var weekdayHeader = "Mo Tu We Th Fr Sa Su"

// RenderMonth draws a Monday-first month grid. Days with items are
// highlighted and today's date is shown reversed.
func RenderMonth(year int, month time.Month, stats map[int]models.DayStats, today time.Time) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := models.DaysIn(year, month)
	offset := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	title := fmt.Sprintf("%s %d", month, year)
	b.WriteString(HeaderStyle.Render(center(title, len(weekdayHeader))))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(weekdayHeader))
	b.WriteString("\n")

	isCurrentMonth := today.Year() == year && today.Month() == month
	b.WriteString(strings.Repeat("   ", offset))
	col := offset
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case isCurrentMonth && today.Day() == day:
			cell = todayStyle.Render(cell)
		case !stats[day].Empty():
			cell = markedDayStyle.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else if day < days {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderDayLegend lists the per-type counts of every non-empty day
func RenderDayLegend(year int, month time.Month, stats map[int]models.DayStats) string {
	var lines []string
	for day := 1; day <= models.DaysIn(year, month); day++ {
		s, ok := stats[day]
		if !ok || s.Empty() {
			continue
		}
		var parts []string
		for _, t := range models.ItemTypes {
			if n := s.Count(t); n > 0 {
				parts = append(parts, TypeStyle(t).Render(fmt.Sprintf("%s %d", t, n)))
			}
		}
		line := fmt.Sprintf("%2d  %s", day, strings.Join(parts, "  "))
		if s.Mood != "" {
			line += MutedStyle.Render("  mood: " + s.Mood)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderYear prints the monthly breakdown of a year
func RenderYear(stats *models.YearStats) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%d", stats.Year)))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("%-4s %6s %6s %6s %6s %6s", "", "diary", "file", "note", "todo", "done")))
	b.WriteString("\n")
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "%-4s %6d %6d %6d %6d %6d\n",
			time.Month(i+1).String()[:3],
			stats.Diary[i], stats.File[i], stats.Note[i], stats.TodoCreated[i], stats.TodoDone[i])
	}
	fmt.Fprintf(&b, "todos finished: %d/%d", stats.FinishedTodos, stats.TotalTodos)
	return b.String()
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
