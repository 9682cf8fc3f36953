package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/timemap/internal/models"
)

var (
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	agoRegex       = regexp.MustCompile(`^(\d+)\s*(d|day|days|w|week|weeks)\s+ago$`)
	monthRegex     = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

// ParseDate turns user input into a YYYY-MM-DD date relative to now.
// Supported formats:
// - yyyy-mm-dd (e.g., "2024-03-01")
// - dd/mm/yyyy (e.g., "01/03/2024")
// - today, yesterday, tomorrow
// - N days ago, N weeks ago (e.g., "3 days ago", "1w ago")
// Empty input returns an empty string, meaning "today" to the store.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", nil
	}

	if _, err := models.ParseDate(input); err == nil {
		return input, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch input {
	case "today":
		return models.FormatDate(today), nil
	case "yesterday":
		return models.FormatDate(today.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return models.FormatDate(today.AddDate(0, 0, 1)), nil
	}

	if date, err := parseSlashDate(input); err == nil {
		return models.FormatDate(date), nil
	}

	if date, err := parseDaysAgo(input, today); err == nil {
		return models.FormatDate(date), nil
	}

	return "", fmt.Errorf("invalid date %q. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, tomorrow or N days ago", input)
}

// parseSlashDate parses dd/mm/yyyy format
func parseSlashDate(input string) (time.Time, error) {
	matches := slashDateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > models.DaysIn(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("invalid day")
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// parseDaysAgo parses relative dates like "3 days ago" or "2w ago"
func parseDaysAgo(input string, today time.Time) (time.Time, error) {
	matches := agoRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > 3650 {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "w", "week", "weeks":
		return today.AddDate(0, 0, -7*amount), nil
	default:
		return today.AddDate(0, 0, -amount), nil
	}
}

// ParseMonth parses "yyyy-mm". Empty input selects the month of now.
func ParseMonth(input string, now time.Time) (int, time.Month, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.Year(), now.Month(), nil
	}

	matches := monthRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, 0, fmt.Errorf("invalid month %q. Use: yyyy-mm", input)
	}
	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}
	return year, time.Month(month), nil
}

// ParseYear parses "yyyy". Empty input selects the year of now.
func ParseYear(input string, now time.Time) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.Year(), nil
	}
	year, err := strconv.Atoi(input)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", input)
	}
	return year, nil
}
