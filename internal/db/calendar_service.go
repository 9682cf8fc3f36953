package db

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"github.com/balkashynov/timemap/internal/logging"
	"github.com/balkashynov/timemap/internal/models"
)

// calendarColumns is the projection the aggregations need
var calendarColumns = []string{"id", "date", "type", "is_done", "finish_date", "mood"}

// monthWindow is one calendar month as midnight UTC dates
type monthWindow struct {
	first time.Time
	last  time.Time
}

func newMonthWindow(year int, month time.Month) (monthWindow, error) {
	if month < time.January || month > time.December {
		return monthWindow{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	first := now.With(time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)).BeginningOfMonth()
	end := now.With(first).EndOfMonth()
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return monthWindow{first: first, last: last}, nil
}

func (w monthWindow) days() int {
	return w.last.Day()
}

// contains reports whether d falls inside the month
func (w monthWindow) contains(d time.Time) bool {
	return !d.Before(w.first) && !d.After(w.last)
}

// todoSpan clamps the active interval of a todo to the month and returns the
// first and last day of the month on which it was open. An open todo is
// active from its creation date onwards; a done one until its finish date.
func (w monthWindow) todoSpan(item models.Item) (from, to int, ok bool) {
	created, err := models.ParseDate(item.Date)
	if err != nil {
		logging.Debug("skipping todo with malformed date", "id", item.ID, "date", item.Date)
		return 0, 0, false
	}
	if created.After(w.last) {
		return 0, 0, false
	}

	end := w.last
	if item.IsDone {
		if item.FinishDate == nil {
			logging.Debug("skipping done todo without finish date", "id", item.ID)
			return 0, 0, false
		}
		finished, err := models.ParseDate(*item.FinishDate)
		if err != nil {
			logging.Debug("skipping todo with malformed finish date", "id", item.ID, "finish_date", *item.FinishDate)
			return 0, 0, false
		}
		if finished.Before(w.first) {
			return 0, 0, false
		}
		if finished.Before(end) {
			end = finished
		}
	}

	start := w.first
	if created.After(start) {
		start = created
	}
	if end.Before(start) {
		return 0, 0, false
	}
	return start.Day(), end.Day(), true
}

// tallyMonth counts, for every day of the month, the live non-todo items
// dated that day and the todos open on it
func (s *Store) tallyMonth(w monthWindow) (map[int]models.DayStats, error) {
	days := w.days()
	stats := make(map[int]models.DayStats, days)
	for d := 1; d <= days; d++ {
		stats[d] = models.DayStats{}
	}

	var dated []models.Item
	err := s.db.Select(calendarColumns).
		Where("type <> ? AND date BETWEEN ? AND ?", models.TypeTodo, models.FormatDate(w.first), models.FormatDate(w.last)).
		Order("id ASC").
		Find(&dated).Error
	if err != nil {
		return nil, err
	}

	for _, item := range dated {
		d, err := models.ParseDate(item.Date)
		if err != nil || !w.contains(d) {
			logging.Debug("skipping item with malformed date", "id", item.ID, "date", item.Date)
			continue
		}
		day := stats[d.Day()]
		switch item.Type {
		case models.TypeDiary:
			day.Diary++
			if mood := item.DisplayMood(); mood != "" {
				day.Mood = mood
			}
		case models.TypeFile:
			day.File++
		case models.TypeNote:
			day.Note++
		}
		stats[d.Day()] = day
	}

	var todos []models.Item
	err = s.db.Select(calendarColumns).
		Where("type = ?", models.TypeTodo).
		Order("id ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	// Per-todo ranges go into a difference array; the running sum gives the
	// number of open todos on each day.
	delta := make([]int, days+2)
	for _, todo := range todos {
		from, to, ok := w.todoSpan(todo)
		if !ok {
			continue
		}
		delta[from]++
		delta[to+1]--
	}
	open := 0
	for d := 1; d <= days; d++ {
		open += delta[d]
		day := stats[d]
		day.Todo = open
		stats[d] = day
	}

	return stats, nil
}

// MarkedDays returns the days of the month that have any live item or an
// open todo
func (s *Store) MarkedDays(year int, month time.Month) (map[int]bool, error) {
	w, err := newMonthWindow(year, month)
	if err != nil {
		return nil, err
	}
	stats, err := s.tallyMonth(w)
	if err != nil {
		return nil, fmt.Errorf("failed to compute marked days: %w", err)
	}

	marked := make(map[int]bool)
	for day, st := range stats {
		if !st.Empty() {
			marked[day] = true
		}
	}
	return marked, nil
}

// MonthStats returns per-day counts for every day of the month
func (s *Store) MonthStats(year int, month time.Month) (map[int]models.DayStats, error) {
	w, err := newMonthWindow(year, month)
	if err != nil {
		return nil, err
	}
	stats, err := s.tallyMonth(w)
	if err != nil {
		return nil, fmt.Errorf("failed to compute month stats: %w", err)
	}
	return stats, nil
}

// YearStats buckets live items by month of their date, and finished todos
// additionally by month of completion
func (s *Store) YearStats(year int) (*models.YearStats, error) {
	prefix := fmt.Sprintf("%04d-%%", year)

	var items []models.Item
	err := s.db.Select(calendarColumns).
		Where("(date LIKE ? OR finish_date LIKE ?)", prefix, prefix).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute year stats: %w", err)
	}

	stats := &models.YearStats{Year: year}
	for _, item := range items {
		if d, err := models.ParseDate(item.Date); err == nil && d.Year() == year {
			m := d.Month() - 1
			switch item.Type {
			case models.TypeDiary:
				stats.Diary[m]++
			case models.TypeFile:
				stats.File[m]++
			case models.TypeNote:
				stats.Note[m]++
			case models.TypeTodo:
				stats.TodoCreated[m]++
				stats.TotalTodos++
			}
		} else if err != nil {
			logging.Debug("skipping item with malformed date", "id", item.ID, "date", item.Date)
		}

		if item.Type != models.TypeTodo || !item.IsDone || item.FinishDate == nil {
			continue
		}
		f, err := models.ParseDate(*item.FinishDate)
		if err != nil {
			logging.Debug("skipping todo with malformed finish date", "id", item.ID, "finish_date", *item.FinishDate)
			continue
		}
		if f.Year() == year {
			stats.TodoDone[f.Month()-1]++
			stats.FinishedTodos++
		}
	}

	return stats, nil
}
