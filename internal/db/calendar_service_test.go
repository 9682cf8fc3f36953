package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/timemap/internal/models"
)

func markedList(marked map[int]bool) []int {
	var days []int
	for d := 1; d <= 31; d++ {
		if marked[d] {
			days = append(days, d)
		}
	}
	return days
}

func TestFinishedTodoSpansItsLifetime(t *testing.T) {
	s := setupTestStore(t)
	todo := addItem(t, s, models.TypeTodo, "report", "2024-01-05")
	require.NoError(t, s.ToggleTodoStatus(todo.ID, "2024-01-20"))

	stats, err := s.MonthStats(2024, time.January)
	require.NoError(t, err)
	require.Len(t, stats, 31)
	for day := 1; day <= 31; day++ {
		want := 0
		if day >= 5 && day <= 20 {
			want = 1
		}
		assert.Equal(t, want, stats[day].Todo, "day %d", day)
	}

	jan, err := s.MarkedDays(2024, time.January)
	require.NoError(t, err)
	assert.Len(t, jan, 16)
	assert.True(t, jan[5])
	assert.True(t, jan[20])
	assert.False(t, jan[4])
	assert.False(t, jan[21])

	feb, err := s.MarkedDays(2024, time.February)
	require.NoError(t, err)
	assert.Empty(t, feb)
}

func TestOpenTodoIsActiveIndefinitely(t *testing.T) {
	s := setupTestStore(t)
	addItem(t, s, models.TypeTodo, "someday", "2024-01-30")

	jan, err := s.MarkedDays(2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 31}, markedList(jan))

	later, err := s.MarkedDays(2025, time.June)
	require.NoError(t, err)
	assert.Len(t, later, 30)

	before, err := s.MarkedDays(2023, time.December)
	require.NoError(t, err)
	assert.Empty(t, before)
}

func TestMarkedDaysWithinMonth(t *testing.T) {
	s := setupTestStore(t)
	addItem(t, s, models.TypeTodo, "open since last year", "2023-11-11")
	addItem(t, s, models.TypeNote, "leap", "2024-02-29")
	addItem(t, s, models.TypeNote, "next month", "2024-03-01")

	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	} {
		marked, err := s.MarkedDays(tc.year, tc.month)
		require.NoError(t, err)
		assert.Len(t, marked, tc.days)
		for day := range marked {
			assert.GreaterOrEqual(t, day, 1)
			assert.LessOrEqual(t, day, tc.days)
		}
	}

	// nothing before the todo was created
	before, err := s.MarkedDays(2023, time.February)
	require.NoError(t, err)
	assert.Empty(t, before)
	partial, err := s.MarkedDays(2023, time.November)
	require.NoError(t, err)
	assert.Len(t, partial, 20)
	assert.False(t, partial[10])
	assert.True(t, partial[11])
}

func TestMarkedDaysPointItems(t *testing.T) {
	s := setupTestStore(t)
	addItem(t, s, models.TypeNote, "n", "2024-03-03")
	addItem(t, s, models.TypeFile, "/tmp/f", "2024-03-10")
	addItem(t, s, models.TypeDiary, "d", "2024-03-31")
	addItem(t, s, models.TypeNote, "elsewhere", "2024-04-01")
	gone := addItem(t, s, models.TypeNote, "trashed", "2024-03-15")
	require.NoError(t, s.SoftDelete(gone.ID))

	marked, err := s.MarkedDays(2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 10, 31}, markedList(marked))
}

func TestMonthStatsCountsAndMood(t *testing.T) {
	s := setupTestStore(t)
	addItem(t, s, models.TypeNote, "n1", "2024-03-02")
	addItem(t, s, models.TypeNote, "n2", "2024-03-02")
	addItem(t, s, models.TypeFile, "/tmp/f", "2024-03-02")
	_, err := s.AddItem(AddItemRequest{Type: models.TypeDiary, Content: "am", Date: "2024-03-02", Mood: "tired"})
	require.NoError(t, err)
	_, err = s.AddItem(AddItemRequest{Type: models.TypeDiary, Content: "pm", Date: "2024-03-02", Mood: "happy"})
	require.NoError(t, err)
	_, err = s.AddItem(AddItemRequest{Type: models.TypeDiary, Content: "no mood", Date: "2024-03-03"})
	require.NoError(t, err)
	addItem(t, s, models.TypeTodo, "t1", "2024-03-02")
	addItem(t, s, models.TypeTodo, "t2", "2024-02-01")

	stats, err := s.MonthStats(2024, time.March)
	require.NoError(t, err)
	require.Len(t, stats, 31)

	assert.Equal(t, models.DayStats{Diary: 2, File: 1, Todo: 2, Note: 2, Mood: "happy"}, stats[2])
	assert.Equal(t, models.DayStats{Diary: 1, Todo: 2}, stats[3])
	assert.Equal(t, models.DayStats{Todo: 1}, stats[1])
	assert.Equal(t, 2, stats[31].Todo)
}

func TestAggregationSkipsMalformedDates(t *testing.T) {
	s := setupTestStore(t)
	addItem(t, s, models.TypeNote, "good", "2024-03-05")
	require.NoError(t, s.db.Exec(
		`INSERT INTO items (date, type, content, is_done) VALUES ('2024-03-xx', 'note', 'bad', 0)`).Error)
	require.NoError(t, s.db.Exec(
		`INSERT INTO items (date, type, content, is_done) VALUES ('garbage', 'todo', 'bad todo', 0)`).Error)
	require.NoError(t, s.db.Exec(
		`INSERT INTO items (date, type, content, is_done, finish_date) VALUES ('2024-03-01', 'todo', 'bad finish', 1, '03/09/2024')`).Error)

	marked, err := s.MarkedDays(2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, markedList(marked))

	stats, err := s.MonthStats(2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[5].Note)
	assert.Zero(t, stats[5].Todo)

	year, err := s.YearStats(2024)
	require.NoError(t, err)
	assert.Equal(t, 1, year.Note[2])
	assert.Equal(t, 1, year.TotalTodos)
	assert.Zero(t, year.FinishedTodos)
}

func TestInvalidMonth(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.MarkedDays(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = s.MonthStats(2024, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestYearStats(t *testing.T) {
	s := setupTestStore(t)

	addItem(t, s, models.TypeNote, "jan note", "2024-01-10")
	addItem(t, s, models.TypeFile, "/tmp/f", "2024-02-10")
	addItem(t, s, models.TypeDiary, "d", "2024-12-31")
	addItem(t, s, models.TypeNote, "other year", "2023-06-01")

	// created last year, finished this year
	crossYear := addItem(t, s, models.TypeTodo, "cross", "2023-12-30")
	require.NoError(t, s.ToggleTodoStatus(crossYear.ID, "2024-01-02"))

	// created and finished this year, in different months
	spanning := addItem(t, s, models.TypeTodo, "spanning", "2024-03-15")
	require.NoError(t, s.ToggleTodoStatus(spanning.ID, "2024-05-01"))

	// created this year, finished next year
	late := addItem(t, s, models.TypeTodo, "late", "2024-11-01")
	require.NoError(t, s.ToggleTodoStatus(late.ID, "2025-01-03"))

	addItem(t, s, models.TypeTodo, "open", "2024-03-20")

	trashed := addItem(t, s, models.TypeTodo, "trashed", "2024-03-21")
	require.NoError(t, s.SoftDelete(trashed.ID))

	stats, err := s.YearStats(2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, stats.Year)

	assert.Equal(t, 1, stats.Note[0])
	assert.Equal(t, 1, stats.File[1])
	assert.Equal(t, 1, stats.Diary[11])

	assert.Equal(t, [12]int{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 1, 0}, stats.TodoCreated)
	assert.Equal(t, [12]int{1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}, stats.TodoDone)
	assert.Equal(t, 3, stats.TotalTodos)
	assert.Equal(t, 2, stats.FinishedTodos)

	sum := func(a [12]int) int {
		total := 0
		for _, v := range a {
			total += v
		}
		return total
	}
	assert.Equal(t, stats.TotalTodos, sum(stats.TodoCreated))
	assert.Equal(t, stats.FinishedTodos, sum(stats.TodoDone))

	next, err := s.YearStats(2025)
	require.NoError(t, err)
	assert.Equal(t, 1, next.TodoDone[0])
	assert.Zero(t, next.TotalTodos)
}

func TestYearStatsEarlyYears(t *testing.T) {
	s := setupTestStore(t)
	addItem(t, s, models.TypeNote, "ancient", "0999-05-01")
	addItem(t, s, models.TypeNote, "later", "1999-05-01")

	stats, err := s.YearStats(999)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Note[4])

	stats, err = s.YearStats(99)
	require.NoError(t, err)
	assert.Zero(t, stats.Note[4])
}
