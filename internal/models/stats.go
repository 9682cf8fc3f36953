package models

// DayStats holds per-type item counts for one calendar day. Todo counts every
// todo that was open on the day, not only the ones created on it.
type DayStats struct {
	Diary int    `json:"diary"`
	File  int    `json:"file"`
	Todo  int    `json:"todo"`
	Note  int    `json:"note"`
	Mood  string `json:"diary_mood,omitempty"`
}

// Empty reports whether nothing happened on the day
func (d DayStats) Empty() bool {
	return d.Diary == 0 && d.File == 0 && d.Todo == 0 && d.Note == 0
}

// Count returns the counter for one item type
func (d DayStats) Count(t ItemType) int {
	switch t {
	case TypeDiary:
		return d.Diary
	case TypeFile:
		return d.File
	case TypeTodo:
		return d.Todo
	case TypeNote:
		return d.Note
	}
	return 0
}

// YearStats buckets items of one year by month (index 0 is January).
// Items are counted once in the month of their date; finished todos are
// additionally counted in the month they were completed.
type YearStats struct {
	Year          int     `json:"year"`
	Diary         [12]int `json:"diary"`
	File          [12]int `json:"file"`
	Note          [12]int `json:"note"`
	TodoCreated   [12]int `json:"todo_created"`
	TodoDone      [12]int `json:"todo_done"`
	TotalTodos    int     `json:"total_todos"`
	FinishedTodos int     `json:"finished_todos"`
}
