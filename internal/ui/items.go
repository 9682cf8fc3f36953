package ui

import (
	"fmt"
	"strings"

	"github.com/balkashynov/timemap/internal/models"
)

// ItemLine renders one item on a single line:
// "#12  todo  [x] Call the bank #money (done 2024-03-04)"
func ItemLine(item models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s ", fmt.Sprintf("#%d", item.ID))
	b.WriteString(TypeStyle(item.Type).Render(fmt.Sprintf("%-5s", item.Type)))
	b.WriteString(" ")

	if item.Type == models.TypeTodo {
		if item.IsDone {
			b.WriteString(SuccessStyle.Render("[x]"))
		} else {
			b.WriteString("[ ]")
		}
		b.WriteString(" ")
	}

	text := item.Content
	if alias := item.DisplayAlias(); alias != "" {
		text = fmt.Sprintf("%s (%s)", alias, item.Content)
	}
	b.WriteString(text)

	for _, tag := range item.Tags {
		b.WriteString(" ")
		b.WriteString(TagChip(tag))
	}

	var extra []string
	if item.Type == models.TypeTodo && item.Date != "" {
		extra = append(extra, "since "+item.Date)
	}
	if item.IsDone && item.FinishDate != nil {
		extra = append(extra, "done "+*item.FinishDate)
	}
	if mood := item.DisplayMood(); mood != "" {
		extra = append(extra, "mood: "+mood)
	}
	if item.IsTrashed() {
		extra = append(extra, "trashed")
	}
	if len(extra) > 0 {
		b.WriteString(MutedStyle.Render(" (" + strings.Join(extra, ", ") + ")"))
	}

	return b.String()
}

// TagLine renders a tag with its live item count
func TagLine(tag models.TagCount) string {
	chip := TagChip(models.Tag{Name: tag.Name, Color: tag.Color})
	return fmt.Sprintf("%s %s", chip, MutedStyle.Render(fmt.Sprintf("(%d)", tag.Count)))
}
