package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ItemType is the kind of a dated item
type ItemType string

const (
	TypeFile  ItemType = "file"
	TypeNote  ItemType = "note"
	TypeTodo  ItemType = "todo"
	TypeDiary ItemType = "diary"
)

// ItemTypes lists every supported item type in display order
var ItemTypes = []ItemType{TypeDiary, TypeFile, TypeTodo, TypeNote}

// Valid reports whether t is one of the supported item types
func (t ItemType) Valid() bool {
	switch t {
	case TypeFile, TypeNote, TypeTodo, TypeDiary:
		return true
	}
	return false
}

// ParseItemType converts user input to an ItemType
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown item type %q (use file, note, todo or diary)", s)
	}
	return t, nil
}

// Item is a file link, note, todo or diary entry anchored to a calendar date.
// For todos Date is the creation date; for everything else it is the day the
// item belongs to.
type Item struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Date       string         `gorm:"type:text;not null;default:'';index" json:"date"`
	Type       ItemType       `gorm:"type:text;not null;default:'note';index" json:"type"`
	Content    string         `gorm:"type:text;not null;default:''" json:"content"`
	IsDone     bool           `gorm:"not null;default:false" json:"is_done"`
	FinishDate *string        `gorm:"type:text" json:"finish_date"`
	Alias      *string        `gorm:"type:text" json:"alias"`
	Mood       *string        `gorm:"type:text" json:"mood"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tags []Tag `gorm:"many2many:item_tags;" json:"tags"`
}

// TableName keeps the table name stable across model renames
func (Item) TableName() string {
	return "items"
}

// IsTrashed reports whether the item has been soft-deleted
func (i Item) IsTrashed() bool {
	return i.DeletedAt.Valid
}

// DisplayAlias returns the alias or an empty string
func (i Item) DisplayAlias() string {
	if i.Alias == nil {
		return ""
	}
	return *i.Alias
}

// DisplayMood returns the mood or an empty string
func (i Item) DisplayMood() string {
	if i.Mood == nil {
		return ""
	}
	return *i.Mood
}

// Entry is the flat projection of an item used for exporting
type Entry struct {
	Type    ItemType `json:"type"`
	Date    string   `json:"date"`
	Alias   *string  `json:"alias"`
	Content string   `json:"content"`
	Mood    *string  `json:"mood"`
}
