package models

// TagPalette is the fixed set of colors a tag can be given when it is created
var TagPalette = []string{
	"#7C3AED", // purple
	"#A78BFA", // lavender
	"#EF4444", // red
	"#F59E0B", // amber
	"#22C55E", // green
	"#06B6D4", // cyan
	"#3B82F6", // blue
	"#EC4899", // pink
}

// Tag is a named label shared between items
type Tag struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Color string `gorm:"type:text;not null;default:''" json:"color"`
}

func (Tag) TableName() string {
	return "tags"
}

// ItemTag is the join table for the many-to-many relationship
type ItemTag struct {
	ItemID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `gorm:"primaryKey;autoIncrement:false"`
}

func (ItemTag) TableName() string {
	return "item_tags"
}

// TagCount is a tag with the number of live items carrying it
type TagCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int64  `json:"count"`
}
