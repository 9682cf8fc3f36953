package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/balkashynov/timemap/internal/models"
)

// AddItemRequest holds the data needed to create a new item
type AddItemRequest struct {
	Type    models.ItemType
	Content string
	Date    string // YYYY-MM-DD, empty for today
	Alias   string
	Mood    string
	Tags    []string
}

// AddItem creates a new item, and its tags when given
func (s *Store) AddItem(req AddItemRequest) (*models.Item, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	item := models.Item{
		Date:    date,
		Type:    req.Type,
		Content: req.Content,
		Alias:   optional(strings.TrimSpace(req.Alias)),
		Mood:    optional(strings.TrimSpace(req.Mood)),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if len(req.Tags) == 0 {
			return nil
		}
		return s.replaceItemTags(tx, item.ID, req.Tags)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", req.Type, err)
	}

	return &item, nil
}

// GetItem retrieves a live (not trashed) item by ID
func (s *Store) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	err := s.db.Preload("Tags", orderTagsByName).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemsFor returns what belongs on a calendar day: the non-todo items
// dated that day, then every todo that was open on it. A todo is open from
// its creation date until (and including) its finish date.
func (s *Store) GetItemsFor(date string) ([]models.Item, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	var items []models.Item
	err := s.db.Preload("Tags", orderTagsByName).
		Where("type <> ? AND date = ?", models.TypeTodo, date).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	var todos []models.Item
	err = s.db.Preload("Tags", orderTagsByName).
		Where("type = ? AND date <= ?", models.TypeTodo, date).
		Where("(is_done = ? OR finish_date >= ?)", false, date).
		Order("id ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}

	return append(items, todos...), nil
}

// ToggleTodoStatus flips a todo between open and done. Completing records
// actionDate (today when empty) as the finish date, never earlier than the
// creation date; reopening clears it. Unknown ids and non-todos are ignored.
func (s *Store) ToggleTodoStatus(id uint, actionDate string) error {
	finish, err := s.resolveDate(actionDate)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		err := tx.Unscoped().Where("type = ?", models.TypeTodo).First(&item, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if item.IsDone {
			return tx.Unscoped().Model(&item).Updates(map[string]any{
				"is_done":     false,
				"finish_date": nil,
			}).Error
		}

		if _, err := models.ParseDate(item.Date); err == nil && finish < item.Date {
			finish = item.Date
		}
		return tx.Unscoped().Model(&item).Updates(map[string]any{
			"is_done":     true,
			"finish_date": finish,
		}).Error
	})
}

// UpdateItemContent replaces the body (or path) of an item
func (s *Store) UpdateItemContent(id uint, content string) error {
	return s.updateItem(id, map[string]any{"content": content})
}

// UpdateItemAlias sets the display title; an empty alias clears it
func (s *Store) UpdateItemAlias(id uint, alias string) error {
	return s.updateItem(id, map[string]any{"alias": nullable(strings.TrimSpace(alias))})
}

// UpdateDiaryItem rewrites the title, mood and body of a diary entry
func (s *Store) UpdateDiaryItem(id uint, title, mood, content string) error {
	return s.updateItem(id, map[string]any{
		"alias":   nullable(strings.TrimSpace(title)),
		"mood":    nullable(strings.TrimSpace(mood)),
		"content": content,
	})
}

func (s *Store) updateItem(id uint, fields map[string]any) error {
	err := s.db.Unscoped().Model(&models.Item{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update item #%d: %w", id, err)
	}
	return nil
}

// DeleteItem permanently removes an item and its tag links, then drops tags
// left without items
func (s *Store) DeleteItem(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := purgeItems(tx, []uint{id}); err != nil {
			return err
		}
		return collectOrphanTags(tx)
	})
	if err != nil {
		return fmt.Errorf("failed to delete item #%d: %w", id, err)
	}
	return nil
}

// GetAllEntries returns every item, trashed ones included, oldest first
func (s *Store) GetAllEntries() ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.Unscoped().Model(&models.Item{}).
		Select("type, date, alias, content, mood").
		Order("date ASC, id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// purgeItems hard-deletes items together with their tag links
func purgeItems(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("item_id IN ?", ids).Delete(&models.ItemTag{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("id IN ?", ids).Delete(&models.Item{}).Error
}

func orderTagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name ASC")
}
