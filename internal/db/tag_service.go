package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/balkashynov/timemap/internal/logging"
	"github.com/balkashynov/timemap/internal/models"
)

// UpdateItemTags replaces the whole tag set of an item. Names are trimmed,
// blanks and duplicates dropped; unknown tags are created with a palette
// color. Tags left without items are removed.
func (s *Store) UpdateItemTags(id uint, names []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.replaceItemTags(tx, id, names)
	})
	if err != nil {
		return fmt.Errorf("failed to update tags of item #%d: %w", id, err)
	}
	return nil
}

// GetTagsForItem returns the tags of an item ordered by name
func (s *Store) GetTagsForItem(id uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.db.Joins("JOIN item_tags ON item_tags.tag_id = tags.id").
		Where("item_tags.item_id = ?", id).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetAllTags returns tags with the number of live items carrying them,
// most used first. Tags only attached to trashed items are left out.
func (s *Store) GetAllTags() ([]models.TagCount, error) {
	var counts []models.TagCount
	err := s.db.Model(&models.Tag{}).
		Select("tags.id, tags.name, tags.color, COUNT(items.id) AS count").
		Joins("JOIN item_tags ON item_tags.tag_id = tags.id").
		Joins("JOIN items ON items.id = item_tags.item_id AND items.deleted_at IS NULL").
		Group("tags.id, tags.name, tags.color").
		Having("COUNT(items.id) > 0").
		Order("count DESC, tags.name ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetItemsByTag returns live items carrying the tag, oldest first
func (s *Store) GetItemsByTag(tagID uint) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Preload("Tags", orderTagsByName).
		Joins("JOIN item_tags ON item_tags.item_id = items.id").
		Where("item_tags.tag_id = ?", tagID).
		Order("items.date ASC, items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// replaceItemTags rewrites the links of one item inside tx
func (s *Store) replaceItemTags(tx *gorm.DB, itemID uint, names []string) error {
	if err := tx.Where("item_id = ?", itemID).Delete(&models.ItemTag{}).Error; err != nil {
		return err
	}

	var exists int64
	if err := tx.Unscoped().Model(&models.Item{}).Where("id = ?", itemID).Count(&exists).Error; err != nil {
		return err
	}

	if exists > 0 {
		for _, name := range normalizeTagNames(names) {
			tag, err := s.findOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.ItemTag{ItemID: itemID, TagID: tag.ID}).Error; err != nil {
				return err
			}
		}
	}

	return collectOrphanTags(tx)
}

// findOrCreateTag finds an existing tag or creates it with a palette color
func (s *Store) findOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = models.Tag{Name: name, Color: s.pickColor()}
	if err := tx.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// collectOrphanTags deletes tags that no item links to anymore
func collectOrphanTags(tx *gorm.DB) error {
	res := tx.Exec("DELETE FROM tags WHERE id NOT IN (SELECT tag_id FROM item_tags)")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		logging.Debug("removed orphan tags", "count", res.RowsAffected)
	}
	return nil
}

func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var result []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
