package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/timemap/internal/logging"
	"github.com/balkashynov/timemap/internal/models"
)

// TrashCapacity is how many soft-deleted items are kept for recovery
const TrashCapacity = 3

// SoftDelete moves an item to the trash. When that leaves more than
// TrashCapacity items trashed, the oldest ones are purged for good.
func (s *Store) SoftDelete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // missing or already trashed
		}
		return enforceTrashCapacity(tx)
	})
	if err != nil {
		return fmt.Errorf("failed to trash item #%d: %w", id, err)
	}
	return nil
}

// RecoverLast restores the most recently trashed item. It reports false when
// the trash is empty.
func (s *Store) RecoverLast() (bool, error) {
	recovered := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		err := trashed(tx).Take(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Unscoped().Model(&item).Update("deleted_at", nil).Error; err != nil {
			return err
		}
		recovered = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to recover item: %w", err)
	}
	return recovered, nil
}

// EmptyTrash purges every trashed item and returns how many were removed
func (s *Store) EmptyTrash() (int64, error) {
	var purged int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := trashed(tx).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if err := purgeItems(tx, ids); err != nil {
			return err
		}
		purged = int64(len(ids))
		return collectOrphanTags(tx)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to empty trash: %w", err)
	}
	return purged, nil
}

// ListTrash returns trashed items, most recently deleted first
func (s *Store) ListTrash() ([]models.Item, error) {
	var items []models.Item
	if err := trashed(s.db).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// trashed scopes a query to soft-deleted items, newest deletion first
func trashed(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Model(&models.Item{}).
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC, id DESC")
}

func enforceTrashCapacity(tx *gorm.DB) error {
	var ids []uint
	if err := trashed(tx).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) <= TrashCapacity {
		return nil
	}

	overflow := ids[TrashCapacity:]
	if err := purgeItems(tx, overflow); err != nil {
		return err
	}
	logging.Debug("purged items beyond trash capacity", "ids", overflow)
	return collectOrphanTags(tx)
}
