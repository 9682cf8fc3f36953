package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/timemap/internal/models"
)

func TestSoftDeleteKeepsThreeNewest(t *testing.T) {
	s := setupTestStore(t)

	oldest := addItem(t, s, models.TypeNote, "oldest", "2024-03-01", "doomed")
	b := addItem(t, s, models.TypeNote, "b", "2024-03-01", "kept")
	c := addItem(t, s, models.TypeNote, "c", "2024-03-01")
	d := addItem(t, s, models.TypeNote, "d", "2024-03-01")
	live := addItem(t, s, models.TypeNote, "live", "2024-03-01", "kept")

	for _, id := range []uint{oldest.ID, b.ID, c.ID} {
		require.NoError(t, s.SoftDelete(id))
	}
	assert.Equal(t, int64(5), countRows(t, s, &models.Item{}))

	// the fourth deletion pushes the oldest out for good
	require.NoError(t, s.SoftDelete(d.ID))

	trash, err := s.ListTrash()
	require.NoError(t, err)
	assert.Equal(t, []uint{d.ID, c.ID, b.ID}, itemIDs(trash))
	assert.Equal(t, int64(4), countRows(t, s, &models.Item{}))

	var doomed int64
	require.NoError(t, s.db.Model(&models.Tag{}).Where("name = ?", "doomed").Count(&doomed).Error)
	assert.Zero(t, doomed)

	tags, err := s.GetAllTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "kept", tags[0].Name)
	assert.Equal(t, int64(1), tags[0].Count) // b is trashed, only live counts

	_, err = s.GetItem(live.ID)
	assert.NoError(t, err)
}

func TestSoftDeleteNoops(t *testing.T) {
	s := setupTestStore(t)
	item := addItem(t, s, models.TypeNote, "once", "2024-03-01")

	require.NoError(t, s.SoftDelete(item.ID))
	require.NoError(t, s.SoftDelete(item.ID))
	require.NoError(t, s.SoftDelete(4242))

	trash, err := s.ListTrash()
	require.NoError(t, err)
	assert.Equal(t, []uint{item.ID}, itemIDs(trash))
}

func TestRecoverLast(t *testing.T) {
	s := setupTestStore(t)

	t.Run("empty trash", func(t *testing.T) {
		addItem(t, s, models.TypeNote, "untouched", "2024-03-01")

		ok, err := s.RecoverLast()
		require.NoError(t, err)
		assert.False(t, ok)

		items, err := s.GetItemsFor("2024-03-01")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("most recent first", func(t *testing.T) {
		first := addItem(t, s, models.TypeNote, "first", "2024-03-02")
		second := addItem(t, s, models.TypeTodo, "second", "2024-03-02")
		require.NoError(t, s.SoftDelete(first.ID))
		require.NoError(t, s.SoftDelete(second.ID))

		ok, err := s.RecoverLast()
		require.NoError(t, err)
		assert.True(t, ok)

		items, err := s.GetItemsFor("2024-03-02")
		require.NoError(t, err)
		assert.Equal(t, []uint{second.ID}, itemIDs(items))

		ok, err = s.RecoverLast()
		require.NoError(t, err)
		assert.True(t, ok)

		items, err = s.GetItemsFor("2024-03-02")
		require.NoError(t, err)
		assert.Equal(t, []uint{first.ID, second.ID}, itemIDs(items))

		ok, err = s.RecoverLast()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestEmptyTrash(t *testing.T) {
	s := setupTestStore(t)
	a := addItem(t, s, models.TypeNote, "a", "2024-03-01", "gone")
	b := addItem(t, s, models.TypeFile, "/tmp/b", "2024-03-01", "stays")
	c := addItem(t, s, models.TypeNote, "c", "2024-03-01", "stays")
	require.NoError(t, s.SoftDelete(a.ID))
	require.NoError(t, s.SoftDelete(b.ID))

	n, err := s.EmptyTrash()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.Equal(t, int64(1), countRows(t, s, &models.Item{}))
	assert.Equal(t, int64(1), countRows(t, s, &models.ItemTag{}))

	tags, err := s.GetTagsForItem(c.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "stays", tags[0].Name)
	assert.Equal(t, int64(1), countRows(t, s, &models.Tag{}))

	n, err = s.EmptyTrash()
	require.NoError(t, err)
	assert.Zero(t, n)

	ok, err := s.RecoverLast()
	require.NoError(t, err)
	assert.False(t, ok)
}
