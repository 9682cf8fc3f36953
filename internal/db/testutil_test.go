package db

import (
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/balkashynov/timemap/internal/models"
)

// tickingClock advances one second per reading so trash timestamps are
// strictly ordered
type tickingClock struct {
	t time.Time
}

func (c *tickingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

// setupTestStore opens a fresh store in a temp dir whose "today" is 2024-03-01
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	clock := &tickingClock{t: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
	s, err := Open(Options{
		Path: filepath.Join(t.TempDir(), "timemap.db"),
		Now:  clock.Now,
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addItem(t *testing.T, s *Store, typ models.ItemType, content, date string, tags ...string) *models.Item {
	t.Helper()
	item, err := s.AddItem(AddItemRequest{Type: typ, Content: content, Date: date, Tags: tags})
	require.NoError(t, err)
	return item
}

func countRows(t *testing.T, s *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Unscoped().Model(model).Count(&n).Error)
	return n
}

func itemIDs(items []models.Item) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
