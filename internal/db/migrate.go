package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/timemap/internal/logging"
	"github.com/balkashynov/timemap/internal/models"
)

// tableSpec describes one table of the current model. Migrations only ever
// add: missing tables are created, missing columns and indexes are added,
// nothing is dropped, renamed or retyped.
type tableSpec struct {
	model   any
	indexes []string // fields carrying an index tag
}

var schema = []tableSpec{
	{model: &models.Item{}, indexes: []string{"Date", "Type", "DeletedAt"}},
	{model: &models.Tag{}, indexes: []string{"Name"}},
	{model: &models.ItemTag{}},
}

// migrate creates/updates the database schema. Running it against an
// up-to-date database changes nothing.
func migrate(gdb *gorm.DB) error {
	m := gdb.Migrator()
	for _, spec := range schema {
		if !m.HasTable(spec.model) {
			if err := m.CreateTable(spec.model); err != nil {
				return fmt.Errorf("%w: create table for %T: %w", ErrSchema, spec.model, err)
			}
			logging.Info("created table", "model", fmt.Sprintf("%T", spec.model))
			continue
		}
		if err := addMissingColumns(gdb, spec.model); err != nil {
			return err
		}
		for _, field := range spec.indexes {
			if m.HasIndex(spec.model, field) {
				continue
			}
			if err := m.CreateIndex(spec.model, field); err != nil {
				return fmt.Errorf("%w: create index on %T.%s: %w", ErrSchema, spec.model, field, err)
			}
		}
	}

	if err := normalizeTodos(gdb); err != nil {
		return fmt.Errorf("%w: normalize todos: %w", ErrSchema, err)
	}
	return nil
}

// addMissingColumns compares the live column set of the model's table with
// the model and adds whatever is missing, with the model's default
func addMissingColumns(gdb *gorm.DB, model any) error {
	stmt := &gorm.Statement{DB: gdb}
	if err := stmt.Parse(model); err != nil {
		return fmt.Errorf("%w: parse %T: %w", ErrSchema, model, err)
	}

	existing, err := columnSet(gdb, stmt.Schema.Table)
	if err != nil {
		return fmt.Errorf("%w: inspect %s: %w", ErrSchema, stmt.Schema.Table, err)
	}

	for _, name := range stmt.Schema.DBNames {
		if existing[name] {
			continue
		}
		if err := gdb.Migrator().AddColumn(model, name); err != nil {
			return fmt.Errorf("%w: add column %s.%s: %w", ErrSchema, stmt.Schema.Table, name, err)
		}
		logging.Info("added column", "table", stmt.Schema.Table, "column", name)
	}
	return nil
}

// columnSet lists the columns of a table as reported by SQLite
func columnSet(gdb *gorm.DB, table string) (map[string]bool, error) {
	var names []string
	if err := gdb.Raw("SELECT name FROM pragma_table_info(?)", table).Scan(&names).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}

// normalizeTodos repairs rows written before finish_date existed so that
// finish_date is set exactly when a todo is done
func normalizeTodos(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		done := tx.Unscoped().Model(&models.Item{}).
			Where("type = ? AND is_done = ? AND finish_date IS NULL", models.TypeTodo, true).
			Update("finish_date", gorm.Expr("date"))
		if done.Error != nil {
			return done.Error
		}

		open := tx.Unscoped().Model(&models.Item{}).
			Where("is_done = ? AND finish_date IS NOT NULL", false).
			Update("finish_date", nil)
		if open.Error != nil {
			return open.Error
		}

		if fixed := done.RowsAffected + open.RowsAffected; fixed > 0 {
			logging.Info("normalized todo rows", "count", fixed)
		}
		return nil
	})
}
