package db

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/timemap/internal/logging"
	"github.com/balkashynov/timemap/internal/models"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Options configures a Store
type Options struct {
	// Path of the SQLite file; parent directories are created
	Path string
	// Debug turns on gorm's SQL logging
	Debug bool
	// Now is the wall clock used for default dates and trash timestamps
	Now func() time.Time
	// Rand picks tag colors; nil uses the shared source
	Rand *rand.Rand
}

// Store is the temporal item store backed by a single SQLite file
type Store struct {
	db   *gorm.DB
	now  func() time.Time
	rand *rand.Rand
}

// Open connects to the database at opts.Path and brings its schema up to date
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if opts.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &Store{now: opts.Now, rand: opts.Rand}
	if s.now == nil {
		s.now = time.Now
	}

	logMode := logger.Silent // Quiet by default
	if opts.Debug {
		logMode = logger.Info
	}

	gdb, err := gorm.Open(sqlite.Open(dsn(opts.Path)), &gorm.Config{
		Logger:  logger.Default.LogMode(logMode),
		NowFunc: func() time.Time { return s.now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One connection: a single local writer, and ":memory:" stays one database
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(gdb); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	s.db = gdb
	logging.Debug("store opened", "path", opts.Path)
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// today returns the current calendar date in storage format
func (s *Store) today() string {
	return models.FormatDate(s.now())
}

// resolveDate validates a caller-supplied date, defaulting to today
func (s *Store) resolveDate(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if _, err := models.ParseDate(date); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return date, nil
}

func (s *Store) pickColor() string {
	if s.rand != nil {
		return models.TagPalette[s.rand.IntN(len(models.TagPalette))]
	}
	return models.TagPalette[rand.IntN(len(models.TagPalette))]
}

// nullable maps an empty string to SQL NULL
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
