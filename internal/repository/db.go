package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"year-planner/model"
)

// NewDB opens the backing database and runs migrations. A postgres:// URL
// selects the Postgres driver; anything else is treated as a SQLite file
// path with foreign keys switched on.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "data/planner.db"
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		if err := ensureDirForSQLite(dsn); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(withForeignKeys(dsn))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Year{},
		&model.CalendarEvent{},
		&model.YearlyPlan{},
		&model.Habit{},
		&model.GratitudeEntry{},
		&model.ReviewEntry{},
		&model.Month{},
		&model.MonthlyPlan{},
		&model.DiaryEntry{},
		&model.TaskColour{},
		&model.TaskPopup{},
		&model.BestInMonth{},
		&model.Author{},
		&model.Reading{},
		&model.WishlistItem{},
		&model.Goal{},
		&model.Course{},
		&model.Work{},
		&model.WorkNote{},
	); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return db, nil
}

// withForeignKeys makes SQLite enforce FK constraints, which it leaves off
// by default.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_fk=") || strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_fk=1"
}

// ensureDirForSQLite creates the parent dir for a SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
