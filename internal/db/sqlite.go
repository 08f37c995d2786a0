package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqliteDSN enables foreign keys, which beds, plantings, and lifecycle rows
// rely on for cascading deletes, and a busy timeout so the API and the CLI
// reset command can share the file.
func sqliteDSN(dbPath string) string {
	return fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
}

// slowQueryLogger surfaces queries slower than the calendar aggregation
// budget. Anything above 200ms on a month grid fetch is worth a look.
func slowQueryLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "furrow/db: ", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// OpenSQLite opens (creating if needed) the database file and brings its
// schema up to date.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath)), &gorm.Config{
		Logger: slowQueryLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}
