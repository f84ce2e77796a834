package dbtest

import (
	"fmt"
	"sync/atomic"

	"strata-be-svc/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var memCounter atomic.Int64

// NewSQLiteMemory opens an isolated in-memory SQLite database with every table migrated.
// Repository tests use it in place of PostgreSQL.
func NewSQLiteMemory() (*database.Database, error) {
	dsn := fmt.Sprintf("file:strata_%d?mode=memory&cache=shared&_foreign_keys=on", memCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	d := database.New(db)
	if err := d.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite: %w", err)
	}
	return d, nil
}
