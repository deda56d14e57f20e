// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lawncare/entities"
)

// MemoryDSN keeps the whole database in process memory; nothing survives a restart.
const MemoryDSN = ":memory:"

// OpenMemory opens a private in-memory SQLite database and migrates every model.
// The pool is pinned to one connection: each :memory: connection would
// otherwise see its own empty database, and it serialises commands.
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(MemoryDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := db.AutoMigrate(entities.All()...); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
