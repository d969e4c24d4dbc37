// Package testutil provides database fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"embers/internal/models"
)

// OpenDB returns an in-memory sqlite database with foreign key enforcement on
// and the normalized schema migrated. The connection pool is pinned to one
// connection so the in-memory database survives for the whole test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	g, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := g.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return g
}
