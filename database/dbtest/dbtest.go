// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/acl-api/config"
	"github.com/acl-api/database"
	"gorm.io/gorm"
)

// Open returns a migrated in-memory SQLite database closed at test cleanup.
// The pool is pinned to one connection since every new connection to
// ":memory:" would see an empty database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       "sqlite",
		URL:          "file::memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
