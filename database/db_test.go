package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mit-tracker/mittrack/config"
)

func TestSetup_Sqlite(t *testing.T) {
	cfg := config.Config{
		DBDriver:     "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "nested", "data.db"),
	}

	db, err := Setup(cfg)
	assert.NoError(t, err)
	defer db.Close()

	// The parent directory is created and migrations have run.
	assert.True(t, db.DB.Migrator().HasTable("tasks"))
}

func TestSetup_UnsupportedDriver(t *testing.T) {
	cfg := config.Config{DBDriver: "oracle"}

	_, err := Setup(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestRunMigrations(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, RunMigrations(db))
	assert.True(t, db.Migrator().HasTable("tasks"))
	assert.True(t, db.Migrator().HasColumn("tasks", "order"))
	assert.True(t, db.Migrator().HasColumn("tasks", "date"))
}

func TestClose(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	assert.NotPanics(t, func() {
		database.Close()
	})
}

func TestClose_NilDB(t *testing.T) {
	database := &Database{}

	assert.NotPanics(t, func() {
		database.Close()
	})
}
