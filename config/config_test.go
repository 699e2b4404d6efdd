package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 3, cfg.MaxTasksPerDay)
	assert.False(t, cfg.HTTPAPIEnabled)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoad_MaxTasksPerDay(t *testing.T) {
	t.Run("garbage falls back to default", func(t *testing.T) {
		t.Setenv("MAX_TASKS_PER_DAY", "banana")
		assert.Equal(t, 3, Load().MaxTasksPerDay)
	})

	t.Run("below floor is clamped to one", func(t *testing.T) {
		t.Setenv("MAX_TASKS_PER_DAY", "-2")
		assert.Equal(t, 1, Load().MaxTasksPerDay)
	})

	t.Run("explicit value wins", func(t *testing.T) {
		t.Setenv("MAX_TASKS_PER_DAY", "5")
		assert.Equal(t, 5, Load().MaxTasksPerDay)
	})
}

func TestLoad_DatabasePathOverride(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/override/tasks.db")

	assert.Equal(t, "/tmp/override/tasks.db", Load().DatabasePath)
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()

	assert.Contains(t, path, appDirName)
	assert.Contains(t, path, "data.db")
}
