package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "DATABASE_URL", "SEED_PATH", "GRID_FILE", "MAX_POINTS"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "matriz.txt", cfg.GridFile)
	assert.Equal(t, 10, cfg.MaxPoints)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_POINTS", "7")
	t.Setenv("DATABASE_URL", " postgres://localhost/flyfood ")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7, cfg.MaxPoints)
	assert.Equal(t, "postgres://localhost/flyfood", cfg.DatabaseURL)
}

func TestGetIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("MAX_POINTS", "many")
	assert.Equal(t, 10, GetInt("MAX_POINTS", 10))
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRID_FILE=from-dotenv.txt\n"), 0o600))

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv does not override variables that are already set.
	t.Setenv("GRID_FILE", "")
	os.Unsetenv("GRID_FILE")

	cfg := Load()
	assert.Equal(t, "from-dotenv.txt", cfg.GridFile)
	os.Unsetenv("GRID_FILE")
}
