package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WICKET_INPUT_FILE", "")
	t.Setenv("WICKET_DATABASE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "international_data.json", cfg.InputFile)
	assert.Equal(t, "cricket_warehouse.db", cfg.DatabasePath)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("WICKET_INPUT_FILE", "")
	t.Setenv("WICKET_DATABASE_PATH", "")

	body := "input_file: matches.json\ndatabase_path: warehouse.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "matches.json", cfg.InputFile)
	assert.Equal(t, "warehouse.db", cfg.DatabasePath)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("WICKET_INPUT_FILE", "")
	t.Setenv("WICKET_DATABASE_PATH", "")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("input_file: only.json\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "only.json", cfg.InputFile)
	assert.Equal(t, "cricket_warehouse.db", cfg.DatabasePath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	body := "input_file: matches.json\ndatabase_path: warehouse.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	t.Setenv("WICKET_INPUT_FILE", "override.json")
	t.Setenv("WICKET_DATABASE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "override.json", cfg.InputFile)
	assert.Equal(t, "warehouse.db", cfg.DatabasePath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("input_file: [broken\n"), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_EmptyPathFailsValidation(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`input_file: ""`+"\n"), 0o644))
	t.Setenv("WICKET_INPUT_FILE", "")
	t.Setenv("WICKET_DATABASE_PATH", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
