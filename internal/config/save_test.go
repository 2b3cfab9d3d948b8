package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readConfig(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestSaveValue_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveValue(path, "check.url_context_entry", "strict"))

	cfg := readConfig(t, path)
	require.Equal(t, map[string]any{"url_context_entry": "strict"}, cfg["check"])
}

func TestSaveValue_PreservesCommentsAndOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveValue(path, "output", "json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# osgdb Configuration")
	require.Contains(t, string(data), "# Output format")

	cfg := readConfig(t, path)
	require.Equal(t, "json", cfg["output"])
	require.Equal(t, "extended", cfg["check"].(map[string]any)["url_context_entry"])
}

func TestSaveValue_CreatesNestedMappings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: table\n"), 0600))

	require.NoError(t, SaveValue(path, "flags.order-diff", "true"))

	cfg := readConfig(t, path)
	require.Equal(t, "table", cfg["output"])
	require.Equal(t, map[string]any{"order-diff": true}, cfg["flags"])
}

func TestSaveValue_ThroughScalarFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: table\n"), 0600))

	err := SaveValue(path, "output.format", "json")
	require.True(t, errors.Is(err, ErrNotMapping))
}

func TestSaveValue_InvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.Error(t, SaveValue(path, "check..x", "1"))
	require.Error(t, SaveValue(path, "", "1"))
}

func TestSaveValue_AtomicWriteLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveValue(path, "root", "/srv/catalog"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "config.yaml", entries[0].Name())
}
