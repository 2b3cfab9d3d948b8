package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeCatalog creates a minimal catalog tree under a temp dir and returns its root.
func makeCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "entries", "tocs"), 0750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "code", "html"), 0750))
	return root
}

func TestNewLayout(t *testing.T) {
	l := NewLayout("/srv/catalog/")

	require.Equal(t, "/srv/catalog", l.Root)
	require.Equal(t, "/srv/catalog/entries", l.Entries)
	require.Equal(t, "/srv/catalog/entries/tocs", l.TOCs)
	require.Equal(t, "/srv/catalog/code", l.Code)
	require.Equal(t, "/srv/catalog/docs", l.Web)
	require.Equal(t, "/srv/catalog/code/html", l.WebTemplates)
	require.Equal(t, "/srv/catalog/docs/css", l.WebCSS)
	require.Equal(t, "/srv/catalog/inspirations.md", l.Inspirations)
	require.Equal(t, "/srv/catalog/developers.md", l.Developers)
	require.Equal(t, "/srv/catalog/code/backlog.txt", l.Backlog)
	require.Equal(t, "/srv/catalog/code/rejected.txt", l.Rejected)
	require.Equal(t, "/srv/catalog/statistics.md", l.Statistics)
	require.Equal(t, "/srv/catalog/docs/data.json", l.JSONDatabase)
	require.Equal(t, "/srv/catalog/local-config.ini", l.LocalConfig)
}

func TestDetectRoot_FromRoot(t *testing.T) {
	root := makeCatalog(t)

	got, err := DetectRoot(root)
	require.NoError(t, err)
	require.Equal(t, root, got)
}

func TestDetectRoot_FromNestedDir(t *testing.T) {
	root := makeCatalog(t)

	got, err := DetectRoot(filepath.Join(root, "entries", "tocs"))
	require.NoError(t, err)
	require.Equal(t, root, got)
}

func TestDetectRoot_RequiresBothDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "entries"), 0750))
	// code is a file, not a directory
	require.NoError(t, os.WriteFile(filepath.Join(dir, "code"), []byte("x"), 0600))

	_, err := DetectRoot(dir)
	require.True(t, errors.Is(err, ErrRootNotFound))
}

func TestResolve_ExplicitRootSkipsDetection(t *testing.T) {
	dir := t.TempDir()

	l, err := Resolve(dir, "/nonexistent")
	require.NoError(t, err)
	require.Equal(t, dir, l.Root)
	require.Equal(t, filepath.Join(dir, "local-config.ini"), l.LocalConfig)
}

func TestResolve_Detects(t *testing.T) {
	root := makeCatalog(t)

	l, err := Resolve("", filepath.Join(root, "code", "html"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "docs", "data.json"), l.JSONDatabase)
}
