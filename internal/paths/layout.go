// Package paths provides path resolution utilities for the catalog repository.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/osgdb/internal/log"
)

// ErrRootNotFound is returned when no catalog root exists above the start directory.
var ErrRootNotFound = errors.New("catalog root not found (no directory containing entries/ and code/)")

// Layout is the fixed directory and file layout of a catalog repository.
// All paths are absolute when the root is.
type Layout struct {
	Root         string
	Entries      string
	TOCs         string
	Code         string
	Web          string
	WebTemplates string
	WebCSS       string
	Inspirations string
	Developers   string
	Backlog      string
	Rejected     string
	Statistics   string
	JSONDatabase string
	LocalConfig  string
}

const (
	entriesDir      = "entries"
	codeDir         = "code"
	localConfigFile = "local-config.ini"
)

// NewLayout derives every catalog path from root.
func NewLayout(root string) Layout {
	root = filepath.Clean(root)
	entries := filepath.Join(root, entriesDir)
	code := filepath.Join(root, codeDir)
	web := filepath.Join(root, "docs")

	return Layout{
		Root:         root,
		Entries:      entries,
		TOCs:         filepath.Join(entries, "tocs"),
		Code:         code,
		Web:          web,
		WebTemplates: filepath.Join(code, "html"),
		WebCSS:       filepath.Join(web, "css"),
		Inspirations: filepath.Join(root, "inspirations.md"),
		Developers:   filepath.Join(root, "developers.md"),
		Backlog:      filepath.Join(code, "backlog.txt"),
		Rejected:     filepath.Join(code, "rejected.txt"),
		Statistics:   filepath.Join(root, "statistics.md"),
		JSONDatabase: filepath.Join(web, "data.json"),
		LocalConfig:  filepath.Join(root, localConfigFile),
	}
}

// DetectRoot walks up from start until it finds a directory containing both
// entries/ and code/.
func DetectRoot(start string) (string, error) {
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if isRoot(dir) {
			log.Debug(log.CatPaths, "detected catalog root", "start", start, "root", dir)
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", start, ErrRootNotFound)
		}
		dir = parent
	}
}

// Resolve returns the layout for root, or for the detected root above start
// when root is empty.
func Resolve(root, start string) (Layout, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return Layout{}, fmt.Errorf("resolving %s: %w", root, err)
		}
		log.Debug(log.CatPaths, "using explicit catalog root", "root", abs)
		return NewLayout(abs), nil
	}
	detected, err := DetectRoot(start)
	if err != nil {
		return Layout{}, err
	}
	return NewLayout(detected), nil
}

func isRoot(dir string) bool {
	return isDir(filepath.Join(dir, entriesDir)) && isDir(filepath.Join(dir, codeDir))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
