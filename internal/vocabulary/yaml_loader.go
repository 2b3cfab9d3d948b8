// Package vocabulary loads the controlled vocabularies from the built-in
// tables or from an alternate YAML vocabulary file.
package vocabulary

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/log"
)

// Base values for VocabularyFile.Base.
const (
	BaseDefault = "default" // omitted sections inherit the built-in tables
	BaseNone    = "none"    // omitted sections are empty
)

// ErrUnknownBase is returned when a vocabulary file names an unknown base.
var ErrUnknownBase = errors.New("vocabulary base must be \"default\" or \"none\"")

// VocabularyFile is the root structure of a vocabulary YAML file.
// Sections that are omitted (nil) inherit from Base.
type VocabularyFile struct {
	Base                string               `yaml:"base,omitempty"`
	Schemas             map[string]SchemaDef `yaml:"schemas,omitempty"`
	Licenses            []string             `yaml:"licenses,omitempty"`
	Languages           []string             `yaml:"languages,omitempty"`
	Platforms           []string             `yaml:"platforms,omitempty"`
	MultiplayerModes    []string             `yaml:"multiplayer_modes,omitempty"`
	Keywords            []string             `yaml:"keywords,omitempty"`
	FrameworkKeywords   []string             `yaml:"framework_keywords,omitempty"`
	URLPrefixes         []string             `yaml:"url_prefixes,omitempty"`
	LicenseFamilies     []LicenseFamilyDef   `yaml:"license_families,omitempty"`
	LanguageURLs        []NamedURLDef        `yaml:"language_urls,omitempty"`
	DependencyAliases   []DependencyAliasDef `yaml:"dependency_aliases,omitempty"`
	NoEntryDependencies []NamedURLDef        `yaml:"no_entry_dependencies,omitempty"`
}

// SchemaDef defines the fields of one record kind.
type SchemaDef struct {
	Valid     []string `yaml:"valid"`
	Essential []string `yaml:"essential,omitempty"`
	URL       []string `yaml:"url,omitempty"`
}

// LicenseFamilyDef maps a license name prefix to a URL.
type LicenseFamilyDef struct {
	Prefix string `yaml:"prefix"`
	URL    string `yaml:"url"`
}

// NamedURLDef pairs a name with a URL.
type NamedURLDef struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DependencyAliasDef lists the aliases of a canonical dependency name.
type DependencyAliasDef struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// Load returns the registry for path, or the built-in registry when path is empty.
func Load(path string) (*domain.Registry, error) {
	if path == "" {
		reg, err := domain.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in vocabulary: %w", err)
		}
		logConflicts(reg, "built-in")
		return reg, nil
	}
	return LoadFromYAML(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFromYAML parses the vocabulary file at path in fsys and builds a registry.
func LoadFromYAML(fsys fs.FS, path string) (*domain.Registry, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file VocabularyFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	tables, err := buildTablesFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}

	reg, err := domain.New(tables)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}

	log.Debug(log.CatVocab, "loaded vocabulary", "path", path, "base", file.Base,
		"licenses", len(tables.Licenses), "languages", len(tables.Languages))
	logConflicts(reg, path)
	return reg, nil
}

// logConflicts warns about aliases claimed by more than one canonical name.
func logConflicts(reg *domain.Registry, source string) {
	for _, c := range reg.AliasConflicts() {
		log.Warn(log.CatVocab, "dependency alias registered twice, keeping first",
			"source", source, "alias", c.Alias, "kept", c.Kept, "rejected", c.Rejected)
	}
}

// buildTablesFromFile converts a VocabularyFile into domain tables, filling
// omitted sections from the base.
func buildTablesFromFile(file VocabularyFile) (domain.Tables, error) {
	var base domain.Tables
	switch file.Base {
	case "", BaseDefault:
		base = domain.DefaultTables()
	case BaseNone:
		base = domain.Tables{Schemas: make(map[domain.Kind]domain.Schema)}
	default:
		return domain.Tables{}, fmt.Errorf("%q: %w", file.Base, ErrUnknownBase)
	}

	b := domain.FromTables(base)

	for name, def := range file.Schemas {
		kind, err := domain.ParseKind(name)
		if err != nil {
			return domain.Tables{}, fmt.Errorf("schema %q: %w", name, err)
		}
		b.Schema(kind, domain.Schema{Valid: def.Valid, Essential: def.Essential, URL: def.URL})
	}

	if file.Licenses != nil {
		b.Licenses(file.Licenses...)
	}
	if file.Languages != nil {
		b.Languages(file.Languages...)
	}
	if file.Platforms != nil {
		b.Platforms(file.Platforms...)
	}
	if file.MultiplayerModes != nil {
		b.MultiplayerModes(file.MultiplayerModes...)
	}
	if file.Keywords != nil {
		b.Keywords(file.Keywords...)
	}
	if file.FrameworkKeywords != nil {
		b.FrameworkKeywords(file.FrameworkKeywords...)
	}
	if file.URLPrefixes != nil {
		b.URLPrefixes(file.URLPrefixes...)
	}

	tables := b.Tables()

	if file.LicenseFamilies != nil {
		tables.LicenseFamilies = make([]domain.LicenseFamily, len(file.LicenseFamilies))
		for i, f := range file.LicenseFamilies {
			tables.LicenseFamilies[i] = domain.LicenseFamily{Prefix: f.Prefix, URL: f.URL}
		}
	}
	if file.LanguageURLs != nil {
		tables.LanguageURLs = toNamedURLs(file.LanguageURLs)
	}
	if file.DependencyAliases != nil {
		tables.DependencyAliases = make([]domain.DependencyAliases, len(file.DependencyAliases))
		for i, d := range file.DependencyAliases {
			tables.DependencyAliases[i] = domain.DependencyAliases{Canonical: d.Canonical, Aliases: d.Aliases}
		}
	}
	if file.NoEntryDependencies != nil {
		tables.NoEntryDependencies = toNamedURLs(file.NoEntryDependencies)
	}

	return tables, nil
}

func toNamedURLs(defs []NamedURLDef) []domain.NamedURL {
	out := make([]domain.NamedURL, len(defs))
	for i, d := range defs {
		out[i] = domain.NamedURL{Name: d.Name, URL: d.URL}
	}
	return out
}
