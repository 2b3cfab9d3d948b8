package vocabulary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
)

// FileFromTables converts domain tables into a self-contained vocabulary file
// (base "none", every section present).
func FileFromTables(t domain.Tables) VocabularyFile {
	file := VocabularyFile{
		Base:              BaseNone,
		Schemas:           make(map[string]SchemaDef, len(t.Schemas)),
		Licenses:          t.Licenses,
		Languages:         t.Languages,
		Platforms:         t.Platforms,
		MultiplayerModes:  t.MultiplayerModes,
		Keywords:          t.Keywords,
		FrameworkKeywords: t.FrameworkKeywords,
		URLPrefixes:       t.URLPrefixes,
	}
	for kind, s := range t.Schemas {
		file.Schemas[kind.String()] = SchemaDef{Valid: s.Valid, Essential: s.Essential, URL: s.URL}
	}
	for _, f := range t.LicenseFamilies {
		file.LicenseFamilies = append(file.LicenseFamilies, LicenseFamilyDef{Prefix: f.Prefix, URL: f.URL})
	}
	for _, u := range t.LanguageURLs {
		file.LanguageURLs = append(file.LanguageURLs, NamedURLDef{Name: u.Name, URL: u.URL})
	}
	for _, d := range t.DependencyAliases {
		file.DependencyAliases = append(file.DependencyAliases, DependencyAliasDef{Canonical: d.Canonical, Aliases: d.Aliases})
	}
	for _, d := range t.NoEntryDependencies {
		file.NoEntryDependencies = append(file.NoEntryDependencies, NamedURLDef{Name: d.Name, URL: d.URL})
	}
	return file
}

// MarshalTables encodes tables as vocabulary YAML.
func MarshalTables(t domain.Tables) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FileFromTables(t)); err != nil {
		return nil, fmt.Errorf("encoding vocabulary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding vocabulary: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes tables as vocabulary YAML to path, creating parent directories.
func WriteFile(path string, t domain.Tables) error {
	data, err := MarshalTables(t)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating vocabulary directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing vocabulary: %w", err)
	}
	return nil
}
