package config

import (
	"errors"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/zjrosen/osgdb/internal/log"
)

// LocalSection is the section of local-config.ini read by Get.
const LocalSection = "general"

// Errors returned by LocalSettings.Get.
var (
	ErrSectionNotFound = errors.New("section [general] not found in local settings")
	ErrKeyNotFound     = errors.New("key not found in local settings")
)

// LocalSettings holds the machine-local settings from local-config.ini.
// Section and key names are case-insensitive.
type LocalSettings struct {
	path string
	file *ini.File
}

// LoadLocalSettings reads the local settings file once. A missing file yields
// empty settings; a malformed file is an error.
func LoadLocalSettings(path string) (*LocalSettings, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		Loose:                   true,
		Insensitive:             true,
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("loading local settings %s: %w", path, err)
	}
	log.Debug(log.CatConfig, "loaded local settings", "path", path, "sections", len(file.SectionStrings()))
	return &LocalSettings{path: path, file: file}, nil
}

// Path returns the file the settings were loaded from.
func (s *LocalSettings) Path() string {
	return s.path
}

// Get returns the value of key in the [general] section.
func (s *LocalSettings) Get(key string) (string, error) {
	section, err := s.file.GetSection(LocalSection)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.path, ErrSectionNotFound)
	}
	if !section.HasKey(key) {
		return "", fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	return section.Key(key).String(), nil
}

// Keys returns the key names of the [general] section in file order.
func (s *LocalSettings) Keys() []string {
	section, err := s.file.GetSection(LocalSection)
	if err != nil {
		return nil
	}
	return section.KeyStrings()
}
