package testutil

import (
	"strings"

	"github.com/zjrosen/osgdb/internal/catalog"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
)

// slug turns a title into a file-name friendly form.
func slug(title string) string {
	return strings.ToLower(strings.NewReplacer(" ", "_", ".", "", "(", "", ")", "", "+", "p").Replace(title))
}

// defaultEntry returns an entry that passes every check against the built-in
// vocabulary.
func defaultEntry(title string) recordData {
	s := slug(title)
	return recordData{
		order: fieldOrder(domain.KindEntry),
		record: catalog.Record{Fields: []catalog.Field{
			F("File", s+".md"),
			F("Title", title),
			F("Home", "https://example.org/"+s),
			F("State", "mature"),
			F("Keyword", "action"),
			F("Code repository", "https://github.com/example/"+s),
			F("Code language", "C++"),
			F("Code license", "GPL-3.0"),
		}},
	}
}

func defaultDeveloper(name string) recordData {
	return recordData{
		order: fieldOrder(domain.KindDeveloper),
		record: catalog.Record{Fields: []catalog.Field{
			F("Name", name),
			F("Games", "Example"),
		}},
	}
}

func defaultInspiration(name string) recordData {
	return recordData{
		order: fieldOrder(domain.KindInspiration),
		record: catalog.Record{Fields: []catalog.Field{
			F("Name", name),
			F("Inspired entries", "Example"),
		}},
	}
}

// WithStandardTestData adds a small consistent catalog: two libraries, a game
// depending on them through an alias and a no-entry dependency, a developer
// and an inspiration.
func (b *Builder) WithStandardTestData() *Builder {
	return b.
		WithEntry("Simple DirectMedia Layer",
			Field("Keyword", "library"), Field("Code language", "C"), Field("Code license", "zlib")).
		WithEntry("Boost (C++ Libraries)",
			Field("Keyword", "library"), Field("Code license", "Boost-1.0")).
		WithEntry("Example",
			Field("Platform", "Windows", "Linux"),
			Field("Keyword", "strategy", "multiplayer online + LAN"),
			Field("Code dependency", "SDL2", "Boost", "OpenGL"),
			Field("Assets license", "CC-BY-SA-4.0"),
			Building(F("Build system", "CMake"))).
		WithDeveloper("Example Developer", Field("Home", "https://github.com/example")).
		WithInspiration("Example Classic", Field("Media", "https://en.wikipedia.org/wiki/Example"))
}
