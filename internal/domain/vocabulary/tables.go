package vocabulary

import "slices"

// Schema lists the fields of one record kind, each in canonical order.
type Schema struct {
	Valid     []string // every field the kind may use
	Essential []string // fields every record must have, a subsequence of Valid
	URL       []string // URL-typed fields, a subset of Valid
}

// LicenseFamily maps every license starting with Prefix to one reference URL.
type LicenseFamily struct {
	Prefix string
	URL    string
}

// DependencyAliases lists the short names that may stand for a canonical
// dependency in free-text dependency fields.
type DependencyAliases struct {
	Canonical string
	Aliases   []string
}

// NamedURL pairs a name with a documentation URL.
type NamedURL struct {
	Name string
	URL  string
}

// Tables is the raw, unchecked input of a Registry. Order is significant in
// every slice.
type Tables struct {
	Schemas             map[Kind]Schema
	Licenses            []string
	Languages           []string
	Platforms           []string
	MultiplayerModes    []string
	Keywords            []string
	FrameworkKeywords   []string
	URLPrefixes         []string
	LicenseFamilies     []LicenseFamily
	LanguageURLs        []NamedURL
	DependencyAliases   []DependencyAliases
	NoEntryDependencies []NamedURL
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	out := Tables{
		Schemas:             make(map[Kind]Schema, len(t.Schemas)),
		Licenses:            slices.Clone(t.Licenses),
		Languages:           slices.Clone(t.Languages),
		Platforms:           slices.Clone(t.Platforms),
		MultiplayerModes:    slices.Clone(t.MultiplayerModes),
		Keywords:            slices.Clone(t.Keywords),
		FrameworkKeywords:   slices.Clone(t.FrameworkKeywords),
		URLPrefixes:         slices.Clone(t.URLPrefixes),
		LicenseFamilies:     slices.Clone(t.LicenseFamilies),
		LanguageURLs:        slices.Clone(t.LanguageURLs),
		NoEntryDependencies: slices.Clone(t.NoEntryDependencies),
	}
	for k, s := range t.Schemas {
		out.Schemas[k] = Schema{
			Valid:     slices.Clone(s.Valid),
			Essential: slices.Clone(s.Essential),
			URL:       slices.Clone(s.URL),
		}
	}
	for _, d := range t.DependencyAliases {
		out.DependencyAliases = append(out.DependencyAliases, DependencyAliases{
			Canonical: d.Canonical,
			Aliases:   slices.Clone(d.Aliases),
		})
	}
	return out
}
