package vocabulary

// Builder provides a fluent API for assembling Tables and building a Registry.
type Builder struct {
	tables Tables
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		tables: Tables{Schemas: make(map[Kind]Schema)},
	}
}

// FromTables creates a builder pre-filled with a copy of t.
func FromTables(t Tables) *Builder {
	t = t.Clone()
	if t.Schemas == nil {
		t.Schemas = make(map[Kind]Schema)
	}
	return &Builder{tables: t}
}

// Schema sets the field schema of kind.
func (b *Builder) Schema(kind Kind, s Schema) *Builder {
	b.tables.Schemas[kind] = s
	return b
}

// Licenses sets the license vocabulary.
func (b *Builder) Licenses(v ...string) *Builder {
	b.tables.Licenses = v
	return b
}

// Languages sets the programming language vocabulary.
func (b *Builder) Languages(v ...string) *Builder {
	b.tables.Languages = v
	return b
}

// Platforms sets the platforms in canonical order.
func (b *Builder) Platforms(v ...string) *Builder {
	b.tables.Platforms = v
	return b
}

// MultiplayerModes sets the multiplayer modes.
func (b *Builder) MultiplayerModes(v ...string) *Builder {
	b.tables.MultiplayerModes = v
	return b
}

// Keywords sets the recommended keywords in canonical order.
func (b *Builder) Keywords(v ...string) *Builder {
	b.tables.Keywords = v
	return b
}

// FrameworkKeywords sets the keywords that mark frameworks, libraries, and tools.
func (b *Builder) FrameworkKeywords(v ...string) *Builder {
	b.tables.FrameworkKeywords = v
	return b
}

// URLPrefixes sets the strict URL prefixes. Sentinels are added for the extended context.
func (b *Builder) URLPrefixes(v ...string) *Builder {
	b.tables.URLPrefixes = v
	return b
}

// LicenseFamily appends a license family. Families match in the order added.
func (b *Builder) LicenseFamily(prefix, url string) *Builder {
	b.tables.LicenseFamilies = append(b.tables.LicenseFamilies, LicenseFamily{Prefix: prefix, URL: url})
	return b
}

// LanguageURL appends a reference URL for a language.
func (b *Builder) LanguageURL(name, url string) *Builder {
	b.tables.LanguageURLs = append(b.tables.LanguageURLs, NamedURL{Name: name, URL: url})
	return b
}

// DependencyAliases appends the aliases of a canonical dependency name.
func (b *Builder) DependencyAliases(canonical string, aliases ...string) *Builder {
	b.tables.DependencyAliases = append(b.tables.DependencyAliases, DependencyAliases{Canonical: canonical, Aliases: aliases})
	return b
}

// NoEntryDependency appends a general dependency that has no catalog entry.
func (b *Builder) NoEntryDependency(name, url string) *Builder {
	b.tables.NoEntryDependencies = append(b.tables.NoEntryDependencies, NamedURL{Name: name, URL: url})
	return b
}

// Tables returns a copy of the accumulated tables.
func (b *Builder) Tables() Tables {
	return b.tables.Clone()
}

// Build validates the tables and creates the registry.
func (b *Builder) Build() (*Registry, error) {
	return New(b.tables)
}
