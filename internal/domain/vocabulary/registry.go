package vocabulary

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Construction errors
var (
	ErrEmptyValue        = errors.New("value cannot be empty")
	ErrDuplicateValue    = errors.New("duplicate value")
	ErrMissingSchema     = errors.New("missing field schema for kind")
	ErrEssentialOrder    = errors.New("essential fields must be valid fields in the same relative order")
	ErrUnknownURLField   = errors.New("url field is not a valid field")
	ErrSentinelPrefix    = errors.New("sentinel marker cannot be a url prefix")
	ErrNotSubset         = errors.New("value not in parent vocabulary")
	ErrDependencyOverlap = errors.New("dependency is both a catalog entry and a no-entry dependency")
)

// schema is the checked form of Schema.
type schema struct {
	valid     *Table
	essential *Table
	url       *Table
}

// AliasConflict records an alias claimed by more than one canonical name.
// The first registration wins.
type AliasConflict struct {
	Alias    string
	Kept     string
	Rejected string
}

// Registry holds the controlled vocabularies. It is immutable after New and
// safe for concurrent use.
type Registry struct {
	tables       Tables // copy of the input, for export
	schemas      map[Kind]schema
	vocabs       map[Vocabulary]*Table
	strict       *Table
	extended     *Table
	families     []LicenseFamily
	languageURLs map[string]string
	aliases      map[string]string // alias -> canonical
	canonical    *Table
	conflicts    []AliasConflict
	noEntry      *Table
	noEntryURLs  map[string]string
}

// New validates t and builds a Registry from it.
func New(t Tables) (*Registry, error) {
	t = t.Clone()
	r := &Registry{
		tables:       t,
		schemas:      make(map[Kind]schema, len(t.Schemas)),
		vocabs:       make(map[Vocabulary]*Table),
		languageURLs: make(map[string]string, len(t.LanguageURLs)),
		aliases:      make(map[string]string),
		noEntryURLs:  make(map[string]string, len(t.NoEntryDependencies)),
	}

	for _, kind := range Kinds() {
		s, ok := t.Schemas[kind]
		if !ok {
			return nil, fmt.Errorf("%s: %w", kind, ErrMissingSchema)
		}
		checked, err := newSchema(kind, s)
		if err != nil {
			return nil, err
		}
		r.schemas[kind] = checked
	}

	sources := map[Vocabulary][]string{
		VocabLicenses:          t.Licenses,
		VocabLanguages:         t.Languages,
		VocabPlatforms:         t.Platforms,
		VocabMultiplayerModes:  t.MultiplayerModes,
		VocabKeywords:          t.Keywords,
		VocabFrameworkKeywords: t.FrameworkKeywords,
	}
	for _, v := range Vocabularies() {
		table, err := NewTable(string(v), sources[v]...)
		if err != nil {
			return nil, err
		}
		r.vocabs[v] = table
	}
	if err := requireSubset(r.vocabs[VocabFrameworkKeywords], r.vocabs[VocabKeywords]); err != nil {
		return nil, err
	}

	if err := r.buildURLPrefixes(t.URLPrefixes); err != nil {
		return nil, err
	}
	if err := r.buildLicenseFamilies(t.LicenseFamilies); err != nil {
		return nil, err
	}
	if err := r.buildLanguageURLs(t.LanguageURLs); err != nil {
		return nil, err
	}
	if err := r.buildDependencies(t.DependencyAliases, t.NoEntryDependencies); err != nil {
		return nil, err
	}

	return r, nil
}

func newSchema(kind Kind, s Schema) (schema, error) {
	valid, err := NewTable(kind.String()+" fields", s.Valid...)
	if err != nil {
		return schema{}, err
	}
	essential, err := NewTable(kind.String()+" essential fields", s.Essential...)
	if err != nil {
		return schema{}, err
	}
	if !essential.IsSubsequenceOf(valid) {
		return schema{}, fmt.Errorf("%s: %w", kind, ErrEssentialOrder)
	}
	url, err := NewTable(kind.String()+" url fields", s.URL...)
	if err != nil {
		return schema{}, err
	}
	for _, f := range url.values {
		if !valid.Contains(f) {
			return schema{}, fmt.Errorf("%s: %q: %w", kind, f, ErrUnknownURLField)
		}
	}
	return schema{valid: valid, essential: essential, url: url}, nil
}

func requireSubset(child, parent *Table) error {
	for _, v := range child.values {
		if !parent.Contains(v) {
			return fmt.Errorf("%s: %q not in %s: %w", child.name, v, parent.name, ErrNotSubset)
		}
	}
	return nil
}

func (r *Registry) buildURLPrefixes(prefixes []string) error {
	for _, p := range prefixes {
		if slices.Contains(Sentinels(), p) {
			return fmt.Errorf("url prefixes: %q: %w", p, ErrSentinelPrefix)
		}
	}
	strict, err := NewTable("url prefixes", prefixes...)
	if err != nil {
		return err
	}
	extended, err := NewTable("extended url prefixes", append(slices.Clone(prefixes), Sentinels()...)...)
	if err != nil {
		return err
	}
	r.strict = strict
	r.extended = extended
	return nil
}

func (r *Registry) buildLicenseFamilies(families []LicenseFamily) error {
	prefixes := make([]string, len(families))
	for i, f := range families {
		if f.URL == "" {
			return fmt.Errorf("license family %q url: %w", f.Prefix, ErrEmptyValue)
		}
		prefixes[i] = f.Prefix
	}
	if _, err := NewTable("license families", prefixes...); err != nil {
		return err
	}
	r.families = slices.Clone(families)
	return nil
}

func (r *Registry) buildLanguageURLs(urls []NamedURL) error {
	names := make([]string, len(urls))
	for i, u := range urls {
		names[i] = u.Name
	}
	table, err := NewTable("language urls", names...)
	if err != nil {
		return err
	}
	if err := requireSubset(table, r.vocabs[VocabLanguages]); err != nil {
		return err
	}
	for _, u := range urls {
		if u.URL == "" {
			return fmt.Errorf("language url %q: %w", u.Name, ErrEmptyValue)
		}
		r.languageURLs[u.Name] = u.URL
	}
	return nil
}

func (r *Registry) buildDependencies(aliases []DependencyAliases, noEntry []NamedURL) error {
	canonicals := make([]string, len(aliases))
	for i, d := range aliases {
		canonicals[i] = d.Canonical
	}
	canonical, err := NewTable("dependency aliases", canonicals...)
	if err != nil {
		return err
	}
	r.canonical = canonical

	for _, d := range aliases {
		for _, alias := range d.Aliases {
			if alias == "" {
				return fmt.Errorf("dependency aliases: %q: %w", d.Canonical, ErrEmptyValue)
			}
			if kept, taken := r.aliases[alias]; taken {
				if kept != d.Canonical {
					r.conflicts = append(r.conflicts, AliasConflict{
						Alias:    alias,
						Kept:     kept,
						Rejected: d.Canonical,
					})
				}
				continue
			}
			r.aliases[alias] = d.Canonical
		}
	}

	names := make([]string, len(noEntry))
	for i, d := range noEntry {
		names[i] = d.Name
	}
	table, err := NewTable("no-entry dependencies", names...)
	if err != nil {
		return err
	}
	for _, d := range noEntry {
		if canonical.Contains(d.Name) {
			return fmt.Errorf("%q: %w", d.Name, ErrDependencyOverlap)
		}
		if d.URL == "" {
			return fmt.Errorf("no-entry dependency %q url: %w", d.Name, ErrEmptyValue)
		}
		r.noEntryURLs[d.Name] = d.URL
	}
	r.noEntry = table
	return nil
}

// Tables returns a copy of the tables the registry was built from.
func (r *Registry) Tables() Tables {
	return r.tables.Clone()
}

// Table returns the controlled vocabulary v.
func (r *Registry) Table(v Vocabulary) (*Table, error) {
	t, ok := r.vocabs[v]
	if !ok {
		return nil, fmt.Errorf("%q: %w", v, ErrUnknownVocabulary)
	}
	return t, nil
}

// Fields returns the valid fields of kind, or nil for an unknown kind.
func (r *Registry) Fields(kind Kind) *Table {
	return r.schemas[kind].valid
}

// EssentialFields returns the essential fields of kind, or nil for an unknown kind.
func (r *Registry) EssentialFields(kind Kind) *Table {
	return r.schemas[kind].essential
}

// URLFields returns the URL-typed fields of kind, or nil for an unknown kind.
func (r *Registry) URLFields(kind Kind) *Table {
	return r.schemas[kind].url
}

// IsValidField reports whether name is a valid field of kind.
func (r *Registry) IsValidField(kind Kind, name string) bool {
	return r.schemas[kind].valid.Contains(name)
}

// IsURLField reports whether name is a URL-typed field of kind.
func (r *Registry) IsURLField(kind Kind, name string) bool {
	return r.schemas[kind].url.Contains(name)
}

// EssentialFieldsSatisfied reports whether every essential field of kind is
// in present. The order of present does not matter.
func (r *Registry) EssentialFieldsSatisfied(kind Kind, present []string) bool {
	if !kind.IsValid() {
		return false
	}
	return len(r.MissingEssentialFields(kind, present)) == 0
}

// MissingEssentialFields returns the essential fields of kind absent from
// present, in canonical order.
func (r *Registry) MissingEssentialFields(kind Kind, present []string) []string {
	var missing []string
	for _, f := range r.schemas[kind].essential.Values() {
		if !slices.Contains(present, f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// FieldRank returns the canonical position of a field within kind.
func (r *Registry) FieldRank(kind Kind, name string) (int, bool) {
	return r.schemas[kind].valid.Rank(name)
}

// SortFields returns names in the canonical field order of kind. Unknown
// fields go last in input order.
func (r *Registry) SortFields(kind Kind, names []string) []string {
	return r.schemas[kind].valid.Sort(names)
}

// CanonicalRank returns the canonical position of name within v.
func (r *Registry) CanonicalRank(v Vocabulary, name string) (int, bool) {
	return r.vocabs[v].Rank(name)
}

// SortCanonical returns names in the canonical order of v.
func (r *Registry) SortCanonical(v Vocabulary, names []string) ([]string, error) {
	t, err := r.Table(v)
	if err != nil {
		return nil, err
	}
	return t.Sort(names), nil
}

// IsKnownLicense reports whether name is in the license vocabulary.
func (r *Registry) IsKnownLicense(name string) bool {
	return r.vocabs[VocabLicenses].Contains(name)
}

// IsKnownLanguage reports whether name is in the language vocabulary.
func (r *Registry) IsKnownLanguage(name string) bool {
	return r.vocabs[VocabLanguages].Contains(name)
}

// IsKnownPlatform reports whether name is in the platform vocabulary.
func (r *Registry) IsKnownPlatform(name string) bool {
	return r.vocabs[VocabPlatforms].Contains(name)
}

// IsRecommendedKeyword reports whether keyword is one of the principal categories.
func (r *Registry) IsRecommendedKeyword(keyword string) bool {
	return r.vocabs[VocabKeywords].Contains(keyword)
}

// IsFrameworkKeyword reports whether keyword marks a framework, library, or tool.
func (r *Registry) IsFrameworkKeyword(keyword string) bool {
	return r.vocabs[VocabFrameworkKeywords].Contains(keyword)
}

// IsValidMultiplayerMode reports whether value is a mode or a "+" combination
// of modes, e.g. "online + co-op".
func (r *Registry) IsValidMultiplayerMode(value string) bool {
	modes := r.vocabs[VocabMultiplayerModes]
	for _, part := range strings.Split(value, MultiplayerSeparator) {
		if !modes.Contains(strings.TrimSpace(part)) {
			return false
		}
	}
	return true
}

// URLPrefixes returns the allowed prefixes for ctx.
func (r *Registry) URLPrefixes(ctx URLContext) *Table {
	if ctx == URLExtended {
		return r.extended
	}
	return r.strict
}

// IsValidURL reports whether field is a URL field of kind and value starts
// with a prefix allowed under ctx. The caller picks ctx.
func (r *Registry) IsValidURL(kind Kind, field, value string, ctx URLContext) bool {
	if !r.schemas[kind].url.Contains(field) {
		return false
	}
	for _, p := range r.URLPrefixes(ctx).values {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}

// LanguageURL returns the reference URL of a language, if one is registered.
func (r *Registry) LanguageURL(name string) (string, bool) {
	u, ok := r.languageURLs[name]
	return u, ok
}

// ResolveDependencyAlias returns the canonical dependency name for an alias.
// Matching is exact and case-sensitive.
func (r *Registry) ResolveDependencyAlias(token string) (string, bool) {
	c, ok := r.aliases[token]
	return c, ok
}

// DependencyAliases returns the alias records in registration order.
func (r *Registry) DependencyAliases() []DependencyAliases {
	return r.tables.Clone().DependencyAliases
}

// AliasConflicts returns aliases that were claimed by more than one canonical name.
func (r *Registry) AliasConflicts() []AliasConflict {
	return slices.Clone(r.conflicts)
}

// IsNoEntryDependency reports whether name is a general dependency without a catalog entry.
func (r *Registry) IsNoEntryDependency(name string) bool {
	return r.noEntry.Contains(name)
}

// NoEntryDependencyURL returns the documentation URL of a no-entry dependency.
func (r *Registry) NoEntryDependencyURL(name string) (string, bool) {
	u, ok := r.noEntryURLs[name]
	return u, ok
}

// NoEntryDependencies returns the no-entry dependencies in registration order.
func (r *Registry) NoEntryDependencies() []NamedURL {
	return slices.Clone(r.tables.NoEntryDependencies)
}
