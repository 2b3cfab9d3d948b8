package vocabulary

// Provider defines read-only access to the controlled vocabularies.
type Provider interface {
	// IsValidField reports whether name is a valid field of kind.
	IsValidField(kind Kind, name string) bool

	// EssentialFieldsSatisfied reports whether present contains every essential field of kind.
	EssentialFieldsSatisfied(kind Kind, present []string) bool

	// MissingEssentialFields returns the essential fields of kind absent from present.
	MissingEssentialFields(kind Kind, present []string) []string

	// FieldRank returns the canonical position of a field within kind.
	FieldRank(kind Kind, name string) (int, bool)

	// SortFields returns names in the canonical field order of kind.
	SortFields(kind Kind, names []string) []string

	// CanonicalRank returns the canonical position of name within v.
	CanonicalRank(v Vocabulary, name string) (int, bool)

	// SortCanonical returns names in the canonical order of v.
	SortCanonical(v Vocabulary, names []string) ([]string, error)

	IsKnownLicense(name string) bool
	IsKnownLanguage(name string) bool
	IsKnownPlatform(name string) bool
	IsRecommendedKeyword(keyword string) bool
	IsFrameworkKeyword(keyword string) bool
	IsValidMultiplayerMode(value string) bool

	// ResolveLicenseURL returns the reference URL of a known license.
	// Returns an error matching ErrUnknownLicense for any other name.
	ResolveLicenseURL(license string) (string, bool, error)

	// IsURLField reports whether name is a URL-typed field of kind.
	IsURLField(kind Kind, name string) bool

	// IsValidURL reports whether value is acceptable for the URL field under ctx.
	IsValidURL(kind Kind, field, value string, ctx URLContext) bool

	// ResolveDependencyAlias returns the canonical name an alias stands for.
	ResolveDependencyAlias(token string) (string, bool)

	IsNoEntryDependency(name string) bool
	NoEntryDependencyURL(name string) (string, bool)
	LanguageURL(name string) (string, bool)
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)
