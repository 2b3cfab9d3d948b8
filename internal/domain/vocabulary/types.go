package vocabulary

import "errors"

// Kind identifies a record type with its own field schema.
type Kind string

const (
	// KindEntry is a catalog entry (one game, engine, or tool).
	KindEntry Kind = "entry"
	// KindBuilding is the building-information block nested in an entry.
	KindBuilding Kind = "building"
	// KindDeveloper is a record in the developers list.
	KindDeveloper Kind = "developer"
	// KindInspiration is a record in the inspirations list.
	KindInspiration Kind = "inspiration"
)

// Kinds returns all record kinds in schema order.
func Kinds() []Kind {
	return []Kind{KindEntry, KindBuilding, KindDeveloper, KindInspiration}
}

// IsValid returns true if the kind is known.
func (k Kind) IsValid() bool {
	switch k {
	case KindEntry, KindBuilding, KindDeveloper, KindInspiration:
		return true
	default:
		return false
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

// Vocabulary identifies one of the controlled vocabularies.
type Vocabulary string

const (
	VocabLicenses          Vocabulary = "licenses"
	VocabLanguages         Vocabulary = "languages"
	VocabPlatforms         Vocabulary = "platforms"
	VocabMultiplayerModes  Vocabulary = "multiplayer"
	VocabKeywords          Vocabulary = "keywords"
	VocabFrameworkKeywords Vocabulary = "framework-keywords"
)

// Vocabularies returns all controlled vocabularies.
func Vocabularies() []Vocabulary {
	return []Vocabulary{
		VocabLicenses,
		VocabLanguages,
		VocabPlatforms,
		VocabMultiplayerModes,
		VocabKeywords,
		VocabFrameworkKeywords,
	}
}

// URLContext selects which prefixes a URL-typed field accepts.
type URLContext int

const (
	// URLStrict accepts real URL schemes only.
	URLStrict URLContext = iota
	// URLExtended also accepts the sentinel markers.
	URLExtended
)

// String returns a human-readable representation of the URLContext.
func (c URLContext) String() string {
	switch c {
	case URLStrict:
		return "strict"
	case URLExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// ParseURLContext converts "strict" or "extended" into a URLContext.
func ParseURLContext(s string) (URLContext, error) {
	switch s {
	case "strict":
		return URLStrict, nil
	case "extended":
		return URLExtended, nil
	default:
		return URLStrict, ErrUnknownURLContext
	}
}

// Sentinel markers accepted in URL fields under URLExtended.
const (
	SentinelSee     = "@see-" // see another entry
	SentinelNot     = "@not-" // intentionally not provided
	SentinelUnknown = "?"     // unknown
)

// Sentinels returns the sentinel markers.
func Sentinels() []string {
	return []string{SentinelSee, SentinelNot, SentinelUnknown}
}

// GenericComment is the header line written at the top of generated entry files.
const GenericComment = "[comment]: # (partly autogenerated content, edit with care, read the manual before)"

// MultiplayerSeparator joins combined multiplayer modes, e.g. "online + co-op".
const MultiplayerSeparator = "+"

// Lookup errors
var (
	ErrUnknownKind       = errors.New("unknown record kind")
	ErrUnknownVocabulary = errors.New("unknown vocabulary")
	ErrUnknownURLContext = errors.New("url context must be \"strict\" or \"extended\"")
)
