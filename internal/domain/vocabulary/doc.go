// Package vocabulary implements the domain layer for the catalog's controlled vocabularies.
//
// This package contains only pure Go code with standard library imports. It has no
// knowledge of configuration files, YAML, logging, or the CLI.
//
// # Core Types
//
// Table is an ordered set of unique strings. The position of a value is its canonical
// rank, which is a presentation contract: platforms, keywords, and field names are always
// rendered in table order regardless of input order.
//
// Tables is the raw input of a Registry: field schemas per Kind, the vocabularies,
// URL prefixes, license families, language URLs, dependency aliases, and dependencies
// without a catalog entry. Use Builder for fluent construction or DefaultTables for the
// built-in catalog vocabulary.
//
// Registry is the checked, immutable form. New validates uniqueness, that essential
// fields are valid fields in the same relative order, that URL fields are valid fields,
// that no sentinel is a URL prefix, and that no-entry dependencies are disjoint from
// canonical dependency names. Alias collisions are tolerated: the first registration
// wins and the collision is reported by AliasConflicts.
//
// # License Resolution
//
// License families are an ordered list of (prefix, URL) pairs. ResolveLicenseURL scans
// them in order and the first prefix that starts the license name wins, so "GPL-2.0" and
// "GPL-3.0" share the "GPL" URL. A license outside the vocabulary is a hard error
// (ErrUnknownLicense); a known license without a family simply has no URL.
//
// # URL Contexts
//
// URL-typed fields are validated under URLStrict (real schemes only) or URLExtended,
// which also accepts the sentinel markers "@see-", "@not-" and "?". The caller chooses
// the context; the registry never infers it.
//
// Provider is the read-only interface that Registry implements, enabling dependency
// injection and substitution in tests.
package vocabulary
