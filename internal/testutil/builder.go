// Package testutil builds catalog databases for tests.
package testutil

import "github.com/zjrosen/osgdb/internal/catalog"

// Builder accumulates records and assembles a catalog.Database.
type Builder struct {
	db catalog.Database
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithEntry adds an entry that is valid by default, adjusted by opts.
func (b *Builder) WithEntry(title string, opts ...RecordOption) *Builder {
	b.db.Entries = append(b.db.Entries, apply(defaultEntry(title), opts))
	return b
}

// WithDeveloper adds a developer record.
func (b *Builder) WithDeveloper(name string, opts ...RecordOption) *Builder {
	b.db.Developers = append(b.db.Developers, apply(defaultDeveloper(name), opts))
	return b
}

// WithInspiration adds an inspiration record.
func (b *Builder) WithInspiration(name string, opts ...RecordOption) *Builder {
	b.db.Inspirations = append(b.db.Inspirations, apply(defaultInspiration(name), opts))
	return b
}

// Build returns the assembled database.
func (b *Builder) Build() catalog.Database {
	return b.db
}

// Entry returns a single entry record, for tests that check one record.
func Entry(title string, opts ...RecordOption) catalog.Record {
	return apply(defaultEntry(title), opts)
}

func apply(d recordData, opts []RecordOption) catalog.Record {
	for _, opt := range opts {
		opt(&d)
	}
	return d.record
}
