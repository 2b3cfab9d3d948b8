package testutil

import (
	"slices"

	"github.com/zjrosen/osgdb/internal/catalog"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
)

// RecordOption configures a record during builder setup.
type RecordOption func(*recordData)

// recordData holds a record being built and the field order used to place
// new fields.
type recordData struct {
	order  []string
	record catalog.Record
}

// Field sets the values of name. An existing field is replaced in place;
// a new field is inserted at its canonical position.
func Field(name string, values ...string) RecordOption {
	return func(d *recordData) {
		f := catalog.Field{Name: name, Values: values}
		if i := slices.IndexFunc(d.record.Fields, func(f catalog.Field) bool { return f.Name == name }); i >= 0 {
			d.record.Fields[i] = f
			return
		}
		d.record.Fields = slices.Insert(d.record.Fields, d.insertAt(name), f)
	}
}

// Appended adds a field at the end, regardless of canonical order.
func Appended(name string, values ...string) RecordOption {
	return func(d *recordData) {
		d.record.Fields = append(d.record.Fields, catalog.Field{Name: name, Values: values})
	}
}

// Without removes every field called name.
func Without(name string) RecordOption {
	return func(d *recordData) {
		d.record.Fields = slices.DeleteFunc(d.record.Fields, func(f catalog.Field) bool { return f.Name == name })
	}
}

// Building sets the build block of an entry.
func Building(fields ...catalog.Field) RecordOption {
	return func(d *recordData) {
		d.record.Building = fields
	}
}

// F creates a catalog.Field.
func F(name string, values ...string) catalog.Field {
	return catalog.Field{Name: name, Values: values}
}

// insertAt returns the index before the first existing field that sorts
// after name. Unknown names go last.
func (d *recordData) insertAt(name string) int {
	rank := slices.Index(d.order, name)
	if rank < 0 {
		return len(d.record.Fields)
	}
	for i, f := range d.record.Fields {
		if r := slices.Index(d.order, f.Name); r < 0 || r > rank {
			return i
		}
	}
	return len(d.record.Fields)
}

func fieldOrder(kind domain.Kind) []string {
	return domain.DefaultTables().Schemas[kind].Valid
}
