// Package catalog holds the structured records of the catalog as exported to
// the JSON database (docs/data.json).
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// ErrMalformedDatabase is returned when the JSON database cannot be decoded.
var ErrMalformedDatabase = errors.New("malformed JSON database")

// Field is one named field of a record. Repeated values (e.g. several
// keywords) are kept in file order.
type Field struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Record is one entry, developer or inspiration. Fields are in file order.
// Building holds the build block of an entry, if any.
type Record struct {
	Fields   []Field `json:"fields"`
	Building []Field `json:"building,omitempty"`
}

// FieldNames returns the field names in file order.
func (r Record) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Has reports whether the record contains a field called name.
func (r Record) Has(name string) bool {
	return slices.ContainsFunc(r.Fields, func(f Field) bool { return f.Name == name })
}

// Values returns the values of every field called name, in file order.
func (r Record) Values(name string) []string {
	var out []string
	for _, f := range r.Fields {
		if f.Name == name {
			out = append(out, f.Values...)
		}
	}
	return out
}

// First returns the first value of name, or "".
func (r Record) First(name string) string {
	if vs := r.Values(name); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Label names the record for reports: its Title, else its Name, else its File.
func (r Record) Label() string {
	for _, key := range []string{"Title", "Name", "File"} {
		if v := r.First(key); v != "" {
			return v
		}
	}
	return ""
}

// Database is the decoded JSON database.
type Database struct {
	Entries      []Record `json:"entries"`
	Developers   []Record `json:"developers"`
	Inspirations []Record `json:"inspirations"`
}

// EntryTitles returns the set of entry titles.
func (db Database) EntryTitles() map[string]bool {
	titles := make(map[string]bool, len(db.Entries))
	for _, e := range db.Entries {
		if t := e.First("Title"); t != "" {
			titles[t] = true
		}
	}
	return titles
}

// Len returns the total number of records.
func (db Database) Len() int {
	return len(db.Entries) + len(db.Developers) + len(db.Inspirations)
}

// ReadDatabase decodes a JSON database from r.
func ReadDatabase(r io.Reader) (Database, error) {
	var db Database
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&db); err != nil {
		return Database{}, fmt.Errorf("%w: %w", ErrMalformedDatabase, err)
	}
	return db, nil
}

// LoadDatabase reads the JSON database at path.
func LoadDatabase(path string) (Database, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the catalog layout or the user
	if err != nil {
		return Database{}, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = f.Close() }()

	db, err := ReadDatabase(f)
	if err != nil {
		return Database{}, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}
