// Package check validates catalog records against the controlled
// vocabularies. Errors make a check fail; warnings are advisory.
package check

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zjrosen/osgdb/internal/catalog"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/flags"
	"github.com/zjrosen/osgdb/internal/log"
)

// multiplayerKeyword prefixes keywords that name multiplayer modes,
// e.g. "multiplayer online + LAN".
const multiplayerKeyword = "multiplayer "

// Options configures a Checker.
type Options struct {
	// EntryURLContext is the URL prefix list applied to entries.
	// Developers and inspirations always use the strict list.
	EntryURLContext domain.URLContext
	Flags           *flags.Registry
}

// DefaultOptions returns the extended URL context and default flags.
func DefaultOptions() Options {
	return Options{EntryURLContext: domain.URLExtended, Flags: flags.New(nil)}
}

// Checker runs the maintenance checks.
type Checker struct {
	reg  domain.Provider
	opts Options
}

// New creates a Checker over reg.
func New(reg domain.Provider, opts Options) *Checker {
	if opts.Flags == nil {
		opts.Flags = flags.New(nil)
	}
	return &Checker{reg: reg, opts: opts}
}

// CheckDatabase checks every record and the cross-record dependency rules.
func (c *Checker) CheckDatabase(db catalog.Database) Report {
	report := Report{Records: db.Len()}

	for i, r := range db.Entries {
		report.Findings = append(report.Findings, c.checkRecord(domain.KindEntry, label(r, i), r)...)
	}
	for i, r := range db.Developers {
		report.Findings = append(report.Findings, c.checkRecord(domain.KindDeveloper, label(r, i), r)...)
	}
	for i, r := range db.Inspirations {
		report.Findings = append(report.Findings, c.checkRecord(domain.KindInspiration, label(r, i), r)...)
	}

	if c.opts.Flags.Enabled(flags.FlagDependencyCheck) {
		report.Findings = append(report.Findings, c.checkDependencies(db)...)
	}

	log.Info(log.CatCheck, "check finished", "records", report.Records,
		"errors", report.Count(SeverityError), "warnings", report.Count(SeverityWarning))
	return report
}

// CheckRecord checks a single record of kind.
func (c *Checker) CheckRecord(kind domain.Kind, r catalog.Record) []Finding {
	return c.checkRecord(kind, r.Label(), r)
}

func label(r catalog.Record, index int) string {
	if l := r.Label(); l != "" {
		return l
	}
	return fmt.Sprintf("#%d", index+1)
}

// findings collects the findings of one record.
type findings struct {
	kind   domain.Kind
	record string
	list   []Finding
}

func (f *findings) add(s Severity, field, format string, args ...any) {
	f.list = append(f.list, Finding{
		Severity: s,
		Kind:     f.kind,
		Record:   f.record,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *Checker) checkRecord(kind domain.Kind, name string, r catalog.Record) []Finding {
	f := &findings{kind: kind, record: name}

	c.checkFields(f, kind, r.Fields)
	c.checkURLs(f, kind, r)

	if kind == domain.KindEntry {
		c.checkLicenses(f, r)
		c.checkLanguages(f, r)
		c.checkPlatforms(f, r)
		c.checkKeywords(f, r)
		if r.Building != nil {
			bf := &findings{kind: domain.KindBuilding, record: name}
			c.checkFields(bf, domain.KindBuilding, r.Building)
			f.list = append(f.list, bf.list...)
		}
	}
	return f.list
}

// checkFields applies the schema rules: unknown, duplicate, empty and missing
// essential fields, then canonical order.
func (c *Checker) checkFields(f *findings, kind domain.Kind, fields []catalog.Field) {
	seen := make(map[string]bool, len(fields))
	var known []string
	for _, field := range fields {
		if !c.reg.IsValidField(kind, field.Name) {
			f.add(SeverityError, field.Name, "unknown field")
			continue
		}
		if len(field.Values) == 0 {
			f.add(SeverityWarning, field.Name, "field has no value")
		}
		if seen[field.Name] {
			f.add(SeverityError, field.Name, "duplicate field")
			continue
		}
		seen[field.Name] = true
		known = append(known, field.Name)
	}

	if missing := c.reg.MissingEssentialFields(kind, known); len(missing) > 0 {
		f.add(SeverityError, "", "missing essential fields: %s", strings.Join(missing, ", "))
	}

	canonical := c.reg.SortFields(kind, known)
	if !slices.Equal(known, canonical) {
		f.add(SeverityWarning, "", "fields not in canonical order")
		if c.opts.Flags.Enabled(flags.FlagOrderDiff) {
			f.list[len(f.list)-1].Detail = FieldOrderDiff(known, canonical)
		}
	}
}

func (c *Checker) checkURLs(f *findings, kind domain.Kind, r catalog.Record) {
	ctx := domain.URLStrict
	if kind == domain.KindEntry {
		ctx = c.opts.EntryURLContext
	}
	for _, field := range r.Fields {
		if !c.reg.IsURLField(kind, field.Name) {
			continue
		}
		for _, v := range field.Values {
			if !c.reg.IsValidURL(kind, field.Name, v, ctx) {
				f.add(SeverityError, field.Name, "invalid URL %q (%s prefixes)", v, ctx)
			}
		}
	}
}

func (c *Checker) checkLicenses(f *findings, r catalog.Record) {
	for _, field := range []string{"Code license", "Assets license"} {
		for _, v := range r.Values(field) {
			if _, _, err := c.reg.ResolveLicenseURL(v); err != nil {
				var unknown *domain.UnknownLicenseError
				if errors.As(err, &unknown) {
					f.add(SeverityError, field, "unknown license %q", unknown.License)
					continue
				}
				f.add(SeverityError, field, "%v", err)
			}
		}
	}
}

func (c *Checker) checkLanguages(f *findings, r catalog.Record) {
	for _, v := range r.Values("Code language") {
		if !c.reg.IsKnownLanguage(v) {
			f.add(SeverityWarning, "Code language", "unknown language %q", v)
		}
	}
}

func (c *Checker) checkPlatforms(f *findings, r catalog.Record) {
	platforms := r.Values("Platform")
	allKnown := true
	for _, v := range platforms {
		if !c.reg.IsKnownPlatform(v) {
			f.add(SeverityWarning, "Platform", "unknown platform %q", v)
			allKnown = false
		}
	}
	if !allKnown || len(platforms) < 2 {
		return
	}
	sorted, err := c.reg.SortCanonical(domain.VocabPlatforms, platforms)
	if err != nil {
		log.ErrorErr(log.CatCheck, "sorting platforms", err)
		return
	}
	if !slices.Equal(platforms, sorted) {
		f.add(SeverityWarning, "Platform", "platforms not in canonical order, expected: %s", strings.Join(sorted, ", "))
	}
}

func (c *Checker) checkKeywords(f *findings, r catalog.Record) {
	keywords := r.Values("Keyword")
	if !slices.ContainsFunc(keywords, c.reg.IsRecommendedKeyword) {
		f.add(SeverityError, "Keyword", "no recommended keyword")
	}
	for _, k := range keywords {
		mode, ok := strings.CutPrefix(k, multiplayerKeyword)
		if ok && !c.reg.IsValidMultiplayerMode(mode) {
			f.add(SeverityWarning, "Keyword", "invalid multiplayer mode %q", mode)
		}
	}
}
