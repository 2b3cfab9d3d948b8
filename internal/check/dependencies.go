package check

import (
	"github.com/zjrosen/osgdb/internal/catalog"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
)

const codeDependencyField = "Code dependency"

// checkDependencies resolves code dependency aliases and checks them against
// the catalog: every dependency needs an entry unless it is a no-entry
// dependency, and no entry may duplicate a no-entry dependency.
func (c *Checker) checkDependencies(db catalog.Database) []Finding {
	titles := db.EntryTitles()
	var out []Finding

	for i, e := range db.Entries {
		f := &findings{kind: domain.KindEntry, record: label(e, i)}

		title := e.First("Title")
		if c.reg.IsNoEntryDependency(title) {
			f.add(SeverityError, "Title", "%q is a dependency without entry and must not have an entry", title)
		}

		for _, token := range e.Values(codeDependencyField) {
			name := resolveDependency(c.reg, token)
			if titles[name] || c.reg.IsNoEntryDependency(name) {
				continue
			}
			if name != token {
				f.add(SeverityWarning, codeDependencyField, "dependency %q (%s) has no entry", token, name)
				continue
			}
			f.add(SeverityWarning, codeDependencyField, "dependency %q has no entry", token)
		}
		out = append(out, f.list...)
	}
	return out
}

// ResolveDependencies returns the canonical names of the code dependencies of
// an entry, in order, without duplicates.
func ResolveDependencies(reg domain.Provider, e catalog.Record) []string {
	var out []string
	seen := make(map[string]bool)
	for _, token := range e.Values(codeDependencyField) {
		name := resolveDependency(reg, token)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func resolveDependency(reg domain.Provider, token string) string {
	if canonical, ok := reg.ResolveDependencyAlias(token); ok {
		return canonical
	}
	return token
}
