package presentation

import (
	"github.com/zjrosen/osgdb/internal/check"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/paths"
)

// VocabularyDTO is one ordered vocabulary for presentation.
type VocabularyDTO struct {
	Name   string     `json:"name"`
	Values []ValueDTO `json:"values"`
}

// ValueDTO is one vocabulary value with its canonical rank and optional extras.
type ValueDTO struct {
	Rank    int      `json:"rank"`
	Value   string   `json:"value"`
	URL     string   `json:"url,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
}

// LicenseDTO is the result of resolving one license name.
type LicenseDTO struct {
	License string `json:"license"`
	Known   bool   `json:"known"`
	URL     string `json:"url,omitempty"`
}

// DependencyDTO is the result of resolving one dependency token.
type DependencyDTO struct {
	Token     string `json:"token"`
	Canonical string `json:"canonical"`
	Alias     bool   `json:"alias"`
	NoEntry   bool   `json:"no_entry"`
	URL       string `json:"url,omitempty"`
}

// PathDTO is one named path of the catalog layout.
type PathDTO struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ReportDTO summarizes a check report.
type ReportDTO struct {
	Records  int             `json:"records"`
	Errors   int             `json:"errors"`
	Warnings int             `json:"warnings"`
	Findings []check.Finding `json:"findings"`
}

// FromTable converts an ordered table to a DTO.
func FromTable(name string, t *domain.Table) VocabularyDTO {
	values := t.Values()
	dto := VocabularyDTO{Name: name, Values: make([]ValueDTO, len(values))}
	for i, v := range values {
		dto.Values[i] = ValueDTO{Rank: i, Value: v}
	}
	return dto
}

// FromNamedURLs converts name/URL pairs to a DTO, keeping their order.
func FromNamedURLs(name string, urls []domain.NamedURL) VocabularyDTO {
	dto := VocabularyDTO{Name: name, Values: make([]ValueDTO, len(urls))}
	for i, u := range urls {
		dto.Values[i] = ValueDTO{Rank: i, Value: u.Name, URL: u.URL}
	}
	return dto
}

// FromDependencyAliases converts the alias records to a DTO.
func FromDependencyAliases(deps []domain.DependencyAliases) VocabularyDTO {
	dto := VocabularyDTO{Name: "dependencies", Values: make([]ValueDTO, len(deps))}
	for i, d := range deps {
		dto.Values[i] = ValueDTO{Rank: i, Value: d.Canonical, Aliases: d.Aliases}
	}
	return dto
}

// FromLayout lists the catalog paths in a fixed order.
func FromLayout(l paths.Layout) []PathDTO {
	return []PathDTO{
		{"root", l.Root},
		{"entries", l.Entries},
		{"tocs", l.TOCs},
		{"code", l.Code},
		{"web", l.Web},
		{"web templates", l.WebTemplates},
		{"web css", l.WebCSS},
		{"inspirations", l.Inspirations},
		{"developers", l.Developers},
		{"backlog", l.Backlog},
		{"rejected", l.Rejected},
		{"statistics", l.Statistics},
		{"json database", l.JSONDatabase},
		{"local config", l.LocalConfig},
	}
}

// FromReport converts a check report to a DTO.
func FromReport(r check.Report) ReportDTO {
	findings := r.Findings
	if findings == nil {
		findings = []check.Finding{}
	}
	return ReportDTO{
		Records:  r.Records,
		Errors:   r.Count(check.SeverityError),
		Warnings: r.Count(check.SeverityWarning),
		Findings: findings,
	}
}
