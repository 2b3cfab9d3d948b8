package check

import (
	"fmt"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
)

// Severity classifies a finding.
type Severity int

const (
	// SeverityWarning is advisory.
	SeverityWarning Severity = iota
	// SeverityError makes the check fail.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Finding is one problem found in a record.
type Finding struct {
	Severity Severity    `json:"severity"`
	Kind     domain.Kind `json:"kind"`
	Record   string      `json:"record"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	// Detail holds optional multi-line context, such as a field-order diff.
	Detail string `json:"detail,omitempty"`
}

func (f Finding) String() string {
	if f.Field == "" {
		return fmt.Sprintf("%s: %s %q: %s", f.Severity, f.Kind, f.Record, f.Message)
	}
	return fmt.Sprintf("%s: %s %q: %s: %s", f.Severity, f.Kind, f.Record, f.Field, f.Message)
}

// Report is the result of checking a database.
type Report struct {
	Records  int       `json:"records"`
	Findings []Finding `json:"findings"`
}

// HasErrors reports whether any finding is an error.
func (r Report) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// Count returns the number of findings with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Filter returns the findings with severity s.
func (r Report) Filter(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}
