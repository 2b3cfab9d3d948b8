// Package presentation renders vocabularies, paths and check reports as JSON,
// styled tables or rendered markdown.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zjrosen/osgdb/internal/check"
	"github.com/zjrosen/osgdb/internal/config"
	"github.com/zjrosen/osgdb/internal/ui/markdown"
	"github.com/zjrosen/osgdb/internal/ui/styles"
)

// Options selects the output format and markdown rendering.
type Options struct {
	Format        string // config.OutputTable (default), config.OutputJSON or config.OutputMarkdown
	MarkdownStyle string
	Width         int
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	opts   Options
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, opts Options) *Formatter {
	if opts.Format == "" {
		opts.Format = config.OutputTable
	}
	return &Formatter{writer: writer, opts: opts}
}

// grid is the format-neutral shape of every table output.
type grid struct {
	title   string
	headers []string
	rows    [][]string
	notes   []string // extra blocks printed after the table
	footer  string
	passed  bool // footer reports success
	style   func(row, col int) lipgloss.Style
}

// FormatVocabulary formats one vocabulary.
func (f *Formatter) FormatVocabulary(v VocabularyDTO) error {
	if f.opts.Format == config.OutputJSON {
		return f.encodeJSON(v)
	}

	withURL, withAliases := false, false
	for _, val := range v.Values {
		withURL = withURL || val.URL != ""
		withAliases = withAliases || len(val.Aliases) > 0
	}

	g := grid{title: v.Name, headers: []string{"#", "Value"}}
	if withURL {
		g.headers = append(g.headers, "URL")
	}
	if withAliases {
		g.headers = append(g.headers, "Aliases")
	}
	for _, val := range v.Values {
		row := []string{strconv.Itoa(val.Rank), val.Value}
		if withURL {
			row = append(row, val.URL)
		}
		if withAliases {
			row = append(row, strings.Join(val.Aliases, ", "))
		}
		g.rows = append(g.rows, row)
	}
	g.footer = fmt.Sprintf("%d values", len(v.Values))
	return f.render(g)
}

// FormatLicenses formats license resolutions.
func (f *Formatter) FormatLicenses(licenses []LicenseDTO) error {
	if f.opts.Format == config.OutputJSON {
		return f.encodeJSON(licenses)
	}
	g := grid{title: "licenses", headers: []string{"License", "Known", "URL"}}
	for _, l := range licenses {
		g.rows = append(g.rows, []string{l.License, yesNo(l.Known), l.URL})
	}
	return f.render(g)
}

// FormatDependencies formats dependency alias resolutions.
func (f *Formatter) FormatDependencies(deps []DependencyDTO) error {
	if f.opts.Format == config.OutputJSON {
		return f.encodeJSON(deps)
	}
	g := grid{title: "dependencies", headers: []string{"Token", "Canonical", "Alias", "No entry", "URL"}}
	for _, d := range deps {
		g.rows = append(g.rows, []string{d.Token, d.Canonical, yesNo(d.Alias), yesNo(d.NoEntry), d.URL})
	}
	return f.render(g)
}

// FormatLayout formats the catalog paths.
func (f *Formatter) FormatLayout(paths []PathDTO) error {
	if f.opts.Format == config.OutputJSON {
		return f.encodeJSON(paths)
	}
	g := grid{title: "paths", headers: []string{"Name", "Path"}}
	for _, p := range paths {
		g.rows = append(g.rows, []string{p.Name, p.Path})
	}
	return f.render(g)
}

// FormatSetting formats one key/value pair.
func (f *Formatter) FormatSetting(key, value string) error {
	if f.opts.Format == config.OutputJSON {
		return f.encodeJSON(map[string]string{key: value})
	}
	return f.render(grid{title: "settings", headers: []string{"Key", "Value"}, rows: [][]string{{key, value}}})
}

// FormatReport formats a check report. Findings with detail get an extra
// block after the table.
func (f *Formatter) FormatReport(r ReportDTO) error {
	if f.opts.Format == config.OutputJSON {
		return f.encodeJSON(r)
	}

	g := grid{title: "check", headers: []string{"Severity", "Kind", "Record", "Field", "Message"}}
	for _, fd := range r.Findings {
		g.rows = append(g.rows, []string{fd.Severity.String(), fd.Kind.String(), fd.Record, fd.Field, fd.Message})
		if fd.Detail != "" {
			g.notes = append(g.notes, fmt.Sprintf("%s %q:\n%s", fd.Kind, fd.Record, fd.Detail))
		}
	}
	g.style = func(row, col int) lipgloss.Style {
		if col != 0 || row < 0 || row >= len(r.Findings) {
			return styles.CellStyle
		}
		if r.Findings[row].Severity == check.SeverityError {
			return styles.ErrorCellStyle
		}
		return styles.WarningCellStyle
	}
	g.footer = fmt.Sprintf("%d records checked, %d errors, %d warnings", r.Records, r.Errors, r.Warnings)
	g.passed = r.Errors == 0
	if len(r.Findings) == 0 {
		g.footer = fmt.Sprintf("%d records checked, no problems found", r.Records)
	}
	return f.render(g)
}

func (f *Formatter) render(g grid) error {
	var out string
	switch f.opts.Format {
	case config.OutputTable:
		out = renderTable(g)
	case config.OutputMarkdown:
		r, err := markdown.New(f.opts.MarkdownStyle, f.opts.Width)
		if err != nil {
			return err
		}
		out, err = r.Render(toMarkdown(g))
		if err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", f.opts.Format)
	}
	_, err := io.WriteString(f.writer, out)
	return err
}

func renderTable(g grid) string {
	style := g.style
	if style == nil {
		style = func(int, int) lipgloss.Style { return styles.CellStyle }
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.BorderStyle).
		Headers(g.headers...).
		Rows(g.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle
			}
			return style(row, col)
		})

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(g.title))
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")
	for _, n := range g.notes {
		sb.WriteString("\n")
		sb.WriteString(n)
		sb.WriteString("\n")
	}
	if g.footer != "" {
		footerStyle := styles.MutedStyle
		if g.passed {
			footerStyle = styles.SuccessStyle
		}
		sb.WriteString(footerStyle.Render(g.footer))
		sb.WriteString("\n")
	}
	return sb.String()
}

func toMarkdown(g grid) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", g.title)
	if len(g.rows) > 0 {
		sb.WriteString("| " + strings.Join(escapeCells(g.headers), " | ") + " |\n")
		sb.WriteString("|" + strings.Repeat(" --- |", len(g.headers)) + "\n")
		for _, row := range g.rows {
			sb.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
		}
		sb.WriteString("\n")
	}
	for _, n := range g.notes {
		title, body, _ := strings.Cut(n, "\n")
		fmt.Fprintf(&sb, "%s\n\n```diff\n%s\n```\n\n", title, body)
	}
	if g.footer != "" {
		fmt.Fprintf(&sb, "*%s*\n", g.footer)
	}
	return sb.String()
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (f *Formatter) encodeJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
