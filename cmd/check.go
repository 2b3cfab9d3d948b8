package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/osgdb/internal/catalog"
	"github.com/zjrosen/osgdb/internal/check"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/presentation"
)

// ErrCheckFailed is returned when the check finds errors.
var ErrCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check [data.json]",
	Short: "Check the JSON database against the controlled vocabularies",
	Long: `Check every entry, developer and inspiration of the JSON database against
the controlled vocabularies. Defaults to docs/data.json of the catalog.

Errors (unknown fields, missing essential fields, invalid URLs, unknown
licenses, missing principal keyword, entries for no-entry dependencies) make
the command exit non-zero. Warnings (field and platform order, unknown
languages and platforms, multiplayer modes, dependencies without entry) are
advisory.

Feature flags:
  order-diff          attach a field diff to ordering warnings
  dependency-check    run the code dependency checks (default: on)

Examples:
  osgdb check
  osgdb check docs/data.json -o json | jq '.findings[] | select(.severity == "error")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	reg, err := loadVocabulary()
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		layout, err := resolveLayout()
		if err != nil {
			return err
		}
		path = layout.JSONDatabase
	}

	db, err := catalog.LoadDatabase(path)
	if err != nil {
		return err
	}

	ctx := domain.URLExtended
	if cfg.Check.URLContextEntry != "" {
		ctx, err = domain.ParseURLContext(cfg.Check.URLContextEntry)
		if err != nil {
			return fmt.Errorf("check.url_context_entry: %w", err)
		}
	}

	checker := check.New(reg, check.Options{EntryURLContext: ctx, Flags: featureFlags()})
	report := checker.CheckDatabase(db)

	dto := presentation.FromReport(report)
	if limit := cfg.Check.MaxFindings; limit > 0 && len(dto.Findings) > limit {
		dto.Findings = dto.Findings[:limit]
	}
	if err := newFormatter(cmd).FormatReport(dto); err != nil {
		return err
	}

	if report.HasErrors() {
		return fmt.Errorf("%w: %d errors", ErrCheckFailed, report.Count(check.SeverityError))
	}
	return nil
}
