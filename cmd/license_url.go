package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/presentation"
)

var licenseURLCmd = &cobra.Command{
	Use:   "license:url <license>...",
	Short: "Resolve the reference URL of licenses",
	Long: `Resolve the reference URL of one or more licenses.

Known licenses without a reference URL (e.g. "None", "Custom") print an empty
URL. Any unknown license makes the command exit non-zero.

Examples:
  osgdb license:url GPL-3.0 MIT
  osgdb license:url "NetHack General Public License" -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadVocabulary()
		if err != nil {
			return err
		}

		dtos, unknown := resolveLicenses(reg, args)
		if err := newFormatter(cmd).FormatLicenses(dtos); err != nil {
			return err
		}
		if len(unknown) > 0 {
			return fmt.Errorf("%s: %w", strings.Join(unknown, ", "), domain.ErrUnknownLicense)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(licenseURLCmd)
}

// resolveLicenses resolves every name and returns the unknown ones separately.
func resolveLicenses(reg domain.Provider, names []string) ([]presentation.LicenseDTO, []string) {
	dtos := make([]presentation.LicenseDTO, 0, len(names))
	var unknown []string
	for _, name := range names {
		url, _, err := reg.ResolveLicenseURL(name)
		if errors.Is(err, domain.ErrUnknownLicense) {
			unknown = append(unknown, fmt.Sprintf("%q", name))
			dtos = append(dtos, presentation.LicenseDTO{License: name})
			continue
		}
		dtos = append(dtos, presentation.LicenseDTO{License: name, Known: true, URL: url})
	}
	return dtos, unknown
}
