package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/osgdb/internal/config"
)

var configGetCmd = &cobra.Command{
	Use:   "config:get <key>",
	Short: "Read a value from the catalog's local-config.ini",
	Long: `Read a value from the [general] section of local-config.ini at the
catalog root. Keys are case-insensitive.

Examples:
  osgdb config:get github-token
  osgdb config:get archive-path --root ~/src/open-source-games`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := resolveLayout()
		if err != nil {
			return err
		}
		settings, err := config.LoadLocalSettings(layout.LocalConfig)
		if err != nil {
			return err
		}
		value, err := settings.Get(args[0])
		if err != nil {
			return err
		}
		return newFormatter(cmd).FormatSetting(args[0], value)
	},
}

func init() {
	rootCmd.AddCommand(configGetCmd)
}
