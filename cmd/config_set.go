package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/osgdb/internal/config"
	"github.com/zjrosen/osgdb/internal/log"
)

var configSetCmd = &cobra.Command{
	Use:   "config:set <key> <value>",
	Short: "Set a value in the osgdb config file",
	Long: `Set a value in the osgdb config file (the file in use, or
.osgdb/config.yaml). Nested keys use dots. Comments in the file are kept.

Examples:
  osgdb config:set output json
  osgdb config:set check.url_context_entry strict
  osgdb config:set flags.order-diff true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if err := config.SaveValue(path, args[0], args[1]); err != nil {
			return err
		}
		log.Info(log.CatConfig, "saved config value", "path", path, "key", args[0])
		cmd.Printf("Set %s in %s\n", args[0], path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configSetCmd)
}
