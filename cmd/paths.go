package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/osgdb/internal/presentation"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the catalog path layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := resolveLayout()
		if err != nil {
			return err
		}
		return newFormatter(cmd).FormatLayout(presentation.FromLayout(layout))
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
