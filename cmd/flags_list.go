package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/osgdb/internal/flags"
	"github.com/zjrosen/osgdb/internal/presentation"
)

var flagsListCmd = &cobra.Command{
	Use:   "flags:list",
	Short: "List feature flags and their current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ff := featureFlags()
		dto := presentation.VocabularyDTO{Name: "flags"}
		for i, name := range flags.Known() {
			dto.Values = append(dto.Values, presentation.ValueDTO{
				Rank:  i,
				Value: name + "=" + strconv.FormatBool(ff.Enabled(name)),
			})
		}
		return newFormatter(cmd).FormatVocabulary(dto)
	},
}

func init() {
	rootCmd.AddCommand(flagsListCmd)
}
