package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/osgdb/internal/log"
	"github.com/zjrosen/osgdb/internal/vocabulary"
)

var vocabExportCmd = &cobra.Command{
	Use:   "vocab:export [file]",
	Short: "Export the active vocabulary as YAML",
	Long: `Export the active vocabulary (built-in or --vocabulary) as a self-contained
YAML file. Without a file argument the YAML is written to stdout.

The exported file can be edited and passed back with --vocabulary or the
vocabulary_file config key.

Examples:
  osgdb vocab:export > vocabulary.yaml
  osgdb vocab:export .osgdb/vocabulary.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadVocabulary()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			if err := vocabulary.WriteFile(args[0], reg.Tables()); err != nil {
				return err
			}
			log.Info(log.CatVocab, "exported vocabulary", "path", args[0])
			cmd.Printf("Vocabulary written to %s\n", args[0])
			return nil
		}

		data, err := vocabulary.MarshalTables(reg.Tables())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(vocabExportCmd)
}
