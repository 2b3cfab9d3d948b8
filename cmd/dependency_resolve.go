package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/presentation"
)

var dependencyResolveCmd = &cobra.Command{
	Use:   "dependency:resolve <token>...",
	Short: "Resolve code dependency aliases to canonical names",
	Long: `Resolve code dependency tokens to their canonical names.

Aliases match exactly and case-sensitively ("SDL2" resolves, "sdl2" does not).
Tokens that are not aliases are printed unchanged. Dependencies that never
get their own entry are marked with their documentation URL.

Examples:
  osgdb dependency:resolve SDL2 SFML OpenGL`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadVocabulary()
		if err != nil {
			return err
		}
		return newFormatter(cmd).FormatDependencies(resolveDependencyTokens(reg, args))
	},
}

func init() {
	rootCmd.AddCommand(dependencyResolveCmd)
}

func resolveDependencyTokens(reg domain.Provider, tokens []string) []presentation.DependencyDTO {
	dtos := make([]presentation.DependencyDTO, len(tokens))
	for i, token := range tokens {
		dto := presentation.DependencyDTO{Token: token, Canonical: token}
		if canonical, ok := reg.ResolveDependencyAlias(token); ok {
			dto.Canonical = canonical
			dto.Alias = true
		}
		if url, ok := reg.NoEntryDependencyURL(dto.Canonical); ok {
			dto.NoEntry = true
			dto.URL = url
		}
		dtos[i] = dto
	}
	return dtos
}
