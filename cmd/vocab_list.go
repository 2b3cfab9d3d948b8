package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/presentation"
)

// listableVocabularies are the fixed vocabulary names accepted by vocab:list,
// besides fields:<kind>, essential-fields:<kind> and url-fields:<kind>.
var listableVocabularies = []string{
	"licenses", "license-families", "languages", "platforms", "keywords", "framework-keywords",
	"multiplayer", "url-prefixes", "url-prefixes:extended", "dependencies", "no-entry-dependencies",
}

var vocabListCmd = &cobra.Command{
	Use:   "vocab:list <vocabulary>",
	Short: "List a controlled vocabulary in canonical order",
	Long: `List a controlled vocabulary in canonical order.

Vocabularies:
  licenses                licenses with their reference URL
  license-families        license name prefixes and URLs, in match order
  languages               languages with their reference URL
  platforms, keywords, framework-keywords, multiplayer
  url-prefixes            strict URL prefixes
  url-prefixes:extended   strict prefixes plus the @see-, @not- and ? sentinels
  dependencies            canonical dependency names and their aliases
  no-entry-dependencies   dependencies without their own entry
  fields:<kind>           valid fields of entry, building, developer or inspiration
  essential-fields:<kind> essential fields of a kind
  url-fields:<kind>       URL fields of a kind

Examples:
  osgdb vocab:list platforms
  osgdb vocab:list fields:entry
  osgdb vocab:list licenses -o json | jq '.values[].value'`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: listableVocabularies,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadVocabulary()
		if err != nil {
			return err
		}
		dto, err := vocabularyDTO(reg, args[0])
		if err != nil {
			return err
		}
		return newFormatter(cmd).FormatVocabulary(dto)
	},
}

func init() {
	rootCmd.AddCommand(vocabListCmd)
}

// vocabularyDTO resolves a vocabulary name to its presentation form.
func vocabularyDTO(reg *domain.Registry, name string) (presentation.VocabularyDTO, error) {
	if prefix, kindName, ok := strings.Cut(name, ":"); ok && prefix != "url-prefixes" {
		kind, err := domain.ParseKind(kindName)
		if err != nil {
			return presentation.VocabularyDTO{}, err
		}
		switch prefix {
		case "fields":
			return presentation.FromTable(name, reg.Fields(kind)), nil
		case "essential-fields":
			return presentation.FromTable(name, reg.EssentialFields(kind)), nil
		case "url-fields":
			return presentation.FromTable(name, reg.URLFields(kind)), nil
		}
		return presentation.VocabularyDTO{}, unknownVocabulary(name)
	}

	switch name {
	case "licenses":
		dto, err := fromVocabulary(reg, name, domain.VocabLicenses)
		return withURLs(dto, func(v string) string {
			url, _, _ := reg.ResolveLicenseURL(v)
			return url
		}), err
	case "license-families":
		families := reg.LicenseFamilies()
		urls := make([]domain.NamedURL, len(families))
		for i, f := range families {
			urls[i] = domain.NamedURL{Name: f.Prefix, URL: f.URL}
		}
		return presentation.FromNamedURLs(name, urls), nil
	case "languages":
		dto, err := fromVocabulary(reg, name, domain.VocabLanguages)
		return withURLs(dto, func(v string) string {
			url, _ := reg.LanguageURL(v)
			return url
		}), err
	case "platforms":
		return fromVocabulary(reg, name, domain.VocabPlatforms)
	case "keywords":
		return fromVocabulary(reg, name, domain.VocabKeywords)
	case "framework-keywords":
		return fromVocabulary(reg, name, domain.VocabFrameworkKeywords)
	case "multiplayer":
		return fromVocabulary(reg, name, domain.VocabMultiplayerModes)
	case "url-prefixes":
		return presentation.FromTable(name, reg.URLPrefixes(domain.URLStrict)), nil
	case "url-prefixes:extended":
		return presentation.FromTable(name, reg.URLPrefixes(domain.URLExtended)), nil
	case "dependencies":
		return presentation.FromDependencyAliases(reg.DependencyAliases()), nil
	case "no-entry-dependencies":
		return presentation.FromNamedURLs(name, reg.NoEntryDependencies()), nil
	}
	return presentation.VocabularyDTO{}, unknownVocabulary(name)
}

func fromVocabulary(reg *domain.Registry, name string, v domain.Vocabulary) (presentation.VocabularyDTO, error) {
	t, err := reg.Table(v)
	if err != nil {
		return presentation.VocabularyDTO{}, err
	}
	return presentation.FromTable(name, t), nil
}

func withURLs(dto presentation.VocabularyDTO, url func(string) string) presentation.VocabularyDTO {
	for i := range dto.Values {
		dto.Values[i].URL = url(dto.Values[i].Value)
	}
	return dto
}

func unknownVocabulary(name string) error {
	return fmt.Errorf("unknown vocabulary %q (one of %s, fields:<kind>, essential-fields:<kind>, url-fields:<kind>): %w",
		name, strings.Join(listableVocabularies, ", "), domain.ErrUnknownVocabulary)
}
