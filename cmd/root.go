package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/osgdb/internal/config"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/flags"
	"github.com/zjrosen/osgdb/internal/log"
	"github.com/zjrosen/osgdb/internal/paths"
	"github.com/zjrosen/osgdb/internal/presentation"
	"github.com/zjrosen/osgdb/internal/ui/styles"
	"github.com/zjrosen/osgdb/internal/vocabulary"
)

const (
	localConfigPath = ".osgdb/config.yaml"
	debugEnv        = "OSGDB_DEBUG"
)

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	debug      bool
	logFile    string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "osgdb",
	Short: "Vocabulary and maintenance tool for the open source games catalog",
	Long: `osgdb validates and looks up the controlled vocabularies of the open source
games catalog (fields, licenses, languages, platforms, keywords, URL prefixes,
code dependencies) and checks the exported JSON database against them.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .osgdb/config.yaml or ~/.config/osgdb/config.yaml)")
	rootCmd.PersistentFlags().StringP("root", "r", "",
		"catalog root (default: detected from the working directory)")
	rootCmd.PersistentFlags().String("vocabulary", "",
		"alternate vocabulary YAML file")
	rootCmd.PersistentFlags().StringP("output", "o", "",
		"output format: table, json or markdown")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging (also OSGDB_DEBUG=1)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write debug log to file instead of stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	bindFlags()
}

// bindFlags binds the persistent flags to their config keys.
func bindFlags() {
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("vocabulary_file", rootCmd.PersistentFlags().Lookup("vocabulary"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("ui.no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("check.url_context_entry", defaults.Check.URLContextEntry)
	viper.SetDefault("check.max_findings", defaults.Check.MaxFindings)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.word_wrap", defaults.UI.WordWrap)
	viper.SetDefault("flags", defaults.Flags)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .osgdb/config.yaml (current directory)
		// 2. ~/.config/osgdb/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(userConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the user default
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			defaultPath := filepath.Join(userConfigDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func userConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "osgdb")
}

// setup starts logging and validates the configuration before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if debug || os.Getenv(debugEnv) != "" {
		if logFile != "" {
			cleanup, err := log.Init(logFile)
			if err != nil {
				return err
			}
			logCleanup = cleanup
		} else {
			log.InitWriter(cmd.ErrOrStderr())
		}
	}

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.UI.Theme.Preset,
		Colors: cfg.UI.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid configuration: ui.theme: %w", err)
	}

	log.Debug(log.CatCLI, "running command", "command", cmd.CommandPath(), "config", viper.ConfigFileUsed())

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadVocabulary builds the registry from the configured vocabulary file, or
// the built-in tables.
func loadVocabulary() (*domain.Registry, error) {
	reg, err := vocabulary.Load(cfg.VocabularyFile)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}
	return reg, nil
}

// resolveLayout returns the catalog layout for the configured or detected root.
func resolveLayout() (paths.Layout, error) {
	wd, err := os.Getwd()
	if err != nil {
		return paths.Layout{}, fmt.Errorf("getting current directory: %w", err)
	}
	layout, err := paths.Resolve(cfg.Root, wd)
	if err != nil {
		return paths.Layout{}, fmt.Errorf("%w\nRun from inside the catalog or pass --root", err)
	}
	return layout, nil
}

func featureFlags() *flags.Registry {
	return flags.New(cfg.Flags)
}

func newFormatter(cmd *cobra.Command) *presentation.Formatter {
	return presentation.NewFormatter(cmd.OutOrStdout(), presentation.Options{
		Format:        cfg.Output,
		MarkdownStyle: cfg.UI.MarkdownStyle,
		Width:         cfg.UI.WordWrap,
	})
}

// configFilePath returns the config file in use, or where one would be created.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	return localConfigPath
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
