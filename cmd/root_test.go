package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/osgdb/internal/catalog"
	"github.com/zjrosen/osgdb/internal/config"
	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
	"github.com/zjrosen/osgdb/internal/log"
	"github.com/zjrosen/osgdb/internal/presentation"
	"github.com/zjrosen/osgdb/internal/testutil"
	"github.com/zjrosen/osgdb/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// run executes the root command with args against a fresh viper instance and
// an isolated HOME, returning everything written to stdout and stderr.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(debugEnv, "")
	t.Cleanup(log.Reset)

	viper.Reset()
	cfg = config.Config{}
	cfgFile, debug, logFile = "", false, ""
	for _, name := range []string{"root", "vocabulary", "output", "no-color", "debug", "log-file", "config"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	bindFlags()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return ansi.Strip(buf.String()), err
}

// newCatalog creates a catalog root with entries/ and code/ and returns it.
func newCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "entries"), 0750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "code"), 0750))
	return root
}

func writeDatabase(t *testing.T, path string, db catalog.Database) {
	t.Helper()
	data, err := json.Marshal(db)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func TestVocabList_PlatformsJSON(t *testing.T) {
	out, err := run(t, "vocab:list", "platforms", "-o", "json")
	require.NoError(t, err)

	var dto presentation.VocabularyDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	require.Equal(t, "platforms", dto.Name)
	require.Equal(t, "Windows", dto.Values[0].Value)
	for i, v := range dto.Values {
		require.Equal(t, i, v.Rank)
	}
}

func TestVocabList_FieldsTable(t *testing.T) {
	out, err := run(t, "vocab:list", "fields:entry")
	require.NoError(t, err)
	require.Contains(t, out, "Code repository")
	require.Contains(t, out, "Title")
}

func TestVocabList_LicensesCarryURLs(t *testing.T) {
	out, err := run(t, "vocab:list", "licenses", "-o", "json")
	require.NoError(t, err)

	var dto presentation.VocabularyDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	urls := make(map[string]string)
	for _, v := range dto.Values {
		urls[v.Value] = v.URL
	}
	require.NotEmpty(t, urls["GPL-3.0"])
	require.Empty(t, urls["None"])
}

func TestVocabList_Unknown(t *testing.T) {
	_, err := run(t, "vocab:list", "games")
	require.ErrorIs(t, err, domain.ErrUnknownVocabulary)

	_, err = run(t, "vocab:list", "fields:game")
	require.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestLicenseURL(t *testing.T) {
	out, err := run(t, "license:url", "MIT", "None", "-o", "json")
	require.NoError(t, err)

	var dtos []presentation.LicenseDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	require.Len(t, dtos, 2)
	require.True(t, dtos[0].Known)
	require.NotEmpty(t, dtos[0].URL)
	require.True(t, dtos[1].Known)
	require.Empty(t, dtos[1].URL)
}

func TestLicenseURL_Unknown(t *testing.T) {
	out, err := run(t, "license:url", "MIT", "WTFPL-ish")
	require.ErrorIs(t, err, domain.ErrUnknownLicense)
	require.Contains(t, err.Error(), `"WTFPL-ish"`)
	require.Contains(t, out, "WTFPL-ish")
}

func TestDependencyResolve(t *testing.T) {
	out, err := run(t, "dependency:resolve", "SDL2", "sdl2", "OpenGL", "-o", "json")
	require.NoError(t, err)

	var dtos []presentation.DependencyDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	require.Len(t, dtos, 3)

	require.True(t, dtos[0].Alias)
	require.Equal(t, "Simple DirectMedia Layer", dtos[0].Canonical)

	require.False(t, dtos[1].Alias, "aliases are case-sensitive")
	require.Equal(t, "sdl2", dtos[1].Canonical)

	require.True(t, dtos[2].NoEntry)
	require.NotEmpty(t, dtos[2].URL)
}

func TestVocabExport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab", "vocabulary.yaml")

	out, err := run(t, "vocab:export", path)
	require.NoError(t, err)
	require.Contains(t, out, "Vocabulary written to")

	out, err = run(t, "vocab:list", "multiplayer", "--vocabulary", path, "-o", "json")
	require.NoError(t, err)

	var dto presentation.VocabularyDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	want, err := domain.Default()
	require.NoError(t, err)
	table, err := want.Table(domain.VocabMultiplayerModes)
	require.NoError(t, err)
	require.Len(t, dto.Values, table.Len())
}

func TestVocabExport_Stdout(t *testing.T) {
	out, err := run(t, "vocab:export")
	require.NoError(t, err)
	require.Contains(t, out, "base: none")
	require.Contains(t, out, "licenses:")
}

func TestPaths_ExplicitRoot(t *testing.T) {
	root := newCatalog(t)

	out, err := run(t, "paths", "--root", root, "-o", "json")
	require.NoError(t, err)

	var dtos []presentation.PathDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	byName := make(map[string]string)
	for _, p := range dtos {
		byName[p.Name] = p.Path
	}
	require.Equal(t, filepath.Join(root, "docs", "data.json"), byName["json database"])
}

func TestConfigGet(t *testing.T) {
	root := newCatalog(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "local-config.ini"),
		[]byte("[general]\nGitHub-Token = abc123\n"), 0600))

	out, err := run(t, "config:get", "github-token", "--root", root, "-o", "json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "abc123", got["github-token"])

	_, err = run(t, "config:get", "archive-path", "--root", root)
	require.ErrorIs(t, err, config.ErrKeyNotFound)
}

func TestConfigSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	out, err := run(t, "--config", path, "config:set", "check.url_context_entry", "strict")
	require.NoError(t, err)
	require.Contains(t, out, "Set check.url_context_entry")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "url_context_entry: strict")
	require.Contains(t, string(data), "# Output format")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0600))

	_, err := run(t, "--config", path, "flags:list")
	require.ErrorContains(t, err, "invalid configuration")
}

func TestFlagsList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flags:\n  order-diff: true\n"), 0600))

	out, err := run(t, "--config", path, "flags:list", "-o", "json")
	require.NoError(t, err)

	var dto presentation.VocabularyDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	var values []string
	for _, v := range dto.Values {
		values = append(values, v.Value)
	}
	require.Equal(t, []string{"dependency-check=true", "order-diff=true"}, values)
}

func TestCheck_CleanDatabase(t *testing.T) {
	root := newCatalog(t)
	writeDatabase(t, filepath.Join(root, "docs", "data.json"), testutil.NewBuilder().WithStandardTestData().Build())

	out, err := run(t, "check", "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "records checked, no problems found")
}

func TestCheck_Failures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	db := testutil.NewBuilder().
		WithEntry("Broken", testutil.Field("Code license", "Not A License"), testutil.Without("Keyword")).
		Build()
	writeDatabase(t, path, db)

	out, err := run(t, "check", path, "-o", "json")
	require.ErrorIs(t, err, ErrCheckFailed)

	var report presentation.ReportDTO
	require.NoError(t, json.Unmarshal([]byte(out[:bytes.LastIndexByte([]byte(out), '}')+1]), &report))
	require.Equal(t, 1, report.Records)
	require.GreaterOrEqual(t, report.Errors, 2)
}

func TestCheck_MissingDatabase(t *testing.T) {
	_, err := run(t, "check", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCheckFailed)
}

func TestDebugLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "osgdb.log")

	_, err := run(t, "--debug", "--log-file", logPath, "flags:list")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [cli] running command command=osgdb flags:list")
}

func TestResolveDependencyTokens_NoAliases(t *testing.T) {
	reg, err := domain.Default()
	require.NoError(t, err)

	dtos := resolveDependencyTokens(reg, []string{"Lua"})
	require.Equal(t, presentation.DependencyDTO{Token: "Lua", Canonical: "Lua"}, dtos[0])
}

func TestVocabularyDTO_URLPrefixes(t *testing.T) {
	reg, err := domain.Default()
	require.NoError(t, err)

	strict, err := vocabularyDTO(reg, "url-prefixes")
	require.NoError(t, err)
	extended, err := vocabularyDTO(reg, "url-prefixes:extended")
	require.NoError(t, err)

	require.Greater(t, len(extended.Values), len(strict.Values))
	for i, v := range strict.Values {
		require.Equal(t, v.Value, extended.Values[i].Value)
	}
}

func TestInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme:\n    preset: solarized\n"), 0600))

	_, err := run(t, "--config", path, "flags:list")
	require.ErrorContains(t, err, "ui.theme")
}

func TestThemeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme:\n    preset: nord\n    colors:\n      status:\n        error: \"#FF0000\"\n"), 0600))
	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })

	_, err := run(t, "--config", path, "flags:list")
	require.NoError(t, err)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}, styles.StatusErrorColor)
}
