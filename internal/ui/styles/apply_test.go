package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, ApplyTheme(ThemeConfig{}))
	})
}

func TestApplyTheme_Default(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{}))

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#FF8787", Dark: "#FF8787"}, StatusErrorColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}, TableHeaderColor)
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"}, StatusErrorColor)
	require.Equal(t, StatusErrorColor, ErrorCellStyle.GetForeground())
}

func TestApplyTheme_OverrideWinsOverPreset(t *testing.T) {
	resetTheme(t)

	err := ApplyTheme(ThemeConfig{
		Preset: "dracula",
		Colors: map[string]string{"status.warning": "#123456"},
	})
	require.NoError(t, err)

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#123456", Dark: "#123456"}, StatusWarningColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#FF5555", Dark: "#FF5555"}, StatusErrorColor)
	require.Equal(t, StatusWarningColor, WarningCellStyle.GetForeground())
}

func TestApplyTheme_Errors(t *testing.T) {
	resetTheme(t)

	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "solarized"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"button.text": "#FFF"}}, "unknown color token"},
		{"not hex", ThemeConfig{Colors: map[string]string{"text.muted": "gray"}}, "invalid hex color"},
		{"bad length", ThemeConfig{Colors: map[string]string{"text.muted": "#12345"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, ApplyTheme(tt.cfg), tt.want)
		})
	}
}

func TestPresets_CoverAllTokens(t *testing.T) {
	for name, preset := range Presets {
		for _, token := range AllTokens() {
			c, ok := preset.Colors[token]
			require.True(t, ok, "%s misses %s", name, token)
			require.True(t, isValidHexColor(c), "%s %s: %s", name, token, c)
		}
	}
}

func TestPresetNames(t *testing.T) {
	require.Equal(t, []string{"catppuccin-mocha", "default", "dracula", "high-contrast", "nord"}, PresetNames())
}
