package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the osgdb color scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default osgdb theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextMuted:     "#696969",
		TokenBorderDefault: "#696969",
		TokenTableHeader:   "#54A0FF",
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",
	},
}

// CatppuccinMochaPreset is a warm dark theme.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextMuted:     "#6C7086", // overlay0
		TokenBorderDefault: "#6C7086", // overlay0
		TokenTableHeader:   "#CBA6F7", // mauve
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red
	},
}

// DraculaPreset is a dark theme with vibrant colors.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#F8F8F2", // foreground
		TokenTextMuted:     "#6272A4", // comment
		TokenBorderDefault: "#6272A4", // comment
		TokenTableHeader:   "#BD93F9", // purple
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red
	},
}

// NordPreset is an arctic, north-bluish palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextMuted:     "#4C566A", // polar night 4
		TokenBorderDefault: "#4C566A", // polar night 4
		TokenTableHeader:   "#88C0D0", // frost 2
		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red
	},
}

// HighContrastPreset is meant for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextMuted:     "#FFFFFF", // no muted colors in high contrast
		TokenBorderDefault: "#FFFFFF",
		TokenTableHeader:   "#00FFFF",
		TokenStatusSuccess: "#00FF00", // pure green
		TokenStatusWarning: "#FFFF00", // pure yellow
		TokenStatusError:   "#FF0000", // pure red
	},
}
