package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens. These are the keys users can override under ui.theme.colors.
const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextMuted     ColorToken = "text.muted"
	TokenBorderDefault ColorToken = "border.default"
	TokenTableHeader   ColorToken = "table.header"
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"
)

// AllTokens returns every color token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextMuted,
		TokenBorderDefault,
		TokenTableHeader,
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,
	}
}
