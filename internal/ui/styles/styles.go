// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#3498DB"} // Focused form sections

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Accepted registrations
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Rejected registrations

	// Overlay/title colors
	TitleColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#F1C40F"}

	// Button colors
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonPrimaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	// Text styles
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	HintStyle  = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
)

// ApplyTheme overrides the palette with configured hex colors. Empty values
// keep the built-in adaptive color.
func ApplyTheme(highlight, subtle, errColor, success string) {
	if highlight != "" {
		BorderFocusColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
		ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
		PrimaryButtonFocusedStyle = baseButtonStyle.
			Foreground(ButtonTextColor).
			Background(ButtonPrimaryFocusBgColor).
			Underline(true).
			UnderlineSpaces(true)
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	}
	if errColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errColor, Dark: errColor}
		ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}
}
