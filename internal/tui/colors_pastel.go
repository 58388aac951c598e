package tui

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Pastel Colors - Single unified palette (uses AdaptiveColor for auto dark/light)
// =============================================================================

// PastelColors returns the unified pastel color palette
func PastelColors() Colors {
	return Colors{
		// Accent - soft pastel blue
		Accent:      lipgloss.AdaptiveColor{Light: "#5A7BC0", Dark: "#7AA2F7"},
		AccentMuted: lipgloss.AdaptiveColor{Light: "#7B96D3", Dark: "#3D59A1"},

		// Semantic colors
		Success: lipgloss.AdaptiveColor{Light: "#5B8A3A", Dark: "#9ECE6A"},
		Warning: lipgloss.AdaptiveColor{Light: "#C48F2C", Dark: "#E0AF68"},
		Error:   lipgloss.AdaptiveColor{Light: "#C74B5C", Dark: "#F7768E"},

		// Backgrounds
		Background: lipgloss.AdaptiveColor{Light: "#FFFBF5", Dark: "#1A1B26"},
		Surface:    lipgloss.AdaptiveColor{Light: "#F5F0E8", Dark: "#24283B"},

		// Text
		Text:       lipgloss.AdaptiveColor{Light: "#383A42", Dark: "#C0CAF5"},
		TextMuted:  lipgloss.AdaptiveColor{Light: "#6C6E7A", Dark: "#9AA5CE"},
		TextSubtle: lipgloss.AdaptiveColor{Light: "#9DA0AB", Dark: "#565F89"},

		// Borders
		Border: lipgloss.AdaptiveColor{Light: "#D5D1C9", Dark: "#3B4261"},
	}
}

// Snackbar text colors, picked by the lightness of the blended background.
const (
	barTextLight = "#F5F5F5"
	barTextDark  = "#1A1B26"
)
