package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette - Monochrome + Blue Accent
// =============================================================================

// Colors defines the complete color palette with light/dark mode support
type Colors struct {
	// Primary accent color - Blue
	Accent      lipgloss.AdaptiveColor
	AccentMuted lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	// Background colors
	Background lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor

	// Text colors - Monochrome grays
	Text       lipgloss.AdaptiveColor
	TextMuted  lipgloss.AdaptiveColor
	TextSubtle lipgloss.AdaptiveColor

	Border lipgloss.AdaptiveColor
}

// DefaultColors returns the pastel color palette (auto dark/light)
func DefaultColors() Colors {
	return PastelColors()
}

// =============================================================================
// Icons - Nerd Font with Unicode Fallback
// =============================================================================

// Icons holds the glyphs used by the status bar
type Icons struct {
	Hidden       string
	Appearing    string
	Visible      string
	Disappearing string

	Timer     string
	Click     string
	Dot       string
	Separator string
}

// NerdFontIcons returns icons using Nerd Font glyphs
func NerdFontIcons() Icons {
	return Icons{
		Hidden:       "\uf070", // nf-fa-eye_slash
		Appearing:    "\uf062", // nf-fa-arrow_up
		Visible:      "\uf06e", // nf-fa-eye
		Disappearing: "\uf063", // nf-fa-arrow_down

		Timer:     "\uf017", // nf-fa-clock
		Click:     "\uf245", // nf-fa-mouse_pointer
		Dot:       "\uf111", // nf-fa-circle
		Separator: "│",
	}
}

// UnicodeIcons returns icons using standard Unicode (fallback)
func UnicodeIcons() Icons {
	return Icons{
		Hidden:       "○",
		Appearing:    "↑",
		Visible:      "●",
		Disappearing: "↓",

		Timer:     "◔",
		Click:     "▸",
		Dot:       "●",
		Separator: "│",
	}
}

// DetectNerdFont checks if Nerd Font is likely available
func DetectNerdFont() bool {
	switch os.Getenv("SNACKBAR_NERD_FONT") {
	case "1":
		return true
	case "0":
		return false
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range []string{"iTerm", "WezTerm", "Alacritty", "kitty", "Ghostty"} {
		if strings.Contains(termProgram, t) || strings.Contains(term, t) {
			return true
		}
	}
	return false
}

// GetIcons returns the appropriate icon set based on environment
func GetIcons() Icons {
	if DetectNerdFont() {
		return NerdFontIcons()
	}
	return UnicodeIcons()
}

// =============================================================================
// Component Styles
// =============================================================================

// Styles holds all component styles for the TUI
type Styles struct {
	Colors Colors
	Icons  Icons

	// BarBase is the opaque color the bar's ARGB background is blended over.
	BarBase string

	StatusBar StatusBarStyles
	HintsBar  HintsBarStyles
	Help      HelpStyles
}

// StatusBarStyles for the top status bar
type StatusBarStyles struct {
	Container  lipgloss.Style
	Brand      lipgloss.Style
	Value      lipgloss.Style
	ValueMuted lipgloss.Style
	Separator  lipgloss.Style
}

// HintsBarStyles for the bottom hints bar
type HintsBarStyles struct {
	Container lipgloss.Style
	Status    lipgloss.Style
}

// HelpStyles for help overlay
type HelpStyles struct {
	Container lipgloss.Style
	Title     lipgloss.Style
	GroupName lipgloss.Style
	Key       lipgloss.Style
	Desc      lipgloss.Style
	Divider   lipgloss.Style
}

// DefaultStyles returns the complete style configuration
func DefaultStyles() Styles {
	colors := DefaultColors()

	base := colors.Background.Light
	if lipgloss.HasDarkBackground() {
		base = colors.Background.Dark
	}

	return Styles{
		Colors:  colors,
		Icons:   GetIcons(),
		BarBase: base,

		StatusBar: defaultStatusBarStyles(colors),
		HintsBar:  defaultHintsBarStyles(colors),
		Help:      defaultHelpStyles(colors),
	}
}

func defaultStatusBarStyles(c Colors) StatusBarStyles {
	return StatusBarStyles{
		Container: lipgloss.NewStyle().
			Padding(0, 1).
			Background(c.Surface).
			BorderStyle(lipgloss.Border{Bottom: "─"}).
			BorderForeground(c.Border).
			BorderBottom(true),

		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Accent),

		Value: lipgloss.NewStyle().
			Foreground(c.Text),

		ValueMuted: lipgloss.NewStyle().
			Foreground(c.TextMuted),

		Separator: lipgloss.NewStyle().
			Foreground(c.TextSubtle).
			SetString(" · "),
	}
}

func defaultHintsBarStyles(c Colors) HintsBarStyles {
	return HintsBarStyles{
		Container: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.Border{Top: "─"}).
			BorderForeground(c.Border).
			BorderTop(true),

		Status: lipgloss.NewStyle().
			Foreground(c.TextSubtle),
	}
}

func defaultHelpStyles(c Colors) HelpStyles {
	return HelpStyles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Text),

		GroupName: lipgloss.NewStyle().
			Foreground(c.TextSubtle).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(c.Accent).
			Width(12),

		Desc: lipgloss.NewStyle().
			Foreground(c.Text),

		Divider: lipgloss.NewStyle().
			Foreground(c.Border),
	}
}

// =============================================================================
// Style Helpers
// =============================================================================

// StateStyle returns the style used to render a bar state name
func (s Styles) StateStyle(state string) lipgloss.Style {
	switch state {
	case "visible":
		return lipgloss.NewStyle().Foreground(s.Colors.Success)
	case "appearing", "disappearing":
		return lipgloss.NewStyle().Foreground(s.Colors.Warning)
	default:
		return lipgloss.NewStyle().Foreground(s.Colors.TextMuted)
	}
}

// StateIcon returns the glyph for a bar state name
func (s Styles) StateIcon(state string) string {
	switch state {
	case "hidden":
		return s.Icons.Hidden
	case "appearing":
		return s.Icons.Appearing
	case "visible":
		return s.Icons.Visible
	case "disappearing":
		return s.Icons.Disappearing
	default:
		return s.Icons.Dot
	}
}
