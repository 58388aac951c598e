package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/xcbolt/snackbar/internal/snackbar"
)

// =============================================================================
// Bar rendering
// =============================================================================

// barLines renders the visible rows of the bar, top row first. The bar slides
// up from below the screen edge, so a translation of t rows hides its bottom
// t rows.
func barLines(h *teaHost, width int, styles Styles) []string {
	if !h.visible || width <= 0 {
		return nil
	}
	rows := barRows - int(math.Ceil(h.translation))
	if rows <= 0 {
		return nil
	}
	if rows > barRows {
		rows = barRows
	}

	bg, fg := barColors(h.background, styles.BarBase)
	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Underline(h.highlight).
		Render(truncateText(h.text, width-4))

	container := lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Background(lipgloss.Color(bg))

	lines := strings.Split(container.Render(text), "\n")
	if rows < len(lines) {
		lines = lines[:rows]
	}
	return lines
}

// barColors blends the bar's ARGB background over base and picks a readable
// text color for the result. Both are returned as #RRGGBB.
func barColors(c snackbar.Color, base string) (bg, fg string) {
	under, err := colorful.Hex(base)
	if err != nil {
		under = colorful.Color{}
	}
	over, err := colorful.Hex(c.Hex())
	if err != nil {
		over = under
	}
	blended := under.BlendRgb(over, float64(c.Alpha())/255).Clamped()

	fg = barTextLight
	if _, _, l := blended.Hcl(); l > 0.6 {
		fg = barTextDark
	}
	return blended.Hex(), fg
}

// truncateText shortens s to at most n runes with an ellipsis.
func truncateText(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// overlayBottom replaces the last rows of screen with lines.
func overlayBottom(screen string, lines []string) string {
	if len(lines) == 0 {
		return screen
	}
	rows := strings.Split(screen, "\n")
	start := len(rows) - len(lines)
	if start < 0 {
		lines = lines[-start:]
		start = 0
	}
	copy(rows[start:], lines)
	return strings.Join(rows, "\n")
}
