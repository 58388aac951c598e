package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Status Bar - Top bar showing the bar state and session counters
// =============================================================================

// StatusBar renders the top status bar
type StatusBar struct {
	State           string
	AutoHidePending bool
	AutoHide        bool
	DismissMs       int64

	Shows  int
	Clicks int
}

// View renders the status bar content
func (s StatusBar) View(width int, styles Styles) string {
	st := styles.StatusBar
	icons := styles.Icons
	sep := st.Separator.String()

	state := styles.StateStyle(s.State).Render(styles.StateIcon(s.State) + " " + s.State)

	autoHide := "auto-hide off"
	if s.AutoHide {
		autoHide = "auto-hide on"
	}
	var left []string
	left = append(left, st.Brand.Render("snackbar"), sep, state, sep, st.Value.Render(autoHide))
	if s.AutoHidePending {
		left = append(left, " ", st.ValueMuted.Render(icons.Timer))
	}
	if s.DismissMs > 0 {
		left = append(left, sep, st.ValueMuted.Render("dismiss "+itoa(int(s.DismissMs))+"ms"))
	}
	leftContent := lipgloss.JoinHorizontal(lipgloss.Center, left...)

	right := st.ValueMuted.Render("shown " + itoa(s.Shows) + "  " + icons.Click + " " + itoa(s.Clicks))

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(right)
	spacer := strings.Repeat(" ", maxInt(1, width-leftWidth-rightWidth-4))

	return lipgloss.JoinHorizontal(lipgloss.Center, leftContent, spacer, right)
}

// itoa converts int to string (simple version)
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	negative := n < 0
	if negative {
		n = -n
	}

	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}

	if negative {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
