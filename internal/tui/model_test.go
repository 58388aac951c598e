package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/snackbar"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, cfg core.Config) (Model, *testClock) {
	t.Helper()
	m, err := NewModel(Options{Config: cfg})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	clock := &testClock{now: time.Unix(0, 0)}
	m.host.now = clock.Now
	m.styles.BarBase = "#1A1B26"
	m.styles.Icons = UnicodeIcons()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), clock
}

func press(m Model, k string) Model {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	if k == "enter" {
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

// finishAnimation delivers the final frame of the running animation.
func finishAnimation(t *testing.T, m Model, clock *testClock) Model {
	t.Helper()
	if m.host.anim == nil {
		t.Fatalf("no animation running")
	}
	clock.now = clock.now.Add(time.Hour)
	next, _ := m.Update(hostFrameMsg{id: m.host.anim.id, at: clock.now})
	return next.(Model)
}

func TestNewModelRejectsHorizontalOrientation(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Bar.Orientation = "horizontal"

	_, err := NewModel(Options{Config: cfg})
	if !errors.Is(err, snackbar.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestShowWithoutAnimatingRendersBar(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())

	m = press(m, "S")

	if m.bar.State() != snackbar.Visible {
		t.Fatalf("state = %s", m.bar.State())
	}
	if !m.bar.AutoHidePending() {
		t.Fatalf("expected auto-hide to be scheduled")
	}
	if m.stats.shows != 1 || m.stats.showID == "" {
		t.Fatalf("unexpected session: %+v", m.stats)
	}
	view := m.View()
	rows := strings.Split(view, "\n")
	if !strings.Contains(rows[len(rows)-2], "Saved") {
		t.Fatalf("bar text not on the bottom rows:\n%s", view)
	}
}

func TestShowAnimatesThenBecomesVisible(t *testing.T) {
	m, clock := newTestModel(t, core.DefaultConfig())

	m = press(m, "s")
	if m.bar.State() != snackbar.Appearing {
		t.Fatalf("state = %s", m.bar.State())
	}

	m = finishAnimation(t, m, clock)
	if m.bar.State() != snackbar.Visible {
		t.Fatalf("state = %s", m.bar.State())
	}
}

func TestToggleAutoHideSkipsTimer(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())

	m = press(m, "a")
	if m.autoHide {
		t.Fatalf("auto-hide should be off")
	}
	m = press(m, "S")
	if m.bar.AutoHidePending() {
		t.Fatalf("no auto-hide expected")
	}
	if len(m.host.timers) != 0 {
		t.Fatalf("unexpected timers: %d", len(m.host.timers))
	}
}

func TestErrorVariantClickHidesBar(t *testing.T) {
	m, clock := newTestModel(t, core.DefaultConfig())

	m = press(m, "e")
	if !m.host.highlight {
		t.Fatalf("error variant should highlight its text")
	}
	if m.host.background != snackbar.WithAlpha(errorBackground, errorAlpha) {
		t.Fatalf("background = %s", m.host.background)
	}

	// Not enabled until the appearance finishes.
	m = press(m, "enter")
	if m.stats.clicks != 0 {
		t.Fatalf("click accepted while appearing")
	}

	m = finishAnimation(t, m, clock)
	m = press(m, "enter")
	if m.stats.clicks != 1 {
		t.Fatalf("clicks = %d", m.stats.clicks)
	}
	if m.bar.State() != snackbar.Disappearing {
		t.Fatalf("state = %s", m.bar.State())
	}
}

func TestMouseClickOnBarActivates(t *testing.T) {
	m, clock := newTestModel(t, core.DefaultConfig())
	m = press(m, "e")
	m = finishAnimation(t, m, clock)

	miss := tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	next, _ := m.Update(miss)
	m = next.(Model)
	if m.stats.clicks != 0 {
		t.Fatalf("click outside the bar activated it")
	}

	hit := tea.MouseMsg{X: 5, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	next, _ = m.Update(hit)
	m = next.(Model)
	if m.stats.clicks != 1 {
		t.Fatalf("clicks = %d", m.stats.clicks)
	}
}

func TestActivateWithoutActionReportsStatus(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())
	m = press(m, "S")
	m = press(m, "enter")
	if m.statusMsg != "Nothing to activate" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestHideImmediately(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())
	m = press(m, "S")
	m = press(m, "H")
	if m.bar.State() != snackbar.Hidden || m.host.visible {
		t.Fatalf("state = %s visible=%v", m.bar.State(), m.host.visible)
	}
	if m.bar.AutoHidePending() {
		t.Fatalf("hide should cancel auto-hide")
	}
}

func TestSlowDismissUsesOneSecond(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())
	m = press(m, "S")
	m = press(m, "d")
	if m.bar.State() != snackbar.Disappearing {
		t.Fatalf("state = %s", m.bar.State())
	}
	if m.host.anim.d != time.Second {
		t.Fatalf("dismiss = %s", m.host.anim.d)
	}
}

func TestConfigReloadApplied(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())

	cfg := core.DefaultConfig()
	cfg.Bar.AnimationMs = 250
	cfg.Bar.AutoHideMs = 0
	next, _ := m.Update(configReloadedMsg{cfg: cfg})
	m = next.(Model)

	if m.cfg.Bar.AnimationMs != 250 || m.autoHide {
		t.Fatalf("config not applied: %+v autoHide=%v", m.cfg.Bar, m.autoHide)
	}
	if m.statusMsg != "Config reloaded" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestConfigReloadRejectsHorizontal(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())

	cfg := core.DefaultConfig()
	cfg.Bar.Orientation = "horizontal"
	cfg.Bar.AnimationMs = 250
	next, _ := m.Update(configReloadedMsg{cfg: cfg})
	m = next.(Model)

	if m.cfg.Bar.AnimationMs != 500 {
		t.Fatalf("rejected config was applied")
	}
	if !strings.HasPrefix(m.statusMsg, "Config rejected") {
		t.Fatalf("status = %q", m.statusMsg)
	}
	if m.bar.Orientation() != snackbar.Vertical {
		t.Fatalf("orientation = %s", m.bar.Orientation())
	}
}

func TestConfigReloadErrorKeepsConfig(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())
	next, _ := m.Update(configReloadedMsg{err: errors.New("boom")})
	m = next.(Model)
	if !strings.Contains(m.statusMsg, "boom") {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())

	m = press(m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = press(m, "s")
	if m.showHelp {
		t.Fatalf("help should close")
	}
	if m.bar.State() != snackbar.Hidden {
		t.Fatalf("closing key should not also act, state = %s", m.bar.State())
	}
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	m, _ := newTestModel(t, core.DefaultConfig())
	cmd := m.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
