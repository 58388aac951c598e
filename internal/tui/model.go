package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/snackbar"
)

// =============================================================================
// Messages
// =============================================================================

// configReloadedMsg carries a config reloaded from disk by the watcher.
type configReloadedMsg struct {
	cfg core.Config
	err error
}

const (
	errorMessage    = "Upload failed · Retry"
	errorBackground = snackbar.Color(0xC74B5C)
	errorAlpha      = 0xEA

	slowDismiss = time.Second
)

// Options configure the demo screen.
type Options struct {
	ProjectRoot string
	ConfigPath  string
	Config      core.Config
	Logger      *slog.Logger
	Watch       bool
}

// session counts what happened on screen. It is shared by pointer so click
// handlers captured by the bar see the live Model's counters.
type session struct {
	shows  int
	clicks int
	showID string
}

// =============================================================================
// Model
// =============================================================================

type Model struct {
	opts   Options
	cfg    core.Config
	logger *slog.Logger

	// Window dimensions
	width  int
	height int

	// Styles and keys
	styles Styles
	keys   keyMap
	help   help.Model

	showHelp bool
	autoHide bool

	host  *teaHost
	bar   *snackbar.Bar
	stats *session

	// Status message (shown in the hints bar)
	statusMsg string
}

// NewModel builds the demo screen. It fails when the configured bar cannot
// be constructed, e.g. for a horizontal orientation.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := opts.Config

	orientation, err := cfg.Bar.BarOrientation()
	if err != nil {
		return Model{}, err
	}

	stats := &session{}
	host := newTeaHost()
	bar, err := snackbar.New(host,
		snackbar.WithOrientation(orientation),
		snackbar.WithObserver(func(from, to snackbar.State) {
			logger.Debug("snackbar transition", "from", from, "to", to, "show", stats.showID)
		}),
	)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:     opts,
		cfg:      cfg,
		logger:   logger,
		styles:   DefaultStyles(),
		keys:     defaultKeyMap(),
		help:     h,
		autoHide: cfg.Bar.AutoHideMs > 0,
		host:     host,
		bar:      bar,
		stats:    stats,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("snackbar")
}

// =============================================================================
// Update
// =============================================================================

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.host.Handle(msg) {
		return m, m.host.Cmd()
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case configReloadedMsg:
		m.applyConfig(msg.cfg, msg.err)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.inBar(msg.Y) {
			m.activate()
		}

	case tea.KeyMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.host.Cmd())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Show):
		m.show(true, false)

	case key.Matches(msg, m.keys.ShowStatic):
		m.show(false, false)

	case key.Matches(msg, m.keys.ShowError):
		m.show(true, true)

	case key.Matches(msg, m.keys.Hide):
		m.bar.HideAnimated()

	case key.Matches(msg, m.keys.HideNow):
		m.bar.Hide(false)

	case key.Matches(msg, m.keys.SlowDismiss):
		m.bar.HideAfter(slowDismiss)

	case key.Matches(msg, m.keys.ToggleAutoHide):
		m.autoHide = !m.autoHide
		if m.autoHide {
			m.setStatus("Auto-hide on")
		} else {
			m.setStatus("Auto-hide off")
		}

	case key.Matches(msg, m.keys.Activate):
		m.activate()
	}
	return nil
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
}

// show presents the configured message, or the error variant with a retry
// action that dismisses the bar.
func (m *Model) show(animate, isError bool) {
	msg := ""
	if isError {
		msg = errorMessage
	}
	req, err := m.cfg.Bar.Request(msg)
	if err != nil {
		m.setStatus(err.Error())
		return
	}

	stats := m.stats
	stats.shows++
	stats.showID = core.NewShowID()

	b := m.bar.Compose(req)
	if !m.autoHide {
		b = b.WithAutoHideDelay(0)
	}
	if isError {
		logger := m.logger
		b = b.WithBackgroundAlpha(errorBackground, errorAlpha).
			WithTextClickListener(func(bar *snackbar.Bar) {
				stats.clicks++
				logger.Info("snackbar action", "show", stats.showID, "clicks", stats.clicks)
				bar.HideAnimated()
			})
	}

	m.logger.Info("snackbar show",
		"show", stats.showID,
		"animate", animate,
		"autoHide", m.autoHide,
		"duration", req.AnimationDuration,
	)
	if animate {
		b.Animating()
	} else {
		b.WithoutAnimating()
	}
	m.setStatus("")
}

func (m *Model) activate() {
	if !m.bar.Click() {
		m.setStatus("Nothing to activate")
	}
}

// applyConfig swaps in a reloaded config. A config the bar cannot use is
// reported and the previous one kept.
func (m *Model) applyConfig(cfg core.Config, err error) {
	if err != nil {
		m.setStatus("Config reload failed: " + err.Error())
		return
	}
	o, err := cfg.Bar.BarOrientation()
	if err == nil {
		err = m.bar.SetOrientation(o)
	}
	if err != nil {
		m.logger.Warn("config rejected", "error", err)
		m.setStatus("Config rejected: " + err.Error())
		return
	}
	m.cfg = cfg
	m.autoHide = cfg.Bar.AutoHideMs > 0
	m.logger.Info("config applied", "animationMs", cfg.Bar.AnimationMs, "autoHideMs", cfg.Bar.AutoHideMs)
	m.setStatus("Config reloaded")
}

// inBar reports whether screen row y is covered by the bar.
func (m Model) inBar(y int) bool {
	rows := len(barLines(m.host, m.width, m.styles))
	return rows > 0 && y >= m.height-rows && y < m.height
}

// =============================================================================
// View
// =============================================================================

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.showHelp {
		return m.helpOverlayView()
	}
	return m.mainView()
}

func (m Model) mainView() string {
	header := m.styles.StatusBar.Container.Width(m.width).Render(m.statusBar().View(m.width-2, m.styles))
	footer := m.footerView()

	bodyHeight := maxInt(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.bodyView())

	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return overlayBottom(screen, barLines(m.host, m.width, m.styles))
}

func (m Model) statusBar() StatusBar {
	return StatusBar{
		State:           m.bar.State().String(),
		AutoHidePending: m.bar.AutoHidePending(),
		AutoHide:        m.autoHide,
		DismissMs:       m.bar.DismissDuration().Milliseconds(),
		Shows:           m.stats.shows,
		Clicks:          m.stats.clicks,
	}
}

func (m Model) bodyView() string {
	s := m.styles
	title := lipgloss.NewStyle().Bold(true).Foreground(s.Colors.Text).Render(m.cfg.Bar.Message)
	detail := lipgloss.NewStyle().Foreground(s.Colors.TextMuted).Render(fmt.Sprintf(
		"appear %dms · auto-hide %dms · %s / %s",
		m.cfg.Bar.AnimationMs, m.cfg.Bar.AutoHideMs, easingName(m.cfg.Bar.Easing), easingName(m.cfg.Bar.DismissEasing),
	))
	return lipgloss.JoinVertical(lipgloss.Center, title, detail)
}

func (m Model) footerView() string {
	var parts []string
	if m.cfg.TUI.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.styles.HintsBar.Status.Render(m.statusMsg))
	}
	if len(parts) == 0 {
		return ""
	}
	return m.styles.HintsBar.Container.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) helpOverlayView() string {
	s := m.styles.Help

	width := m.width * 55 / 100
	if width < 40 {
		width = 40
	}
	if width > 72 {
		width = 72
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(s.Divider.Render(strings.Repeat("─", width-6)))
	b.WriteString("\n\n")

	groupNames := []string{"SHOW", "HIDE", "OTHER"}
	for i, group := range m.keys.FullHelp() {
		if i < len(groupNames) {
			b.WriteString(s.GroupName.Render("  " + groupNames[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			b.WriteString(s.Key.Render("  "+binding.Help().Key) + s.Desc.Render(binding.Help().Desc) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(s.Desc.Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		s.Container.Width(width).Render(b.String()))
}

func easingName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}
