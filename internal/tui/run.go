package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xcbolt/snackbar/internal/core"
)

// Run starts the demo screen and blocks until it exits.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.TUI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, programOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Watch {
		path := opts.ConfigPath
		if path == "" {
			path = core.ConfigPath(opts.ProjectRoot)
		}
		w, err := core.NewConfigWatcher(opts.ProjectRoot, path, m.logger, func(cfg core.Config, err error) {
			p.Send(configReloadedMsg{cfg: cfg, err: err})
		})
		if err != nil {
			return err
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				m.logger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	_, err = p.Run()
	return err
}
