package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/snackbar"
)

const otherChoice = "__other__"

func newInitCmd() *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize project configuration (.snackbar/config.json)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg := ac.Config
			if !nonInteractive && !ac.Flags.JSON {
				ac.Emitter.Emit(core.Status("init", "Configuring snackbar…", nil))
				if cfg, err = runInitWizard(cfg); err != nil {
					return err
				}
			}
			cfg.Version = core.ConfigVersion
			if err := cfg.Validate(); err != nil {
				return ExitError{Code: 2, Err: err}
			}

			if err := core.SaveConfig(ac.ProjectRoot, ac.ConfigPath, cfg); err != nil {
				return err
			}
			ac.Logger.Debug("config written", "path", ac.ConfigPath)
			ac.Emitter.Emit(core.Result("init", true, map[string]any{"config": ac.ConfigPath}))
			if !ac.Flags.JSON {
				ac.Emitter.Emit(core.Status("init", "Wrote "+ac.ConfigPath, nil))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Use defaults without prompts (CI-friendly)")
	return cmd
}

// initChoices are the answers collected by the init form.
type initChoices struct {
	Message     string
	AnimationMs int
	AutoHideMs  int
	Background  string
	Easing      string
}

func choicesFromConfig(cfg core.Config) initChoices {
	return initChoices{
		Message:     cfg.Bar.Message,
		AnimationMs: cfg.Bar.AnimationMs,
		AutoHideMs:  cfg.Bar.AutoHideMs,
		Background:  cfg.Bar.Background,
		Easing:      cfg.Bar.Easing,
	}
}

func applyInitChoices(cfg core.Config, c initChoices) core.Config {
	if msg := strings.TrimSpace(c.Message); msg != "" {
		cfg.Bar.Message = msg
	}
	cfg.Bar.AnimationMs = c.AnimationMs
	cfg.Bar.AutoHideMs = c.AutoHideMs
	cfg.Bar.Background = strings.TrimSpace(c.Background)
	cfg.Bar.Easing = c.Easing
	// A new background brings its own alpha.
	cfg.Bar.Alpha = nil
	return cfg
}

func runInitWizard(cfg core.Config) (core.Config, error) {
	c := choicesFromConfig(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default message").
				Value(&c.Message),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Slide-in duration").
				Options(durationOptions([]int{150, 300, 500, 800}, c.AnimationMs, "ms")...).
				Value(&c.AnimationMs),
			huh.NewSelect[int]().
				Title("Auto-hide after").
				Options(autoHideOptions(c.AutoHideMs)...).
				Value(&c.AutoHideMs),
			huh.NewSelect[string]().
				Title("Easing").
				Options(
					huh.NewOption("Decelerate", "decelerate"),
					huh.NewOption("Linear", "linear"),
					huh.NewOption("Spring", "spring"),
				).
				Value(&c.Easing),
			huh.NewSelect[string]().
				Title("Background").
				Options(backgroundOptions(c.Background)...).
				Value(&c.Background),
		),
	)
	if err := form.Run(); err != nil {
		return cfg, err
	}

	if c.Background == otherChoice {
		var custom string
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Background (#RRGGBB or #AARRGGBB)").
					Validate(func(s string) error {
						_, err := snackbar.ParseColor(strings.TrimSpace(s))
						return err
					}).
					Value(&custom),
			),
		).Run(); err != nil {
			return cfg, err
		}
		c.Background = custom
	}

	return applyInitChoices(cfg, c), nil
}

func durationOptions(values []int, current int, unit string) []huh.Option[int] {
	seen := map[int]struct{}{}
	opts := []huh.Option[int]{}
	add := func(v int) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		opts = append(opts, huh.NewOption(strconv.Itoa(v)+unit, v))
	}
	for _, v := range values {
		add(v)
	}
	if current > 0 {
		add(current)
	}
	return opts
}

func autoHideOptions(current int) []huh.Option[int] {
	opts := []huh.Option[int]{huh.NewOption("Never", 0)}
	return append(opts, durationOptions([]int{3000, 5000, 10000}, current, "ms")...)
}

func backgroundOptions(current string) []huh.Option[string] {
	seen := map[string]struct{}{}
	opts := []huh.Option[string]{}
	add := func(label, v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		if _, ok := seen[strings.ToUpper(v)]; ok {
			return
		}
		seen[strings.ToUpper(v)] = struct{}{}
		opts = append(opts, huh.NewOption(label, v))
	}

	add("Charcoal (default)", snackbar.DefaultBackground.String())
	add("Crimson", "#EAC74B5C")
	add("Pastel blue", "#EA7AA2F7")
	add("Current: "+current, current)
	return append(opts, huh.NewOption("Other…", otherChoice))
}
