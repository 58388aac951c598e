package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/host"
	"github.com/xcbolt/snackbar/internal/snackbar"
	"github.com/xcbolt/snackbar/internal/util"
)

// maxSimulation bounds a run without --until.
const maxSimulation = 10 * time.Minute

// simulateOverrides are flag values that replace config defaults. nil means
// the flag was not given.
type simulateOverrides struct {
	Animation *time.Duration
	AutoHide  *time.Duration
	Dismiss   *time.Duration
}

type simulateOptions struct {
	Animate bool
	Action  bool
	Trace   bool
	ShowAt  []time.Duration
	HideAt  []time.Duration
	ClickAt []time.Duration
	Until   time.Duration
}

type timelineEntry struct {
	AtMs int64  `json:"atMs"`
	From string `json:"from"`
	To   string `json:"to"`
}

type simulationResult struct {
	ShowID      string          `json:"showId"`
	Final       string          `json:"final"`
	EndedAtMs   int64           `json:"endedAtMs"`
	Transitions []timelineEntry `json:"transitions"`
	HostCalls   int             `json:"hostCalls"`
	Clicks      int             `json:"clicks"`
}

func newSimulateCmd() *cobra.Command {
	var (
		message   string
		animation time.Duration
		autoHide  time.Duration
		dismiss   time.Duration
		noAnimate bool
		opts      simulateOptions
		out       string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a show/hide script on a virtual clock and print the timeline",
		Example: `  snackbar simulate
  snackbar simulate --animation 300ms --autohide 2s
  snackbar simulate --show-at 3s --hide-at 4s --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			req, err := ac.Config.Bar.Request(message)
			if err != nil {
				return ExitError{Code: 2, Err: err}
			}
			var ov simulateOverrides
			if cmd.Flags().Changed("animation") {
				ov.Animation = &animation
			}
			if cmd.Flags().Changed("autohide") {
				ov.AutoHide = &autoHide
			}
			if cmd.Flags().Changed("dismiss") {
				ov.Dismiss = &dismiss
			}
			if err := applySimulateOverrides(&req, ov); err != nil {
				return ExitError{Code: 2, Err: err}
			}
			orientation, err := ac.Config.Bar.BarOrientation()
			if err != nil {
				return ExitError{Code: 2, Err: err}
			}

			opts.Animate = !noAnimate
			opts.Trace = ac.Flags.Verbose
			res, err := runSimulation(req, orientation, opts, ac.Emitter, ac.Logger)
			if err != nil {
				return ExitError{Code: 2, Err: err}
			}

			if out != "" {
				if err := util.WriteJSONFile(out, res, 0o644); err != nil {
					return err
				}
			}
			if !ac.Flags.JSON {
				ac.Emitter.Emit(core.Status("simulate", fmt.Sprintf("%s at %dms after %d host calls", res.Final, res.EndedAtMs, res.HostCalls), nil))
			}
			ac.Emitter.Emit(core.Result("simulate", true, res))
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Message to show (default: bar.message from config)")
	cmd.Flags().DurationVar(&animation, "animation", snackbar.DefaultAnimationDuration, "Slide-in duration")
	cmd.Flags().DurationVar(&autoHide, "autohide", snackbar.DefaultAutoHideDelay, "Auto-hide delay (0 disables)")
	cmd.Flags().DurationVar(&dismiss, "dismiss", 0, "Slide-out duration (default: a third of --animation)")
	cmd.Flags().BoolVar(&noAnimate, "no-animate", false, "Show without the slide-in animation")
	cmd.Flags().BoolVar(&opts.Action, "action", false, "Attach a click action that hides the bar")
	cmd.Flags().DurationSliceVar(&opts.ShowAt, "show-at", nil, "Show again at these times")
	cmd.Flags().DurationSliceVar(&opts.HideAt, "hide-at", nil, "Hide at these times")
	cmd.Flags().DurationSliceVar(&opts.ClickAt, "click-at", nil, "Click the bar text at these times")
	cmd.Flags().DurationVar(&opts.Until, "until", 0, "Stop at this time (default: when nothing is pending)")
	cmd.Flags().StringVar(&out, "out", "", "Also write the timeline as JSON to this file")

	return cmd
}

func applySimulateOverrides(req *snackbar.ShowRequest, ov simulateOverrides) error {
	checks := []struct {
		name string
		d    *time.Duration
	}{
		{"animation", ov.Animation},
		{"autohide", ov.AutoHide},
		{"dismiss", ov.Dismiss},
	}
	for _, c := range checks {
		if c.d != nil && *c.d < 0 {
			return fmt.Errorf("--%s must not be negative, got %s", c.name, *c.d)
		}
	}
	if ov.Animation != nil {
		req.AnimationDuration = *ov.Animation
	}
	if ov.AutoHide != nil {
		req.AutoHideDelay = *ov.AutoHide
	}
	if ov.Dismiss != nil {
		req.DismissDuration = *ov.Dismiss
	}
	return nil
}

// runSimulation shows req at time zero, replays the scripted actions, and
// advances the virtual clock until opts.Until or until nothing is pending.
func runSimulation(req snackbar.ShowRequest, orientation snackbar.Orientation, opts simulateOptions, emit core.Emitter, logger *slog.Logger) (simulationResult, error) {
	clock := host.NewClock()
	res := simulationResult{ShowID: core.NewShowID(), Transitions: []timelineEntry{}}

	rec := host.NewRecorder(clock, host.WithMutationHook(func(m host.Mutation) {
		res.HostCalls++
		if opts.Trace {
			emit.Emit(core.HostCall("simulate", res.ShowID, m.At, m.Op, m.Value))
		}
	}))
	bar, err := snackbar.New(rec,
		snackbar.WithOrientation(orientation),
		snackbar.WithObserver(func(from, to snackbar.State) {
			at := clock.Now()
			res.Transitions = append(res.Transitions, timelineEntry{AtMs: at.Milliseconds(), From: from.String(), To: to.String()})
			emit.Emit(core.Transition("simulate", res.ShowID, at, from.String(), to.String()))
			logger.Debug("snackbar transition", "at", at, "from", from, "to", to)
		}),
	)
	if err != nil {
		return res, err
	}

	if opts.Action {
		req.OnClick = func(b *snackbar.Bar) {
			res.Clicks++
			b.HideAnimated()
		}
	}
	req.Animate = opts.Animate
	logger.Debug("simulation start",
		"duration", req.AnimationDuration,
		"delay", req.AutoHideDelay,
		"dismiss", req.EffectiveDismissDuration(),
		"animate", req.Animate,
	)

	show := func() { bar.Show(req) }
	show()
	for _, at := range opts.ShowAt {
		clock.AfterFunc(at, show)
	}
	for _, at := range opts.HideAt {
		clock.AfterFunc(at, bar.HideAnimated)
	}
	for _, at := range opts.ClickAt {
		clock.AfterFunc(at, func() { bar.Click() })
	}

	if opts.Until > 0 {
		clock.AdvanceTo(opts.Until)
	} else {
		for {
			next, ok := clock.NextDeadline()
			if !ok || next > maxSimulation {
				break
			}
			clock.AdvanceTo(next)
		}
	}

	res.Final = bar.State().String()
	res.EndedAtMs = clock.Now().Milliseconds()
	return res, nil
}
