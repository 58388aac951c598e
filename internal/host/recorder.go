package host

import (
	"time"

	"github.com/xcbolt/snackbar/internal/snackbar"
)

// DefaultFrame is the animation frame interval of a Recorder.
const DefaultFrame = 16 * time.Millisecond

// Mutation is one recorded call from the bar into its host.
type Mutation struct {
	At    time.Duration
	Op    string
	Value any
}

// View is the recorder's current visual state.
type View struct {
	Visible      bool
	Enabled      bool
	Highlight    bool
	TranslationY float64
	Text         string
	Background   snackbar.Color
}

// Recorder is a snackbar.ViewHost that keeps its visual state in memory,
// runs timers and animation frames on a Clock, and logs every mutation.
// Per-frame translation updates are not logged; animation start and end are.
type Recorder struct {
	clock  *Clock
	height float64
	frame  time.Duration

	view View

	anim      *animation
	scheduled []*recordedTimer

	log        []Mutation
	onMutation func(Mutation)
}

type animation struct {
	from, to float64
	start    time.Duration
	d        time.Duration
	ease     snackbar.Easing
	done     func()
	next     *Timer
}

type RecorderOption func(*Recorder)

// WithHeight sets the off-screen translation distance. Defaults to 3.
func WithHeight(h float64) RecorderOption {
	return func(r *Recorder) { r.height = h }
}

func WithFrame(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		if d > 0 {
			r.frame = d
		}
	}
}

// WithMutationHook streams every mutation to fn as it is recorded.
func WithMutationHook(fn func(Mutation)) RecorderOption {
	return func(r *Recorder) { r.onMutation = fn }
}

func NewRecorder(clock *Clock, opts ...RecorderOption) *Recorder {
	r := &Recorder{clock: clock, height: 3, frame: DefaultFrame}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) View() View            { return r.view }
func (r *Recorder) Mutations() []Mutation { return append([]Mutation(nil), r.log...) }
func (r *Recorder) Animating() bool       { return r.anim != nil }

// ScheduledPending counts callbacks scheduled through AfterFunc that are
// still live. Animation frames are not included.
func (r *Recorder) ScheduledPending() int {
	live := r.scheduled[:0]
	for _, t := range r.scheduled {
		if !t.t.fired && !t.t.stopped {
			live = append(live, t)
		}
	}
	r.scheduled = live
	return len(live)
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, m := range r.log {
		if m.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Height() float64 { return r.height }

func (r *Recorder) SetVisible(visible bool) {
	r.view.Visible = visible
	r.record("visible", visible)
}

func (r *Recorder) SetEnabled(enabled bool) {
	r.view.Enabled = enabled
	r.record("enabled", enabled)
}

func (r *Recorder) SetTranslationY(y float64) {
	r.cancelAnimation()
	r.view.TranslationY = y
	r.record("translation", y)
}

func (r *Recorder) SetText(text string) {
	r.view.Text = text
	r.record("text", text)
}

func (r *Recorder) SetBackground(c snackbar.Color) {
	r.view.Background = c
	r.record("background", c.String())
}

func (r *Recorder) SetTextHighlight(on bool) {
	r.view.Highlight = on
	r.record("highlight", on)
}

func (r *Recorder) AnimateTranslationY(to float64, d time.Duration, ease snackbar.Easing, done func()) {
	r.cancelAnimation()
	if ease == nil {
		ease = snackbar.Linear
	}
	a := &animation{
		from:  r.view.TranslationY,
		to:    to,
		start: r.clock.Now(),
		d:     d,
		ease:  ease,
		done:  done,
	}
	r.anim = a
	r.record("animate", map[string]any{"from": a.from, "to": to, "durationMs": d.Milliseconds()})
	r.scheduleFrame(a)
}

func (r *Recorder) AfterFunc(d time.Duration, fn func()) snackbar.Timer {
	rt := &recordedTimer{r: r}
	rt.t = r.clock.AfterFunc(d, func() {
		r.record("fire", d.Milliseconds())
		fn()
	})
	r.scheduled = append(r.scheduled, rt)
	r.record("schedule", d.Milliseconds())
	return rt
}

func (r *Recorder) cancelAnimation() {
	if r.anim == nil {
		return
	}
	r.anim.next.Stop()
	r.record("animation-superseded", r.view.TranslationY)
	r.anim = nil
}

func (r *Recorder) scheduleFrame(a *animation) {
	delay := r.frame
	if remaining := a.start + a.d - r.clock.Now(); remaining < delay {
		delay = remaining
	}
	a.next = r.clock.AfterFunc(delay, func() { r.step(a) })
}

func (r *Recorder) step(a *animation) {
	if r.anim != a {
		return
	}
	p := 1.0
	if a.d > 0 {
		p = float64(r.clock.Now()-a.start) / float64(a.d)
	}
	if p < 1 {
		r.view.TranslationY = a.from + (a.to-a.from)*a.ease(p)
		r.scheduleFrame(a)
		return
	}
	r.view.TranslationY = a.to
	r.anim = nil
	r.record("animation-end", a.to)
	if a.done != nil {
		a.done()
	}
}

func (r *Recorder) record(op string, v any) {
	m := Mutation{At: r.clock.Now(), Op: op, Value: v}
	r.log = append(r.log, m)
	if r.onMutation != nil {
		r.onMutation(m)
	}
}

type recordedTimer struct {
	r *Recorder
	t *Timer
}

func (rt *recordedTimer) Stop() bool {
	if !rt.t.Stop() {
		return false
	}
	rt.r.record("cancel", nil)
	return true
}
