package tui

import (
	"testing"
	"time"

	"github.com/xcbolt/snackbar/internal/snackbar"
)

func fakeNow(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestTeaHostTimerFiresOnce(t *testing.T) {
	h := newTeaHost()
	fired := 0
	h.AfterFunc(time.Second, func() { fired++ })

	if h.Cmd() == nil {
		t.Fatalf("expected a tick command")
	}
	if h.Cmd() != nil {
		t.Fatalf("pending commands should drain")
	}

	if !h.Handle(hostTimerMsg{id: 1}) {
		t.Fatalf("timer message not handled")
	}
	h.Handle(hostTimerMsg{id: 1})
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestTeaHostStoppedTimerIsSwallowed(t *testing.T) {
	h := newTeaHost()
	fired := false
	timer := h.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatalf("Stop on a pending timer should report true")
	}
	if timer.Stop() {
		t.Fatalf("second Stop should report false")
	}
	if !h.Handle(hostTimerMsg{id: 1}) {
		t.Fatalf("stale timer message should still be consumed")
	}
	if fired {
		t.Fatalf("stopped timer fired")
	}
}

func TestTeaHostIgnoresForeignMessages(t *testing.T) {
	h := newTeaHost()
	if h.Handle(configReloadedMsg{}) {
		t.Fatalf("foreign message reported as handled")
	}
}

func TestTeaHostAnimatesToTarget(t *testing.T) {
	start := time.Unix(0, 0)
	now, advance := fakeNow(start)
	h := newTeaHost()
	h.now = now
	h.SetTranslationY(barRows)

	done := 0
	h.AnimateTranslationY(0, 100*time.Millisecond, snackbar.Linear, func() { done++ })
	id := h.anim.id

	advance(50 * time.Millisecond)
	h.Handle(hostFrameMsg{id: id, at: now()})
	if h.translation != barRows/2.0 {
		t.Fatalf("translation = %v, want %v", h.translation, barRows/2.0)
	}
	if done != 0 {
		t.Fatalf("done ran early")
	}

	advance(50 * time.Millisecond)
	h.Handle(hostFrameMsg{id: id, at: now()})
	if h.translation != 0 || h.Animating() {
		t.Fatalf("animation not finished: translation=%v animating=%v", h.translation, h.Animating())
	}
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
}

func TestTeaHostSupersededAnimationDropsDone(t *testing.T) {
	start := time.Unix(0, 0)
	now, advance := fakeNow(start)
	h := newTeaHost()
	h.now = now

	first := false
	h.AnimateTranslationY(3, 100*time.Millisecond, nil, func() { first = true })
	oldID := h.anim.id

	second := false
	h.AnimateTranslationY(0, 100*time.Millisecond, nil, func() { second = true })

	advance(200 * time.Millisecond)
	h.Handle(hostFrameMsg{id: oldID, at: now()})
	if first || !h.Animating() {
		t.Fatalf("stale frame advanced the animation")
	}

	h.Handle(hostFrameMsg{id: h.anim.id, at: now()})
	if first {
		t.Fatalf("superseded done callback ran")
	}
	if !second {
		t.Fatalf("current done callback did not run")
	}
}

func TestTeaHostDrivesBarThroughShowAndAutoHide(t *testing.T) {
	start := time.Unix(0, 0)
	now, advance := fakeNow(start)
	h := newTeaHost()
	h.now = now

	bar, err := snackbar.New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bar.ShowMessage("hi").
		WithAnimationDuration(100 * time.Millisecond).
		WithAutoHideDelay(time.Second).
		Animating()

	advance(100 * time.Millisecond)
	h.Handle(hostFrameMsg{id: h.anim.id, at: now()})
	if bar.State() != snackbar.Visible || !h.enabled {
		t.Fatalf("state = %s enabled=%v", bar.State(), h.enabled)
	}

	var timerID uint64
	for id := range h.timers {
		timerID = id
	}
	h.Handle(hostTimerMsg{id: timerID})
	if bar.State() != snackbar.Disappearing {
		t.Fatalf("state after auto-hide = %s", bar.State())
	}

	advance(time.Second)
	h.Handle(hostFrameMsg{id: h.anim.id, at: now()})
	if bar.State() != snackbar.Hidden || h.visible {
		t.Fatalf("state = %s visible=%v", bar.State(), h.visible)
	}
}

func TestTeaHostShowWithoutAnimatingDuringDisappearance(t *testing.T) {
	start := time.Unix(0, 0)
	now, advance := fakeNow(start)
	h := newTeaHost()
	h.now = now

	bar, err := snackbar.New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bar.ShowMessage("hi").WithAutoHideDelay(0).WithAnimationDuration(100 * time.Millisecond).Animating()
	advance(100 * time.Millisecond)
	h.Handle(hostFrameMsg{id: h.anim.id, at: now()})

	bar.HideAfter(200 * time.Millisecond)
	advance(50 * time.Millisecond)
	h.Handle(hostFrameMsg{id: h.anim.id, at: now()})
	slideOut := h.anim.id

	clicks := 0
	bar.ShowMessage("back").
		WithAutoHideDelay(0).
		WithTextClickListener(func(*snackbar.Bar) { clicks++ }).
		WithoutAnimating()
	if h.Animating() || h.translation != 0 {
		t.Fatalf("slide-out still running: animating=%v translation=%v", h.Animating(), h.translation)
	}

	advance(time.Second)
	if !h.Handle(hostFrameMsg{id: slideOut, at: now()}) {
		t.Fatalf("stale frame not consumed")
	}
	if h.translation != 0 || !h.visible || bar.State() != snackbar.Visible {
		t.Fatalf("state = %s visible=%v translation=%v", bar.State(), h.visible, h.translation)
	}
	if !bar.Click() || clicks != 1 {
		t.Fatalf("click on resting bar: clicks = %d", clicks)
	}
}

func TestTeaHostHideImmediatelyDropsAppearance(t *testing.T) {
	now, _ := fakeNow(time.Unix(0, 0))
	h := newTeaHost()
	h.now = now

	bar, err := snackbar.New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bar.ShowMessage("hi").Animating()
	bar.Hide(false)
	if h.Animating() || h.translation != barRows || h.visible {
		t.Fatalf("animating=%v translation=%v visible=%v", h.Animating(), h.translation, h.visible)
	}
}
