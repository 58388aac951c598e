// Package host provides a deterministic event loop and a recording view host
// for driving a snackbar.Bar without a terminal.
package host

import (
	"sort"
	"time"
)

// Clock is a single-threaded virtual clock. Callbacks scheduled with
// AfterFunc run only from Advance, in deadline order, on the caller's
// goroutine.
type Clock struct {
	now   time.Duration
	seq   uint64
	queue []*Timer
}

func NewClock() *Clock { return &Clock{} }

// Now is the virtual time elapsed since the clock was created.
func (c *Clock) Now() time.Duration { return c.now }

// Timer is a callback scheduled on a Clock.
type Timer struct {
	clock   *Clock
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports false if it already fired or was
// stopped.
func (t *Timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.clock.remove(t)
	return true
}

// Deadline is the virtual time the timer fires at.
func (t *Timer) Deadline() time.Duration { return t.at }

// AfterFunc schedules fn to run d after the current virtual time. Negative
// delays are treated as zero.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{clock: c, at: c.now + d, seq: c.seq, fn: fn}
	i := sort.Search(len(c.queue), func(i int) bool {
		q := c.queue[i]
		return q.at > t.at || (q.at == t.at && q.seq > t.seq)
	})
	c.queue = append(c.queue, nil)
	copy(c.queue[i+1:], c.queue[i:])
	c.queue[i] = t
	return t
}

// Pending is the number of timers that have neither fired nor been stopped.
func (c *Clock) Pending() int { return len(c.queue) }

// NextDeadline reports the earliest pending deadline.
func (c *Clock) NextDeadline() (time.Duration, bool) {
	if len(c.queue) == 0 {
		return 0, false
	}
	return c.queue[0].at, true
}

// Advance moves the clock forward by d, running every callback that comes
// due on the way, including callbacks scheduled by earlier callbacks.
func (c *Clock) Advance(d time.Duration) {
	c.AdvanceTo(c.now + d)
}

// AdvanceTo moves the clock to the absolute virtual time target.
func (c *Clock) AdvanceTo(target time.Duration) {
	for len(c.queue) > 0 && c.queue[0].at <= target {
		t := c.queue[0]
		c.queue = c.queue[1:]
		if t.at > c.now {
			c.now = t.at
		}
		t.fired = true
		t.fn()
	}
	if target > c.now {
		c.now = target
	}
}

func (c *Clock) remove(t *Timer) {
	for i, q := range c.queue {
		if q == t {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}
