package watchdog

import (
	"testing"
	"time"
)

// fakeClock lets tests move time by hand.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestExpiresAfterWindow(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	w := newWithClock(30*time.Minute, clock.now)

	clock.advance(29 * time.Minute)
	if w.Expired() {
		t.Fatal("should not expire before the window elapses")
	}

	clock.advance(time.Minute)
	if !w.Expired() {
		t.Fatal("should expire once the window elapses")
	}
}

func TestTouchRestartsCountdown(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	w := newWithClock(30*time.Minute, clock.now)

	clock.advance(29 * time.Minute)
	w.Touch()
	clock.advance(29 * time.Minute)
	if w.Expired() {
		t.Fatal("touch must restart the countdown")
	}

	clock.advance(time.Minute)
	if !w.Expired() {
		t.Fatal("should expire 30 minutes after the last touch")
	}
}

func TestRemaining(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	w := newWithClock(30*time.Minute, clock.now)

	clock.advance(10 * time.Minute)
	if got := w.Remaining(); got != 20*time.Minute {
		t.Fatalf("expected 20m remaining, got %v", got)
	}

	clock.advance(time.Hour)
	if got := w.Remaining(); got != 0 {
		t.Fatalf("expected 0 remaining after expiry, got %v", got)
	}
}

func TestZeroWindowDisabled(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	w := newWithClock(0, clock.now)

	clock.advance(100 * time.Hour)
	if w.Expired() {
		t.Fatal("a disabled watchdog must never expire")
	}
	if w.Enabled() {
		t.Fatal("zero window means disabled")
	}
}
