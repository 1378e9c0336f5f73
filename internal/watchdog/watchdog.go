// Package watchdog tracks user inactivity. The app touches it on every
// input event and polls it on a timer; once the window elapses with no
// touches the session is reset.
package watchdog

import (
	"sync"
	"time"
)

// Watchdog is a resettable inactivity timer. A zero window disables it.
type Watchdog struct {
	mu   sync.Mutex
	last time.Time

	window time.Duration
	now    func() time.Time
}

// New creates a watchdog with the given inactivity window, already
// touched at creation time.
func New(window time.Duration) *Watchdog {
	return newWithClock(window, time.Now)
}

func newWithClock(window time.Duration, now func() time.Time) *Watchdog {
	return &Watchdog{
		window: window,
		now:    now,
		last:   now(),
	}
}

// Touch records activity, restarting the countdown.
func (w *Watchdog) Touch() {
	w.mu.Lock()
	w.last = w.now()
	w.mu.Unlock()
}

// Expired reports whether the window has fully elapsed since the last
// touch. A disabled watchdog never expires.
func (w *Watchdog) Expired() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.window <= 0 {
		return false
	}
	return w.now().Sub(w.last) >= w.window
}

// Remaining returns how long until expiry, or 0 when already expired.
// A disabled watchdog reports its zero window.
func (w *Watchdog) Remaining() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.window <= 0 {
		return 0
	}
	left := w.window - w.now().Sub(w.last)
	if left < 0 {
		return 0
	}
	return left
}

// Enabled reports whether the watchdog is active.
func (w *Watchdog) Enabled() bool {
	return w.window > 0
}
