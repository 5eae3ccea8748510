package directions

import (
	"log"
	"sync"
	"time"
)

// RateWindow caps the number of external requests per fixed wall-clock
// window. It is an explicitly owned component shared by every concurrent
// leg in the process; check-and-increment runs under a mutex so the ceiling
// is never over-admitted.
//
// When the ceiling is hit the caller blocks until the window resets. That is
// deliberate backpressure protecting the provider's quota, not an error.
type RateWindow struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	count       int
	windowStart time.Time

	// Injectable for tests; default to the real clock.
	now   func() time.Time
	sleep func(time.Duration)
}

func NewRateWindow(limit int, window time.Duration) *RateWindow {
	r := &RateWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
		sleep:  time.Sleep,
	}
	r.windowStart = r.now()
	return r
}

// Acquire admits one request, blocking until the window resets when the
// ceiling has been reached.
func (r *RateWindow) Acquire() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.windowStart) > r.window {
		r.count = 0
		r.windowStart = now
	}

	if r.count >= r.limit {
		// Wait out the remainder of the window, plus a 1s buffer against
		// clock skew on the provider side.
		wait := r.window - now.Sub(r.windowStart) + time.Second
		log.Printf("directions rate limit reached, delaying request wait=%s", wait)
		r.sleep(wait)
		r.count = 0
		r.windowStart = r.now()
	}

	r.count++
}
