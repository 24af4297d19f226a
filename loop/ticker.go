package loop

import "time"

// Ticker fires at a fixed wall-clock period. It is polled, not pushed: the
// frame loop asks Due on every frame. Missed periods are dropped rather than
// replayed.
type Ticker struct {
	interval time.Duration
	next     time.Time
	active   bool
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start arms the ticker; the first tick is due one period after now.
func (t *Ticker) Start(now time.Time) {
	t.next = now.Add(t.interval)
	t.active = true
}

// Stop disarms the ticker. Due never fires again until Start.
func (t *Ticker) Stop() {
	t.active = false
}

func (t *Ticker) Active() bool {
	return t.active
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Due reports whether a tick should run at now and, if so, schedules the
// next one. Deadlines advance by exactly one period so tick work does not
// drift the cadence; if the loop fell more than a period behind the schedule
// restarts from now.
func (t *Ticker) Due(now time.Time) bool {
	if !t.active || now.Before(t.next) {
		return false
	}
	t.next = t.next.Add(t.interval)
	if !now.Before(t.next) {
		t.next = now.Add(t.interval)
	}
	return true
}
