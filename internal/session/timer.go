package session

import "time"

// Timer is a looping callback on the session clock. It fires once for
// every full Interval accumulated through Advance.
type Timer struct {
	Interval time.Duration

	elapsed time.Duration
	fire    func()
}

func newTimer(interval time.Duration, fire func()) *Timer {
	return &Timer{Interval: interval, fire: fire}
}

// Advance accumulates dt and runs the callback for each interval that
// completed. It returns the number of firings.
func (t *Timer) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		t.fire()
		n++
	}
	return n
}
