package balloons

import "time"

// Clock supplies the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// debouncer holds at most one pending deadline. Each Signal pushes the
// deadline to now+quiet; Fire reports true once the quiet period has passed
// since the last signal, then clears the slot.
type debouncer struct {
	quiet    time.Duration
	deadline time.Time
	pending  bool
}

// Signal schedules, or reschedules, the deadline.
func (d *debouncer) Signal(now time.Time) {
	d.deadline = now.Add(d.quiet)
	d.pending = true
}

// Cancel clears any pending deadline.
func (d *debouncer) Cancel() {
	d.pending = false
	d.deadline = time.Time{}
}

// Fire reports whether the pending deadline has been reached and, if so,
// clears it.
func (d *debouncer) Fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.Cancel()
	return true
}

// Pending reports whether a deadline is scheduled.
func (d *debouncer) Pending() bool {
	return d.pending
}

// Deadline returns the scheduled deadline, if any.
func (d *debouncer) Deadline() (time.Time, bool) {
	return d.deadline, d.pending
}
