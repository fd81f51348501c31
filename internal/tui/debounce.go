package tui

import "time"

// DebounceWindow is how long input must stay silent before a location
// search is issued.
const DebounceWindow = 500 * time.Millisecond

// Debouncer is a generation counter for cancellable asynchronous work.
// Every new input bumps the generation; completion handlers apply their
// result only if their generation is still the latest, so a superseded call
// can never overwrite the result of a newer one regardless of arrival order.
type Debouncer struct {
	gen int
}

// Next invalidates all outstanding work and returns the new generation.
func (d *Debouncer) Next() int {
	d.gen++
	return d.gen
}

// Latest reports whether gen is still the current generation.
func (d *Debouncer) Latest(gen int) bool {
	return gen == d.gen
}

// Cancel invalidates all outstanding work without arming new work.
func (d *Debouncer) Cancel() {
	d.gen++
}
