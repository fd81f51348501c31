package tui

import "testing"

func TestDebouncerSupersededGenerationIsStale(t *testing.T) {
	var d Debouncer

	older := d.Next() // "London"
	newer := d.Next() // "Londonderry"

	// The older call resolves second; it must still be discarded.
	if d.Latest(older) {
		t.Error("superseded generation must not be latest")
	}
	if !d.Latest(newer) {
		t.Error("newest generation must be latest")
	}
}

func TestDebouncerCancel(t *testing.T) {
	var d Debouncer
	gen := d.Next()
	d.Cancel()
	if d.Latest(gen) {
		t.Error("cancel must invalidate outstanding generations")
	}
}
