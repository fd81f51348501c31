package astro

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReadingFor(t *testing.T) {
	snap := &Snapshot{Reading: ReadingByKey{"career": "X"}}
	if got := snap.ReadingFor(CategoryCareer); got != "X" {
		t.Errorf("expected career reading X, got %q", got)
	}
	if got := snap.ReadingFor(CategoryLove); got != ReadingFallback {
		t.Errorf("expected fallback for missing key, got %q", got)
	}
}

func TestReadingFor_MissingReading(t *testing.T) {
	snap := &Snapshot{}
	for _, key := range Categories() {
		if got := snap.ReadingFor(key); got != ReadingFallback {
			t.Errorf("category %s: expected fallback, got %q", key, got)
		}
	}
}

func TestReadingFor_NilSnapshot(t *testing.T) {
	var snap *Snapshot
	if got := snap.ReadingFor(CategoryCareer); got != ReadingFallback {
		t.Errorf("expected fallback on nil snapshot, got %q", got)
	}
}

func TestReadingByKey_LegacyStringShape(t *testing.T) {
	var snap Snapshot
	raw := `{"ai_reading": "one big legacy blob", "meta": {"destiny_score": 72}}`
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if snap.Reading != nil {
		t.Errorf("legacy string shape should decode as absent, got %v", snap.Reading)
	}
	if got := snap.ReadingFor(CategoryHealth); got != ReadingFallback {
		t.Errorf("expected fallback for legacy shape, got %q", got)
	}
	if snap.Meta.DestinyScore != 72 {
		t.Errorf("sibling fields must still decode, got score %v", snap.Meta.DestinyScore)
	}
}

func TestFactSheet(t *testing.T) {
	var nilSnap *Snapshot
	if got := nilSnap.FactSheet(); got != "No context available." {
		t.Errorf("expected stand-in context, got %q", got)
	}
	snap := &Snapshot{Meta: SnapshotMeta{FactSheet: "Sun in Leo"}}
	if got := snap.FactSheet(); got != "Sun in Leo" {
		t.Errorf("expected fact sheet, got %q", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, key := range Categories() {
		got, err := ParseCategory(string(key))
		if err != nil || got != key {
			t.Errorf("ParseCategory(%s) = %v, %v", key, got, err)
		}
	}
	if _, err := ParseCategory("finances"); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("expected error for empty category")
	}
}

func TestDashaPeriodActiveOn(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)

	covering := DashaPeriod{Lord: "Saturn", Start: "2020-01-01", End: "2039-01-01"}
	if !covering.ActiveOn(now) {
		t.Error("period covering now should be active")
	}

	future := DashaPeriod{Lord: "Mercury", Start: "2039-01-01", End: "2056-01-01"}
	if future.ActiveOn(now) {
		t.Error("period starting in the future must never be active")
	}

	// Boundary days count regardless of time of day.
	boundary := DashaPeriod{Lord: "Ketu", Start: "2024-06-15", End: "2024-06-15"}
	if !boundary.ActiveOn(now) {
		t.Error("calendar-date comparison should ignore time of day")
	}

	malformed := DashaPeriod{Lord: "Rahu", Start: "soon", End: "later"}
	if malformed.ActiveOn(now) {
		t.Error("unparseable bounds must not classify as active")
	}
}

func TestBirthDetailWith(t *testing.T) {
	orig := DefaultBirthDetail()
	updated := orig.With(func(b *BirthDetail) { b.Year = 1950 })
	if updated.Year != 1950 {
		t.Errorf("expected updated year 1950, got %d", updated.Year)
	}
	if orig.Year == 1950 {
		t.Error("original must not be mutated")
	}
	if updated.Latitude != orig.Latitude {
		t.Error("untouched fields must carry over")
	}
}
