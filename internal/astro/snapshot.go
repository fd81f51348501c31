package astro

import "encoding/json"

// ReadingFallback is shown whenever a category reading cannot be resolved
// from the snapshot. A category page must always render something.
const ReadingFallback = "No detailed analysis available for this section."

// Snapshot is the full response of one /calculate call, treated as a
// read-only tree with a known partial shape. All defensive fallback logic
// for shape drift lives here rather than at the call sites.
type Snapshot struct {
	Meta    SnapshotMeta `json:"meta"`
	Reading ReadingByKey `json:"ai_reading"`
	Dasha   DashaData    `json:"dasha"`
	Yogas   []Yoga       `json:"yogas"`
}

// SnapshotMeta is the scored summary block of a snapshot.
type SnapshotMeta struct {
	DestinyScore     float64 `json:"destiny_score"`
	FactSheet        string  `json:"fact_sheet"`
	AscendantSign    string  `json:"ascendant_sign,omitempty"`
	Insight          string  `json:"insight,omitempty"`
	DominantCategory string  `json:"dominant_category,omitempty"`
}

// ReadingByKey maps category keys to reading text. Older backend builds
// returned a single string instead of the keyed structure; that legacy shape
// decodes to an empty map so every lookup falls back.
type ReadingByKey map[string]string

func (r *ReadingByKey) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err == nil {
		*r = m
		return nil
	}
	// Legacy string-only shape, or null. Treated as absent, not an error.
	*r = nil
	return nil
}

// ReadingFor resolves the reading text for a category. Missing snapshot data
// of any kind yields ReadingFallback.
func (s *Snapshot) ReadingFor(key CategoryKey) string {
	if s == nil || s.Reading == nil {
		return ReadingFallback
	}
	text, ok := s.Reading[string(key)]
	if !ok || text == "" {
		return ReadingFallback
	}
	return text
}

// FactSheet returns the chat context string, or a stand-in when absent.
// The session does not interpret it.
func (s *Snapshot) FactSheet() string {
	if s == nil || s.Meta.FactSheet == "" {
		return "No context available."
	}
	return s.Meta.FactSheet
}

// DashaData is the timeline block of a snapshot.
type DashaData struct {
	Timeline []DashaPeriod          `json:"timeline"`
	Current  map[string]DashaPeriod `json:"current,omitempty"`
}
